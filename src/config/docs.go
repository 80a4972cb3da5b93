// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads logger settings from a JSON or YAML file and applies
// them to a [logger.Hub] and the loggers created from it.
//
// Example YAML file:
//
//	console: true
//	maxSeverity: info
//	loggers:
//	  net:
//	    maxSeverity: debug
//	  db:
//	    console: false
package config
