// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for complog.
// It implements a Cobra-based CLI that logs messages through a named logger,
// so thresholds, prefixes, pretty blocks, escalation and configuration files
// can be exercised from the shell. Summaries are rendered as markdown tables
// and Prometheus counters.
package cli
