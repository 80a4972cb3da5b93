// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// complog is a command-line front end for the per-component logger.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/complog/cmd/complog@latest
//
// Build with the debug tag to make Debug the default maximum severity:
//
//	go install -tags debug github.com/H0llyW00dzZ/complog/cmd/complog@latest
//
// # Usage
//
//	complog emit [FLAGS] [MESSAGE...]
//	complog levels [--id ID]
//
// # Flags of emit
//
//	-n, --id          Logger id used in prefixes (default: app)
//	-s, --severity    Severity of the messages (default: info)
//	-m, --max         Most verbose severity the logger accepts
//	-c, --config      JSON or YAML config file (default: $COMPLOG_CONFIG_FILE)
//	-p, --pretty      Log all messages as one aligned multi-line block
//	-i, --indent      Log messages as continuation lines
//	    --no-console  Do not write to the console
//	    --summary     Print a per-logger message table to stderr
//	    --metrics     Print Prometheus counters to stderr
//	    --escalate    Escalate the last message and exit non-zero
//	-v, --verbose     Log complog's own debug messages
//
// # Examples
//
// Log a warning:
//
//	complog emit --id net --severity warning "peer unreachable"
//
// Log a stack trace as an aligned block:
//
//	go test ./... 2>&1 | complog emit --id ci --severity error --pretty
//
// Show the prefixes of a logger:
//
//	complog levels --id net
package main
