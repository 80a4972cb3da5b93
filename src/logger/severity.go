// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity is the importance of a log message.
// Higher values are more verbose.
type Severity int32

const (
	// Error is the least verbose, most important severity.
	Error Severity = iota
	// Warn reports recoverable problems. Its display word is "WARNING".
	Warn
	// Info reports normal operation.
	Info
	// Debug is the most verbose severity.
	Debug
)

// numSeverities sizes the per-severity caches of a Logger.
const numSeverities = int(Debug) + 1

var severityWords = [numSeverities]string{
	Error: "ERROR",
	Warn:  "WARNING",
	Info:  "INFO",
	Debug: "DEBUG",
}

// Severities returns all defined severities from Error to Debug.
func Severities() []Severity {
	return []Severity{Error, Warn, Info, Debug}
}

// Valid reports whether s is one of the four defined severities.
func (s Severity) Valid() bool {
	return s >= Error && s <= Debug
}

// String implements the fmt.Stringer interface.
// It returns the word used in log prefixes.
func (s Severity) String() string {
	if !s.Valid() {
		return "Severity(" + strconv.FormatInt(int64(s), 10) + ")"
	}
	return severityWords[s]
}

// ParseSeverity returns the Severity named by s. It accepts the display
// words, "warn", and the numeric values 0 through 3. Matching ignores case
// and surrounding spaces.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return Error, nil
	case "warn", "warning":
		return Warn, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	}

	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeverity, s)
	}
	if v := Severity(i); v.Valid() {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidSeverity, i)
}

// checkSeverity returns an error wrapping ErrInvalidSeverity
// if s is not one of the defined severities.
func checkSeverity(s Severity) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSeverity, int32(s))
	}
	return nil
}
