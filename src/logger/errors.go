// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "errors"

// ErrInvalidSeverity is returned, wrapped, when an operation receives a
// severity outside of Error, Warn, Info and Debug.
var ErrInvalidSeverity = errors.New("invalid severity")

// EscalatedError is returned by [Logger.ErrorEscalate] after the message has
// been written and observers have been notified. Callers are expected to
// abort the current operation and propagate it.
type EscalatedError struct {
	// Logger is the id of the logger that escalated.
	Logger string
	// Text is the logged message.
	Text string
}

// Error implements the error interface. It returns the logged text.
func (e *EscalatedError) Error() string { return e.Text }
