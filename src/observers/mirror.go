// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package observers

import (
	"fmt"
	"io"
	"sync"

	"github.com/H0llyW00dzZ/complog/src/logger"
)

// Mirror writes every observed message to a writer using the originating
// logger's prefix, so the output matches the console line. It is the usual
// way to tee a logger to stderr or to a file opened by the caller.
//
// Mirror is safe for concurrent use by multiple goroutines.
type Mirror struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewMirror creates a Mirror writing to w. A nil writer discards output.
func NewMirror(w io.Writer) *Mirror {
	if w == nil {
		w = io.Discard
	}
	return &Mirror{writer: w}
}

// Observe implements [logger.Observer].
func (m *Mirror) Observe(e logger.Event) error {
	line, err := e.Logger.Format(e.Severity, e.Text, e.Indent)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := fmt.Fprintln(m.writer, line); err != nil {
		return fmt.Errorf("mirror: failed to write line: %w", err)
	}
	return nil
}

// SetOutput changes the destination writer. A nil writer discards output.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *Mirror) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}
