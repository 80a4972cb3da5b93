// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/H0llyW00dzZ/complog/src/internal/helper/gc"
)

// Hub is the registry shared by a family of loggers. It owns the global
// observers, the console default and the console writer.
//
// A process typically creates one Hub at startup and passes it to every
// component that needs a logger. Tests create their own.
//
// Hub is safe for concurrent use by multiple goroutines.
type Hub struct {
	observers      observerList
	consoleDefault atomic.Bool

	mu  sync.Mutex
	out io.Writer
}

// HubOption configures a Hub created by NewHub.
type HubOption func(*Hub)

// WithOutput sets the console writer. A nil writer discards output.
func WithOutput(w io.Writer) HubOption {
	return func(h *Hub) { h.out = writerOrDiscard(w) }
}

// WithConsoleDefault sets whether loggers without a console override
// write to the console.
func WithConsoleDefault(enabled bool) HubOption {
	return func(h *Hub) { h.consoleDefault.Store(enabled) }
}

// NewHub creates a Hub with no observers that writes the console to
// os.Stdout.
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{out: os.Stdout}
	h.consoleDefault.Store(true)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Subscribe registers o as a global observer. It is notified of every
// message accepted by any logger of this Hub, after the logger's local
// observers. Registering the same observer twice makes it fire twice.
func (h *Hub) Subscribe(o Observer) { h.observers.add(o) }

// Unsubscribe removes the first registration of o.
// It does nothing if o is not registered.
func (h *Hub) Unsubscribe(o Observer) { h.observers.remove(o) }

// Observers returns the global observers in notification order.
func (h *Hub) Observers() []Observer {
	return slices.Clone(h.observers.snapshot())
}

// ConsoleDefault reports whether loggers without an override write to the console.
func (h *Hub) ConsoleDefault() bool { return h.consoleDefault.Load() }

// SetConsoleDefault changes the console default for all loggers
// of this Hub that have no override.
func (h *Hub) SetConsoleDefault(enabled bool) { h.consoleDefault.Store(enabled) }

// SetOutput sets the console writer. A nil writer discards output.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (h *Hub) SetOutput(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.out = writerOrDiscard(w)
}

// Reset removes all global observers and restores the console default to
// true. The console writer is kept.
func (h *Hub) Reset() {
	h.observers.clear()
	h.consoleDefault.Store(true)
}

// New creates a logger named id bound to this Hub. Prefixes and indents
// are derived from id once, here.
func (h *Hub) New(id string, opts ...Option) *Logger {
	l := &Logger{hub: h, id: id}
	l.maxSeverity.Store(int32(DefaultMaxSeverity))
	for _, s := range Severities() {
		p := "[" + id + " " + s.String() + "] "
		l.prefixes[s] = p
		l.indents[s] = spaces(p)
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// writeLine writes prefix, text and a newline to the console
// in a single Write call.
func (h *Hub) writeLine(prefix, text string) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString(prefix)
	buf.WriteString(text)
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write console line: %w", err)
	}
	return nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
