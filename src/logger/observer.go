// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"reflect"
	"slices"
	"sync"
)

// Event is a single accepted log message as seen by an [Observer].
type Event struct {
	// Logger is the logger that accepted the message.
	Logger *Logger
	// Severity is the severity the message was logged at.
	Severity Severity
	// Indent reports whether the message is a continuation line.
	// See [WithIndentReporting].
	Indent bool
	// Text is the stringified payload, without prefix.
	Text string
}

// Observer receives every message accepted by the loggers it is registered
// with. Observe runs on the logging goroutine before the log call returns.
//
// Observers are identified by interface equality when unsubscribing or
// blacklisting, so implementations should be pointers or other comparable
// values. A non-comparable observer can be registered but never matches.
type Observer interface {
	Observe(Event) error
}

// funcObserver adapts a function to the Observer interface.
// It is always used by pointer so that the handle stays comparable.
type funcObserver struct{ fn func(Event) error }

func (f *funcObserver) Observe(e Event) error { return f.fn(e) }

// ObserverFunc returns an Observer that calls fn.
// Keep the returned value to unsubscribe or blacklist it later.
func ObserverFunc(fn func(Event) error) Observer {
	return &funcObserver{fn: fn}
}

// sameObserver reports whether a and b are the same registration.
// Values whose dynamic contents cannot be compared never match.
func sameObserver(a, b Observer) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	// A comparable struct may still hold an uncomparable value in an
	// interface field, which only fails at comparison time.
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// containsObserver reports whether o is present in list.
func containsObserver(list []Observer, o Observer) bool {
	return slices.ContainsFunc(list, func(x Observer) bool { return sameObserver(x, o) })
}

// observerList is an ordered, duplicate-friendly registry of observers.
//
// Mutations never write into a slice that was handed out by snapshot,
// which lets notification iterate without holding the lock.
type observerList struct {
	mu    sync.RWMutex
	items []Observer
}

// add appends o. A nil observer is ignored.
func (l *observerList) add(o Observer) {
	if o == nil {
		return
	}
	l.mu.Lock()
	l.items = append(l.items, o)
	l.mu.Unlock()
}

// remove drops the first registration of o. Absent observers are ignored.
func (l *observerList) remove(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.IndexFunc(l.items, func(x Observer) bool { return sameObserver(x, o) })
	if i < 0 {
		return
	}
	items := make([]Observer, 0, len(l.items)-1)
	items = append(items, l.items[:i]...)
	l.items = append(items, l.items[i+1:]...)
}

func (l *observerList) snapshot() []Observer {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items[:len(l.items):len(l.items)]
}

func (l *observerList) clear() {
	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()
}
