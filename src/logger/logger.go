// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// Console override states of a Logger.
const (
	consoleUnset int32 = iota
	consoleOn
	consoleOff
)

// Logger is a named logging channel. It is created by [Hub.New].
//
// Every leveled method first checks the severity gate and returns nil
// without doing any work if the message is filtered out. Accepted messages
// are written to the console (when enabled) and then passed to the local
// observers followed by the Hub's global observers.
//
// The returned error is nil unless the console write or an observer failed.
// All observers are invoked regardless; their errors are aggregated.
//
// Logger is safe for concurrent use by multiple goroutines.
type Logger struct {
	hub *Hub
	id  string

	maxSeverity  atomic.Int32
	console      atomic.Int32
	reportIndent bool

	prefixes [numSeverities]string
	indents  [numSeverities]string

	locals observerList
}

// Option configures a Logger created by Hub.New.
type Option func(*Logger)

// WithMaxSeverity sets the most verbose severity the logger accepts.
// Invalid values are ignored.
func WithMaxSeverity(s Severity) Option {
	return func(l *Logger) {
		if s.Valid() {
			l.maxSeverity.Store(int32(s))
		}
	}
}

// WithConsole overrides the Hub's console default for this logger.
func WithConsole(enabled bool) Option {
	return func(l *Logger) { l.SetConsole(enabled) }
}

// WithIndentReporting makes the Indent and Pretty entry points tell
// observers that continuation lines are indented. By default observers
// always receive Indent=false.
func WithIndentReporting() Option {
	return func(l *Logger) { l.reportIndent = true }
}

// WithObservers registers local observers at construction.
func WithObservers(obs ...Observer) Option {
	return func(l *Logger) {
		for _, o := range obs {
			l.locals.add(o)
		}
	}
}

// ID returns the name the logger was created with.
func (l *Logger) ID() string { return l.id }

// Hub returns the Hub the logger is bound to.
func (l *Logger) Hub() *Hub { return l.hub }

// MaxSeverity returns the most verbose severity the logger accepts.
func (l *Logger) MaxSeverity() Severity { return Severity(l.maxSeverity.Load()) }

// SetMaxSeverity changes the threshold. It returns an error wrapping
// ErrInvalidSeverity and leaves the threshold unchanged if s is invalid.
func (l *Logger) SetMaxSeverity(s Severity) error {
	if err := checkSeverity(s); err != nil {
		return err
	}
	l.maxSeverity.Store(int32(s))
	return nil
}

// Enabled reports whether a message of severity s passes the gate.
func (l *Logger) Enabled(s Severity) bool {
	return s.Valid() && s <= l.MaxSeverity()
}

// SetConsole overrides the Hub's console default for this logger.
func (l *Logger) SetConsole(enabled bool) {
	if enabled {
		l.console.Store(consoleOn)
	} else {
		l.console.Store(consoleOff)
	}
}

// ClearConsole removes the console override so the Hub's default applies again.
func (l *Logger) ClearConsole() { l.console.Store(consoleUnset) }

// WritesConsole reports whether accepted messages are written to the console.
func (l *Logger) WritesConsole() bool {
	switch l.console.Load() {
	case consoleOn:
		return true
	case consoleOff:
		return false
	}
	return l.hub.ConsoleDefault()
}

// Prefix returns the tag for severity s, e.g. "[net WARNING] ".
func (l *Logger) Prefix(s Severity) (string, error) {
	if err := checkSeverity(s); err != nil {
		return "", err
	}
	return l.prefixes[s], nil
}

// IndentPrefix returns spaces as wide as Prefix(s).
func (l *Logger) IndentPrefix(s Severity) (string, error) {
	if err := checkSeverity(s); err != nil {
		return "", err
	}
	return l.indents[s], nil
}

// Format returns the console line for payload without the trailing newline.
// With indent set, the prefix is replaced by spaces of the same width.
func (l *Logger) Format(s Severity, payload any, indent bool) (string, error) {
	if err := checkSeverity(s); err != nil {
		return "", err
	}
	return l.lead(s, indent) + fmt.Sprint(payload), nil
}

// Subscribe registers o as a local observer of this logger.
// Registering the same observer twice makes it fire twice.
func (l *Logger) Subscribe(o Observer) { l.locals.add(o) }

// Unsubscribe removes the first local registration of o.
// It does nothing if o is not registered.
func (l *Logger) Unsubscribe(o Observer) { l.locals.remove(o) }

// Observers returns the local observers in notification order.
func (l *Logger) Observers() []Observer {
	return slices.Clone(l.locals.snapshot())
}

// Notify hands payload to the local observers and then to the global
// observers, skipping those listed in localSkip and globalSkip for this call
// only. It does not consult the severity gate and does not write to the
// console.
func (l *Logger) Notify(s Severity, indent bool, payload any, localSkip, globalSkip []Observer) error {
	if err := checkSeverity(s); err != nil {
		return err
	}
	return l.notify(s, indent, fmt.Sprint(payload), localSkip, globalSkip)
}

func (l *Logger) notify(s Severity, indent bool, text string, localSkip, globalSkip []Observer) error {
	e := Event{Logger: l, Severity: s, Indent: indent, Text: text}

	var merr *multierror.Error
	for _, o := range l.locals.snapshot() {
		if containsObserver(localSkip, o) {
			continue
		}
		if err := o.Observe(e); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("local observer: %w", err))
		}
	}
	for _, o := range l.hub.observers.snapshot() {
		if containsObserver(globalSkip, o) {
			continue
		}
		if err := o.Observe(e); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("global observer: %w", err))
		}
	}
	return merr.ErrorOrNil()
}

// emit is the body shared by every leveled entry point.
// s must be valid.
func (l *Logger) emit(s Severity, payload any, indent bool) error {
	if !l.Enabled(s) {
		return nil
	}
	text := fmt.Sprint(payload)

	var merr *multierror.Error
	if l.WritesConsole() {
		if err := l.hub.writeLine(l.lead(s, indent), text); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("log %s: %w", s, err))
		}
	}
	if err := l.notify(s, indent && l.reportIndent, text, nil, nil); err != nil {
		merr = multierror.Append(merr, err)
	}
	return merr.ErrorOrNil()
}

// pretty logs every line of the stringified payload, the first one with the
// prefix and the rest indented beneath it.
func (l *Logger) pretty(s Severity, payload any) error {
	if !l.Enabled(s) {
		return nil
	}

	var merr *multierror.Error
	for i, line := range strings.Split(fmt.Sprint(payload), "\n") {
		if err := l.emit(s, line, i > 0); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}

func (l *Logger) lead(s Severity, indent bool) string {
	if indent {
		return l.indents[s]
	}
	return l.prefixes[s]
}

// Debug logs payload at Debug severity.
func (l *Logger) Debug(payload any) error { return l.emit(Debug, payload, false) }

// Info logs payload at Info severity.
func (l *Logger) Info(payload any) error { return l.emit(Info, payload, false) }

// Warn logs payload at Warn severity.
func (l *Logger) Warn(payload any) error { return l.emit(Warn, payload, false) }

// Error logs payload at Error severity.
func (l *Logger) Error(payload any) error { return l.emit(Error, payload, false) }

// DebugIndent logs payload at Debug severity as a continuation line.
func (l *Logger) DebugIndent(payload any) error { return l.emit(Debug, payload, true) }

// InfoIndent logs payload at Info severity as a continuation line.
func (l *Logger) InfoIndent(payload any) error { return l.emit(Info, payload, true) }

// WarnIndent logs payload at Warn severity as a continuation line.
func (l *Logger) WarnIndent(payload any) error { return l.emit(Warn, payload, true) }

// ErrorIndent logs payload at Error severity as a continuation line.
func (l *Logger) ErrorIndent(payload any) error { return l.emit(Error, payload, true) }

// DebugPretty logs a multi-line payload at Debug severity as an aligned block.
func (l *Logger) DebugPretty(payload any) error { return l.pretty(Debug, payload) }

// InfoPretty logs a multi-line payload at Info severity as an aligned block.
func (l *Logger) InfoPretty(payload any) error { return l.pretty(Info, payload) }

// WarnPretty logs a multi-line payload at Warn severity as an aligned block.
func (l *Logger) WarnPretty(payload any) error { return l.pretty(Warn, payload) }

// ErrorPretty logs a multi-line payload at Error severity as an aligned block.
func (l *Logger) ErrorPretty(payload any) error { return l.pretty(Error, payload) }

// ErrorEscalate logs payload at Error severity and then returns an
// *EscalatedError carrying the text. Console or observer failures are
// appended to the returned error; errors.As still finds the EscalatedError.
func (l *Logger) ErrorEscalate(payload any) error {
	if !l.Enabled(Error) {
		return nil
	}
	text := fmt.Sprint(payload)
	esc := &EscalatedError{Logger: l.id, Text: text}
	if err := l.emit(Error, text, false); err != nil {
		return multierror.Append(esc, err)
	}
	return esc
}

// Log dispatches payload to Debug, Info, Warn or Error according to s.
func (l *Logger) Log(s Severity, payload any) error {
	switch s {
	case Debug:
		return l.Debug(payload)
	case Info:
		return l.Info(payload)
	case Warn:
		return l.Warn(payload)
	case Error:
		return l.Error(payload)
	}
	return checkSeverity(s)
}

// LogIndent dispatches payload to the Indent entry point matching s.
func (l *Logger) LogIndent(s Severity, payload any) error {
	if err := checkSeverity(s); err != nil {
		return err
	}
	return l.emit(s, payload, true)
}

// LogPretty dispatches payload to the Pretty entry point matching s.
func (l *Logger) LogPretty(s Severity, payload any) error {
	if err := checkSeverity(s); err != nil {
		return err
	}
	return l.pretty(s, payload)
}

// spaces returns a run of spaces as wide, in runes, as s.
func spaces(s string) string {
	return strings.Repeat(" ", utf8.RuneCountInString(s))
}
