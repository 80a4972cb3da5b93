// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/complog/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a minimal Observer that keeps every event it sees.
type recorder struct {
	mu     sync.Mutex
	events []logger.Event
	err    error
}

func (r *recorder) Observe(e logger.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return r.err
}

func (r *recorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// errWriter fails every write.
type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("stream closed") }

// point has a natural textual form through fmt.Stringer.
type point struct{ x, y int }

func (p point) String() string { return fmt.Sprintf("(%d,%d)", p.x, p.y) }

func newTestHub(buf *bytes.Buffer) *logger.Hub {
	return logger.NewHub(logger.WithOutput(buf))
}

func lines(buf *bytes.Buffer) []string {
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestLogger_Gate(t *testing.T) {
	var buf bytes.Buffer
	hub := newTestHub(&buf)

	for _, limit := range logger.Severities() {
		log := hub.New("gate", logger.WithMaxSeverity(limit))
		for _, s := range logger.Severities() {
			assert.Equal(t, s <= limit, log.Enabled(s), "max=%s s=%s", limit, s)
		}
		assert.False(t, log.Enabled(logger.Severity(7)), "invalid severity must never pass")
	}
}

func TestLogger_DefaultMaxSeverity(t *testing.T) {
	hub := logger.NewHub(logger.WithOutput(nil))
	log := hub.New("defaults")

	assert.Equal(t, logger.DefaultMaxSeverity, log.MaxSeverity())
	assert.Equal(t, "defaults", log.ID())
	assert.Same(t, hub, log.Hub())
}

func TestLogger_SetMaxSeverity(t *testing.T) {
	hub := logger.NewHub(logger.WithOutput(nil))
	log := hub.New("sev", logger.WithMaxSeverity(logger.Info))

	require.NoError(t, log.SetMaxSeverity(logger.Debug))
	assert.Equal(t, logger.Debug, log.MaxSeverity())

	err := log.SetMaxSeverity(logger.Severity(4))
	assert.ErrorIs(t, err, logger.ErrInvalidSeverity)
	assert.Equal(t, logger.Debug, log.MaxSeverity(), "threshold must be unchanged after invalid set")

	ignored := hub.New("sev2", logger.WithMaxSeverity(logger.Severity(-3)))
	assert.Equal(t, logger.DefaultMaxSeverity, ignored.MaxSeverity())
}

func TestLogger_Prefixes(t *testing.T) {
	hub := logger.NewHub(logger.WithOutput(nil))
	log := hub.New("X")

	expected := map[logger.Severity]string{
		logger.Error: "[X ERROR] ",
		logger.Warn:  "[X WARNING] ",
		logger.Info:  "[X INFO] ",
		logger.Debug: "[X DEBUG] ",
	}

	for s, want := range expected {
		t.Run(s.String(), func(t *testing.T) {
			prefix, err := log.Prefix(s)
			require.NoError(t, err)
			assert.Equal(t, want, prefix)

			indent, err := log.IndentPrefix(s)
			require.NoError(t, err)
			assert.Len(t, indent, len(prefix))
			assert.Equal(t, strings.Repeat(" ", len(prefix)), indent)
		})
	}

	_, err := log.Prefix(logger.Severity(5))
	assert.ErrorIs(t, err, logger.ErrInvalidSeverity)
	_, err = log.IndentPrefix(logger.Severity(5))
	assert.ErrorIs(t, err, logger.ErrInvalidSeverity)
}

func TestLogger_PrefixesAreCached(t *testing.T) {
	hub := logger.NewHub(logger.WithOutput(nil))
	log := hub.New("cache")

	first, _ := log.Prefix(logger.Debug)
	second, _ := log.Prefix(logger.Debug)
	assert.Equal(t, first, second)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = log.Prefix(logger.Debug)
		_, _ = log.IndentPrefix(logger.Warn)
	})
	assert.Zero(t, allocs, "prefix lookups must not rebuild strings")
}

func TestLogger_Format(t *testing.T) {
	hub := logger.NewHub(logger.WithOutput(nil))
	log := hub.New("fmt")

	tests := []struct {
		name     string
		severity logger.Severity
		payload  any
		indent   bool
		expected string
	}{
		{name: "plain", severity: logger.Info, payload: "hello", expected: "[fmt INFO] hello"},
		{name: "indent", severity: logger.Warn, payload: "cont", indent: true, expected: strings.Repeat(" ", len("[fmt WARNING] ")) + "cont"},
		{name: "stringer", severity: logger.Debug, payload: point{1, 2}, expected: "[fmt DEBUG] (1,2)"},
		{name: "error payload", severity: logger.Error, payload: errors.New("boom"), expected: "[fmt ERROR] boom"},
		{name: "int payload", severity: logger.Error, payload: 42, expected: "[fmt ERROR] 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := log.Format(tt.severity, tt.payload, tt.indent)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	got, err := log.Format(logger.Severity(8), "x", false)
	assert.ErrorIs(t, err, logger.ErrInvalidSeverity)
	assert.Empty(t, got)
}

func TestLogger_Console(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "WritesOneLinePerCall",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := newTestHub(&buf).New("net", logger.WithMaxSeverity(logger.Debug))

				require.NoError(t, log.Debug("d"))
				require.NoError(t, log.Info("i"))
				require.NoError(t, log.Warn("w"))
				require.NoError(t, log.Error("e"))

				assert.Equal(t, []string{
					"[net DEBUG] d",
					"[net INFO] i",
					"[net WARNING] w",
					"[net ERROR] e",
				}, lines(&buf))
			},
		},
		{
			name: "IndentVariants",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := newTestHub(&buf).New("ab", logger.WithMaxSeverity(logger.Debug))

				require.NoError(t, log.DebugIndent("d"))
				require.NoError(t, log.InfoIndent("i"))
				require.NoError(t, log.WarnIndent("w"))
				require.NoError(t, log.ErrorIndent("e"))

				assert.Equal(t, []string{
					strings.Repeat(" ", len("[ab DEBUG] ")) + "d",
					strings.Repeat(" ", len("[ab INFO] ")) + "i",
					strings.Repeat(" ", len("[ab WARNING] ")) + "w",
					strings.Repeat(" ", len("[ab ERROR] ")) + "e",
				}, lines(&buf))
			},
		},
		{
			name: "FilteredProducesNothing",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				hub := newTestHub(&buf)
				rec := &recorder{}
				hub.Subscribe(rec)
				log := hub.New("quiet", logger.WithMaxSeverity(logger.Warn), logger.WithObservers(rec))

				require.NoError(t, log.Debug("hidden"))
				require.NoError(t, log.Info("hidden"))
				require.NoError(t, log.DebugIndent("hidden"))
				require.NoError(t, log.InfoPretty("hidden\nblock"))

				assert.Zero(t, buf.Len())
				assert.Zero(t, rec.len())
			},
		},
		{
			name: "HubDefaultOff",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				hub := logger.NewHub(logger.WithOutput(&buf), logger.WithConsoleDefault(false))
				rec := &recorder{}
				log := hub.New("off", logger.WithObservers(rec))

				require.NoError(t, log.Error("not on console"))
				assert.Zero(t, buf.Len())
				assert.Equal(t, 1, rec.len(), "observers still fire without console")
				assert.False(t, log.WritesConsole())
			},
		},
		{
			name: "OverrideBeatsDefault",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				hub := newTestHub(&buf)
				forcedOff := hub.New("a", logger.WithConsole(false))
				forcedOn := hub.New("b", logger.WithConsole(true))
				unset := hub.New("c")

				hub.SetConsoleDefault(false)
				assert.False(t, forcedOff.WritesConsole())
				assert.True(t, forcedOn.WritesConsole())
				assert.False(t, unset.WritesConsole())

				hub.SetConsoleDefault(true)
				assert.False(t, forcedOff.WritesConsole())
				assert.True(t, unset.WritesConsole())

				forcedOff.ClearConsole()
				assert.True(t, forcedOff.WritesConsole())
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				hub := newTestHub(&buf1)
				log := hub.New("out")

				require.NoError(t, log.Warn("first"))
				hub.SetOutput(&buf2)
				require.NoError(t, log.Warn("second"))
				hub.SetOutput(nil)
				require.NoError(t, log.Warn("third"))

				assert.Equal(t, "[out WARNING] first\n", buf1.String())
				assert.Equal(t, "[out WARNING] second\n", buf2.String())
			},
		},
		{
			name: "WriteFailurePropagates",
			testFunc: func(t *testing.T) {
				hub := logger.NewHub(logger.WithOutput(errWriter{}))
				rec := &recorder{}
				log := hub.New("broken", logger.WithObservers(rec))

				err := log.Error("lost")
				require.Error(t, err)
				assert.Contains(t, err.Error(), "stream closed")
				assert.Equal(t, 1, rec.len(), "observers are notified even if the console failed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestLogger_Pretty(t *testing.T) {
	tests := []struct {
		name     string
		severity logger.Severity
		call     func(l *logger.Logger, payload any) error
	}{
		{"Debug", logger.Debug, (*logger.Logger).DebugPretty},
		{"Info", logger.Info, (*logger.Logger).InfoPretty},
		{"Warn", logger.Warn, (*logger.Logger).WarnPretty},
		{"Error", logger.Error, (*logger.Logger).ErrorPretty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rec := &recorder{}
			log := newTestHub(&buf).New("P", logger.WithMaxSeverity(logger.Debug), logger.WithObservers(rec))

			require.NoError(t, tt.call(log, "a\nb\nc"))

			prefix, _ := log.Prefix(tt.severity)
			indent, _ := log.IndentPrefix(tt.severity)
			assert.Equal(t, []string{prefix + "a", indent + "b", indent + "c"}, lines(&buf))

			require.Equal(t, 3, rec.len())
			for i, text := range []string{"a", "b", "c"} {
				assert.Equal(t, tt.severity, rec.events[i].Severity)
				assert.Equal(t, text, rec.events[i].Text)
				assert.False(t, rec.events[i].Indent, "continuation lines report indent=false by default")
			}
		})
	}
}

func TestLogger_PrettySingleLine(t *testing.T) {
	var buf bytes.Buffer
	log := newTestHub(&buf).New("P", logger.WithMaxSeverity(logger.Info))

	require.NoError(t, log.InfoPretty("only"))
	require.NoError(t, log.InfoPretty(""))

	assert.Equal(t, []string{"[P INFO] only", "[P INFO] "}, lines(&buf))
}

func TestLogger_IndentReporting(t *testing.T) {
	var buf bytes.Buffer
	rec := &recorder{}
	log := newTestHub(&buf).New("R",
		logger.WithMaxSeverity(logger.Info),
		logger.WithIndentReporting(),
		logger.WithObservers(rec),
	)

	require.NoError(t, log.InfoPretty("head\ntail"))
	require.NoError(t, log.WarnIndent("cont"))

	require.Equal(t, 3, rec.len())
	assert.False(t, rec.events[0].Indent)
	assert.True(t, rec.events[1].Indent)
	assert.True(t, rec.events[2].Indent)
}

func TestLogger_Log(t *testing.T) {
	for _, s := range logger.Severities() {
		t.Run(s.String(), func(t *testing.T) {
			var direct, dispatched bytes.Buffer
			recDirect, recDispatched := &recorder{}, &recorder{}

			a := newTestHub(&direct).New("L", logger.WithMaxSeverity(logger.Debug), logger.WithObservers(recDirect))
			b := newTestHub(&dispatched).New("L", logger.WithMaxSeverity(logger.Debug), logger.WithObservers(recDispatched))

			switch s {
			case logger.Debug:
				require.NoError(t, a.Debug("m"))
			case logger.Info:
				require.NoError(t, a.Info("m"))
			case logger.Warn:
				require.NoError(t, a.Warn("m"))
			case logger.Error:
				require.NoError(t, a.Error("m"))
			}
			require.NoError(t, b.Log(s, "m"))

			assert.Equal(t, direct.String(), dispatched.String())
			require.Equal(t, 1, recDispatched.len())
			assert.Equal(t, recDirect.events[0].Severity, recDispatched.events[0].Severity)
			assert.Equal(t, recDirect.events[0].Text, recDispatched.events[0].Text)
			assert.Equal(t, recDirect.events[0].Indent, recDispatched.events[0].Indent)
		})
	}
}

func TestLogger_LogInvalid(t *testing.T) {
	var buf bytes.Buffer
	rec := &recorder{}
	log := newTestHub(&buf).New("L", logger.WithMaxSeverity(logger.Debug), logger.WithObservers(rec))

	for _, s := range []logger.Severity{-1, 4, 100} {
		assert.ErrorIs(t, log.Log(s, "m"), logger.ErrInvalidSeverity)
		assert.ErrorIs(t, log.LogIndent(s, "m"), logger.ErrInvalidSeverity)
		assert.ErrorIs(t, log.LogPretty(s, "m\nn"), logger.ErrInvalidSeverity)
	}
	assert.Zero(t, buf.Len())
	assert.Zero(t, rec.len())
}

func TestLogger_LogIndentAndPretty(t *testing.T) {
	var buf bytes.Buffer
	log := newTestHub(&buf).New("D", logger.WithMaxSeverity(logger.Debug))

	require.NoError(t, log.LogIndent(logger.Info, "x"))
	require.NoError(t, log.LogPretty(logger.Warn, "y\nz"))

	assert.Equal(t, []string{
		strings.Repeat(" ", len("[D INFO] ")) + "x",
		"[D WARNING] y",
		strings.Repeat(" ", len("[D WARNING] ")) + "z",
	}, lines(&buf))
}

func TestLogger_ErrorEscalate(t *testing.T) {
	var buf bytes.Buffer
	rec := &recorder{}
	log := newTestHub(&buf).New("E", logger.WithObservers(rec))

	err := log.ErrorEscalate("boom")
	require.Error(t, err)

	var esc *logger.EscalatedError
	require.ErrorAs(t, err, &esc)
	assert.Equal(t, "boom", esc.Text)
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "E", esc.Logger)

	assert.Equal(t, "[E ERROR] boom\n", buf.String(), "message is written before escalating")
	require.Equal(t, 1, rec.len(), "observers are notified before escalating")
	assert.Equal(t, logger.Error, rec.events[0].Severity)
}

func TestLogger_ErrorEscalateWithFailingObserver(t *testing.T) {
	var buf bytes.Buffer
	hub := newTestHub(&buf)
	hub.Subscribe(&recorder{err: errors.New("sink down")})
	log := hub.New("E")

	err := log.ErrorEscalate("boom")
	require.Error(t, err)

	var esc *logger.EscalatedError
	require.ErrorAs(t, err, &esc)
	assert.Equal(t, "boom", esc.Text)
	assert.Contains(t, err.Error(), "sink down")
}

func TestLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	hub := newTestHub(&buf)
	rec := &recorder{}
	hub.Subscribe(rec)
	log := hub.New("conc", logger.WithMaxSeverity(logger.Info))

	const numGoroutines = 50
	const messagesPerGoroutine = 10

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			for j := range messagesPerGoroutine {
				_ = log.Info(fmt.Sprintf("goroutine %d message %d", id, j))
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, lines(&buf), numGoroutines*messagesPerGoroutine)
	assert.Equal(t, numGoroutines*messagesPerGoroutine, rec.len())
}
