// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package observers

import (
	"sync"

	"github.com/H0llyW00dzZ/complog/src/logger"
)

// Capture records every observed event. It is intended for tests.
type Capture struct {
	mu     sync.Mutex
	events []logger.Event
	err    error
}

// NewCapture returns an empty Capture.
func NewCapture() *Capture { return &Capture{} }

// Observe implements [logger.Observer]. The event is recorded even when
// a failure has been configured with FailWith.
func (c *Capture) Observe(e logger.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
	return c.err
}

// FailWith makes subsequent Observe calls return err. Pass nil to stop failing.
func (c *Capture) FailWith(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

// Events returns a copy of the recorded events in arrival order.
func (c *Capture) Events() []logger.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]logger.Event(nil), c.events...)
}

// Texts returns the text of every recorded event in arrival order.
func (c *Capture) Texts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	texts := make([]string, len(c.events))
	for i, e := range c.events {
		texts[i] = e.Text
	}
	return texts
}

// Len returns the number of recorded events.
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

// Reset drops all recorded events.
func (c *Capture) Reset() {
	c.mu.Lock()
	c.events = nil
	c.mu.Unlock()
}
