// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package observers

import (
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/complog/src/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// counts holds one counter per severity, indexed by severity value.
type counts [4]int

// Tally counts observed messages per logger id and severity.
//
// Tally is safe for concurrent use by multiple goroutines.
type Tally struct {
	mu     sync.Mutex
	counts map[string]*counts
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]*counts)}
}

// Observe implements [logger.Observer].
func (t *Tally) Observe(e logger.Event) error {
	if !e.Severity.Valid() {
		return nil
	}
	id := e.Logger.ID()

	t.mu.Lock()
	defer t.mu.Unlock()
	c, ok := t.counts[id]
	if !ok {
		c = &counts{}
		t.counts[id] = c
	}
	c[e.Severity]++
	return nil
}

// Count returns how many messages of severity s logger id produced.
func (t *Tally) Count(id string, s logger.Severity) int {
	if !s.Valid() {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.counts[id]; ok {
		return c[s]
	}
	return 0
}

// Total returns the number of observed messages.
func (t *Tally) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	total := 0
	for _, c := range t.counts {
		for _, n := range c {
			total += n
		}
	}
	return total
}

// RenderTable renders the tally as a markdown table with one row per
// logger id, sorted by id, and one column per severity.
//
// Thread Safety: Safe for concurrent use.
func (t *Tally) RenderTable() string {
	t.mu.Lock()
	ids := make([]string, 0, len(t.counts))
	for id := range t.counts {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var rows [][]string
	for _, id := range ids {
		c := t.counts[id]
		row := []string{id}
		for _, s := range logger.Severities() {
			row = append(row, strconv.Itoa(c[s]))
		}
		rows = append(rows, row)
	}
	t.mu.Unlock()

	if len(rows) == 0 {
		return "No messages logged"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"LOGGER"}
	for _, s := range logger.Severities() {
		headers = append(headers, s.String())
	}
	table.Header(headers)
	table.Bulk(rows)
	table.Render()
	return buf.String()
}
