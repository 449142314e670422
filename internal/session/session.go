// Package session keeps the short-term conversational memory: an
// append-only log of turns scoped to one running session.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/halcyonlab/tablechat/internal/nlu"
)

// Turn is one utterance/understanding cycle. Turns are never mutated
// after being recorded.
type Turn struct {
	ID         uuid.UUID
	Timestamp  time.Time
	Utterance  string
	Intent     nlu.Intent
	Confidence float64
	Entities   nlu.Entities
}

// Context is the append-only turn log. It grows for the lifetime of the
// session unless a MaxTurns bound is configured; there is no deletion
// operation. Access is single-threaded by contract; callers exposing a
// Context to concurrent goroutines must serialize it themselves.
type Context struct {
	turns    []Turn
	maxTurns int
	now      func() time.Time
}

// Option configures a Context.
type Option func(*Context)

// WithMaxTurns bounds the log to the most recent n turns. Zero (the
// default) keeps every turn for the lifetime of the session.
func WithMaxTurns(n int) Option {
	return func(c *Context) { c.maxTurns = n }
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Context) { c.now = now }
}

// New creates an empty conversation context.
func New(opts ...Option) *Context {
	c := &Context{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Record appends a turn built from the given understanding and returns it.
func (c *Context) Record(utterance string, result nlu.Result, entities nlu.Entities) Turn {
	t := Turn{
		ID:         uuid.New(),
		Timestamp:  c.now(),
		Utterance:  utterance,
		Intent:     result.Intent,
		Confidence: result.Confidence,
		Entities:   entities,
	}
	c.turns = append(c.turns, t)
	if c.maxTurns > 0 && len(c.turns) > c.maxTurns {
		c.turns = c.turns[len(c.turns)-c.maxTurns:]
	}
	return t
}

// Len returns the number of retained turns.
func (c *Context) Len() int { return len(c.turns) }

// Last returns the most recent turn, if any.
func (c *Context) Last() (Turn, bool) {
	if len(c.turns) == 0 {
		return Turn{}, false
	}
	return c.turns[len(c.turns)-1], true
}

// History returns the last n turns in chronological order. n <= 0 or
// n greater than the log length returns everything retained.
func (c *Context) History(n int) []Turn {
	if n <= 0 || n > len(c.turns) {
		n = len(c.turns)
	}
	out := make([]Turn, n)
	copy(out, c.turns[len(c.turns)-n:])
	return out
}

// Summarize renders a short digest: total turn count plus the last five
// turns with timestamp, utterance prefix and intent label.
func (c *Context) Summarize() string {
	if len(c.turns) == 0 {
		return "尚未開始對話"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "對話記錄 (%d 次互動)\n", len(c.turns))
	b.WriteString(strings.Repeat("=", 40) + "\n")
	for i, t := range c.History(5) {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, t.Timestamp.Format("15:04:05"), prefix(t.Utterance, 50))
		fmt.Fprintf(&b, "   意圖: %s\n", t.Intent)
	}
	return b.String()
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
