// Package notify delivers best-effort user notifications. A failing or
// absent sink must never block a state transition, so every implementation
// swallows its own errors.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Notifier is the message sink the engine and reconciler publish to.
type Notifier interface {
	// Notify shows a message. Best-effort: implementations return
	// nothing and must not panic.
	Notify(title, message string)
}

// Nop discards every notification.
type Nop struct{}

func (Nop) Notify(string, string) {}

// Terminal writes notifications to a terminal using OSC 9 (picked up by
// terminals that surface desktop notifications) followed by a bell.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTerminal creates a Terminal notifier writing to w, typically stderr.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) Notify(title, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// Write errors are dropped: a closed terminal is the "denied
	// permission" case and the state transition already happened.
	fmt.Fprintf(t.w, "\x1b]9;%s: %s\x07", title, message)
}

// Recorder captures notifications for tests.
type Recorder struct {
	mu       sync.Mutex
	Messages []string
}

func (r *Recorder) Notify(title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, title+": "+message)
}

// Count returns the number of captured notifications.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Messages)
}
