// Package router manages the screen stack of the terminal UI.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/akshad/studyquest/internal/ui/layout"
)

// Screen is one full-screen view. The router owns navigation; screens
// own their content.
type Screen interface {
	// Init returns the command to run when the screen first appears.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	// Title names the screen for the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// PushMsg asks the router to push a screen onto the stack.
type PushMsg struct {
	Screen Screen
}

// PopMsg asks the router to pop the current screen.
type PopMsg struct{}

// ResumedMsg is delivered to a screen when a pop re-exposes it, so it can
// reload anything the departed screen may have changed.
type ResumedMsg struct{}

// Router is a stack of screens; the top one is active.
type Router struct {
	stack []Screen
}

// New builds a router rooted at the given screen.
func New(initial Screen) *Router {
	return &Router{stack: []Screen{initial}}
}

// Push adds a screen on top of the stack and runs its Init.
func (r *Router) Push(s Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen and resumes the one underneath. The root
// screen never pops.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	updated, cmd := r.Active().Update(ResumedMsg{})
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// Active returns the top screen.
func (r *Router) Active() Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the stack depth.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update routes navigation messages, forwarding everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushMsg:
		return r.Push(msg.Screen)
	case PopMsg:
		return r.Pop()
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
