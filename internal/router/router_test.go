package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushActivatesAndInits(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	second := &stubScreen{title: "timer"}
	r.Push(second)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "timer" {
		t.Errorf("active = %q, want timer", r.Active().Title())
	}
	if !second.initRan {
		t.Error("pushed screen should be initialized")
	}
}

func TestPopReturnsToPrevious(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "timer"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("active = %q, want home", r.Active().Title())
	}
}

func TestPopKeepsRoot(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
}

func TestPopResumesUnderlyingScreen(t *testing.T) {
	root := &stubScreen{title: "home"}
	r := New(root)
	r.Push(&stubScreen{title: "pets"})
	r.Pop()

	if root.updates != 1 {
		t.Errorf("root updates = %d, want 1 resume", root.updates)
	}
}

func TestUpdateRoutesNavigationMessages(t *testing.T) {
	root := &stubScreen{title: "home"}
	r := New(root)

	r.Update(PushMsg{Screen: &stubScreen{title: "pets"}})
	if r.Active().Title() != "pets" {
		t.Fatalf("active = %q, want pets", r.Active().Title())
	}
	r.Update(PopMsg{})
	if r.Active().Title() != "home" {
		t.Fatalf("active = %q, want home", r.Active().Title())
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	root := &stubScreen{title: "home"}
	top := &stubScreen{title: "timer"}
	r := New(root)
	r.Push(top)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if top.updates != 1 {
		t.Errorf("top updates = %d, want 1", top.updates)
	}
	if root.updates != 0 {
		t.Errorf("root updates = %d, want 0", root.updates)
	}
}
