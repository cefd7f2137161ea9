package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mvoronov/mathmage/internal/screen"
)

type stubScreen struct {
	name string
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func TestPushPopReplace(t *testing.T) {
	a := &stubScreen{name: "a"}
	b := &stubScreen{name: "b"}
	c := &stubScreen{name: "c"}

	r := New(a)
	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	r.Push(b)
	if r.Active() != b {
		t.Error("push should activate the new screen")
	}

	r.Replace(c)
	if r.Active() != c || r.Depth() != 2 {
		t.Errorf("replace should swap the top screen, depth = %d", r.Depth())
	}

	r.Pop()
	if r.Active() != a {
		t.Error("pop should return to the previous screen")
	}

	// The last screen never pops.
	r.Pop()
	if r.Depth() != 1 || r.Active() != a {
		t.Error("popping the only screen should be a no-op")
	}
}

func TestNavigationMessages(t *testing.T) {
	a := &stubScreen{name: "a"}
	b := &stubScreen{name: "b"}

	r := New(a)
	r.Update(PushScreenMsg{Screen: b})
	if r.Active() != b {
		t.Error("PushScreenMsg should push the screen")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != a {
		t.Error("PopScreenMsg should pop the screen")
	}

	r.Update(ReplaceScreenMsg{Screen: b})
	if r.Active() != b || r.Depth() != 1 {
		t.Error("ReplaceScreenMsg should swap the active screen")
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&stubScreen{name: "root"})
	if got := r.View(80, 24); got != "root" {
		t.Errorf("View = %q, want root", got)
	}
}
