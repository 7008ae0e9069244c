package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/adasgupta/simtutor/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "second", r.Active().Title())
	assert.True(t, s2.initRan, "Init() should run on pushed screen")
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Push(&stubScreen{title: "second"})
	r.Pop()

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "first", r.Active().Title())
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	r.Pop()

	assert.Equal(t, 1, r.Depth(), "pop at bottom should be a no-op")
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "second", r.Active().Title())
	assert.True(t, s2.initRan, "Init() should run on replacement screen")
}

func TestUpdateNavigationMsgs(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "chat"}})
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "chat", r.Active().Title())

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "summary"}})
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "summary", r.Active().Title())

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.Active().Title())
}
