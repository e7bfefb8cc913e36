package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStack(t *testing.T) {
	stack := NewStack()
	require.NotNil(t, stack)
	assert.True(t, stack.IsEmpty())
	assert.Equal(t, 0, stack.Len())
	assert.Nil(t, stack.Current())
	assert.Nil(t, stack.Pop(), "Pop on empty stack returns nil")
}

func TestStackPushPop(t *testing.T) {
	stack := NewStack()

	assert.Nil(t, stack.Push(mockOverlay{title: "Overlay 1"}))
	stack.Push(mockOverlay{title: "Overlay 2"})

	assert.Equal(t, 2, stack.Len())
	assert.Equal(t, "Overlay 2", stack.Current().Title())

	popped := stack.Pop()
	require.NotNil(t, popped)
	assert.Equal(t, "Overlay 2", popped.Title())
	assert.Equal(t, "Overlay 1", stack.Current().Title())

	stack.Pop()
	assert.True(t, stack.IsEmpty())
}

func TestStackClear(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "a"})
	stack.Push(mockOverlay{title: "b"})

	stack.Clear()

	assert.True(t, stack.IsEmpty())
	assert.Nil(t, stack.Current())
}

func TestStackEach(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "bottom"})
	stack.Push(mockOverlay{title: "top"})

	var titles []string
	stack.Each(func(o Overlay) { titles = append(titles, o.Title()) })

	assert.Equal(t, []string{"bottom", "top"}, titles)
}

func TestStackRemoveWhere(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "keep"})
	stack.Push(mockOverlay{title: "drop"})
	stack.Push(mockOverlay{title: "keep too"})

	removed := stack.RemoveWhere(func(o Overlay) bool { return o.Title() == "drop" })

	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, stack.Len())
	assert.Equal(t, "keep too", stack.Current().Title())
}

func TestStackUpdate(t *testing.T) {
	stack := NewStack()
	assert.Nil(t, stack.Update(key("enter")), "empty stack ignores messages")

	stack.Push(mockOverlay{title: "Test", value: "selected"})

	assert.Nil(t, stack.Update(key("x")))
	assert.Equal(t, "Test", stack.Current().Title())

	cmd := stack.Update(key("enter"))
	require.NotNil(t, cmd)
	sel, ok := cmd().(SelectionMsg)
	require.True(t, ok)
	assert.Equal(t, "test", sel.Key)
	assert.Equal(t, "selected", sel.Value)
}

func TestStackUpdateWithCloseMsg(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "Overlay 1"})
	stack.Push(mockOverlay{title: "Overlay 2"})

	assert.Nil(t, stack.Update(CloseOverlayMsg{}))
	assert.Equal(t, "Overlay 1", stack.Current().Title())

	stack.Update(CloseOverlayMsg{})
	assert.True(t, stack.IsEmpty())
}

func TestStackUpdateKeepsNewModel(t *testing.T) {
	stack := NewStack()
	prompt := NewCategoryPrompt()
	stack.Push(prompt)

	stack.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Work")})

	current, ok := stack.Current().(*CategoryPrompt)
	require.True(t, ok)
	assert.Equal(t, "Work", current.input.Value())
}
