package ui_test

import (
	"strings"
	"testing"

	"auction-house/internal/ui"
	"auction-house/internal/ui/uitest"

	"github.com/stretchr/testify/require"
)

func newTestField(masked bool) ui.Field {
	return ui.NewField(ui.Rect{X: 100, Y: 100, Width: 240, Height: 40}, masked)
}

// step runs one update frame and drops the queued input edges.
func step(f *ui.Field, b *uitest.Backend) {
	f.Update(b)
	b.ClearInput()
}

// Tests focus transitions
func TestField_Focus(t *testing.T) {
	b := uitest.New(800, 600)
	f := newTestField(false)

	require.False(t, f.Focused())

	// press inside focuses
	b.ClickRect(f.Rect)
	step(&f, b)
	require.True(t, f.Focused())

	// press outside unfocuses
	b.Click(10, 10)
	step(&f, b)
	require.False(t, f.Focused())

	// Enter while focused unfocuses
	b.ClickRect(f.Rect)
	step(&f, b)
	b.Press(ui.KeyEnter)
	step(&f, b)
	require.False(t, f.Focused())
}

// Tests typing, the character filter and the capacity limit
func TestField_Typing(t *testing.T) {
	b := uitest.New(800, 600)
	f := newTestField(false)

	// input while unfocused is ignored
	b.Type("ignored")
	step(&f, b)
	require.Equal(t, "", f.Text())

	b.ClickRect(f.Rect)
	step(&f, b)

	b.Type("hello world")
	step(&f, b)
	require.Equal(t, "hello world", f.Text())

	// only printable ASCII 32..125 is accepted
	b.Type("\t\n")
	b.Type(string([]rune{31, 126, 200, 'x'}))
	step(&f, b)
	require.Equal(t, "hello worldx", f.Text())

	// excess input beyond the limit is silently dropped
	b.Type(strings.Repeat("a", 30))
	step(&f, b)
	require.Equal(t, ui.DefaultFieldLimit, len(f.Text()))
	require.Equal(t, "hello worldxaaaaaaaa", f.Text())
}

// Tests backspace
func TestField_Backspace(t *testing.T) {
	b := uitest.New(800, 600)
	f := newTestField(false)

	b.ClickRect(f.Rect)
	step(&f, b)
	b.Type("ab")
	step(&f, b)

	b.Press(ui.KeyBackspace)
	step(&f, b)
	require.Equal(t, "a", f.Text())

	b.Press(ui.KeyBackspace)
	step(&f, b)
	require.Equal(t, "", f.Text())

	// backspace on an empty buffer is a no-op
	b.Press(ui.KeyBackspace)
	step(&f, b)
	require.Equal(t, "", f.Text())
}

// Tests that last-click-wins keeps at most one field focused
func TestField_LastClickWins(t *testing.T) {
	b := uitest.New(800, 600)
	first := ui.NewField(ui.Rect{X: 100, Y: 100, Width: 240, Height: 40}, false)
	second := ui.NewField(ui.Rect{X: 100, Y: 200, Width: 240, Height: 40}, false)

	b.ClickRect(first.Rect)
	first.Update(b)
	second.Update(b)
	b.ClearInput()
	require.True(t, first.Focused())
	require.False(t, second.Focused())

	b.ClickRect(second.Rect)
	first.Update(b)
	second.Update(b)
	b.ClearInput()
	require.False(t, first.Focused())
	require.True(t, second.Focused())
}

// Tests masked rendering and the blinking caret
func TestField_Draw(t *testing.T) {
	b := uitest.New(800, 600)
	f := newTestField(true)

	b.ClickRect(f.Rect)
	step(&f, b)
	b.Type("hunter2")
	step(&f, b)

	b.BeginFrame()
	f.Draw(b, "Password:")
	require.True(t, b.Drawn("Password:"))
	require.True(t, b.Drawn("*******"))
	require.False(t, b.Drawn("hunter2"))

	// caret is drawn on the visible half of the blink cycle...
	require.True(t, b.Drawn("_"))

	// ...and not on the hidden half
	b.Advance(0.5)
	b.BeginFrame()
	f.Draw(b, "Password:")
	require.False(t, b.Drawn("_"))

	// unfocused fields never draw a caret
	b.Advance(0.5)
	b.Press(ui.KeyEnter)
	step(&f, b)
	b.BeginFrame()
	f.Draw(b, "Password:")
	require.False(t, b.Drawn("_"))
}

// Tests Reset
func TestField_Reset(t *testing.T) {
	b := uitest.New(800, 600)
	f := newTestField(false)

	b.ClickRect(f.Rect)
	step(&f, b)
	b.Type("abc")
	step(&f, b)

	f.Reset()
	require.Equal(t, "", f.Text())
	require.False(t, f.Focused())
}
