// Package uitest provides a scriptable in-memory ui.Backend for driving
// the application in tests: input is queued per frame, drawn text is
// recorded for assertions, and the clock only moves when told to.
package uitest

import (
	"strings"

	"auction-house/internal/ui"
)

// Backend is a deterministic ui.Backend. Queue input with Click, Type and
// Press, run an update, then call ClearInput before the next frame.
type Backend struct {
	W, H int32

	now     float64
	dt      float32
	mouse   ui.Vec2
	pressed bool
	keys    map[ui.Key]bool
	chars   []rune
	closed  bool

	// Texts accumulates every string drawn since the last BeginFrame.
	Texts []string
}

// New creates a backend with the given window size and a 60 FPS frame time.
func New(w, h int32) *Backend {
	return &Backend{
		W:    w,
		H:    h,
		dt:   1.0 / 60.0,
		keys: make(map[ui.Key]bool),
	}
}

// Click queues a left-button press at (x, y) for the next update.
func (b *Backend) Click(x, y float32) {
	b.mouse = ui.Vec2{X: x, Y: y}
	b.pressed = true
}

// ClickRect queues a left-button press at the center of r.
func (b *Backend) ClickRect(r ui.Rect) {
	b.Click(r.X+r.Width/2, r.Y+r.Height/2)
}

// MoveTo positions the pointer without pressing.
func (b *Backend) MoveTo(x, y float32) {
	b.mouse = ui.Vec2{X: x, Y: y}
}

// Type queues the characters of s for the next update.
func (b *Backend) Type(s string) {
	b.chars = append(b.chars, []rune(s)...)
}

// Press queues a key-press edge for the next update.
func (b *Backend) Press(k ui.Key) {
	b.keys[k] = true
}

// Advance moves the clock forward and sets the frame time reported for
// the next update.
func (b *Backend) Advance(dt float32) {
	b.now += float64(dt)
	b.dt = dt
}

// ClearInput drops all queued input edges, ending the frame.
func (b *Backend) ClearInput() {
	b.pressed = false
	b.chars = nil
	for k := range b.keys {
		delete(b.keys, k)
	}
}

// Close makes ShouldClose report true.
func (b *Backend) Close() {
	b.closed = true
}

// Drawn reports whether any text drawn since the last BeginFrame
// contains s.
func (b *Backend) Drawn(s string) bool {
	for _, t := range b.Texts {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}

// ui.Backend implementation

func (b *Backend) ShouldClose() bool { return b.closed }

func (b *Backend) BeginFrame() { b.Texts = nil }

func (b *Backend) EndFrame() {}

func (b *Backend) Size() (int32, int32) { return b.W, b.H }

func (b *Backend) FrameTime() float32 { return b.dt }

func (b *Backend) Time() float64 { return b.now }

func (b *Backend) Clear(ui.Color) {}

func (b *Backend) FillRect(ui.Rect, ui.Color) {}

func (b *Backend) StrokeRect(ui.Rect, float32, ui.Color) {}

func (b *Backend) Text(s string, x, y, size int32, c ui.Color) {
	b.Texts = append(b.Texts, s)
}

// TextWidth approximates glyphs as half the font size, which is stable
// enough for caret and centering math in tests.
func (b *Backend) TextWidth(s string, size int32) int32 {
	return int32(len([]rune(s))) * size / 2
}

func (b *Backend) MousePos() ui.Vec2 { return b.mouse }

func (b *Backend) MousePressed() bool { return b.pressed }

func (b *Backend) KeyPressed(k ui.Key) bool { return b.keys[k] }

func (b *Backend) CharsPressed() []rune { return b.chars }
