// Package ui defines the rendering/input capability the application core
// draws through, plus the small widget set built on it. The concrete
// graphics library lives behind the Backend interface (see
// internal/raylibui); the core never imports it.
package ui

// Vec2 is a point in window coordinates.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// The application palette.
var (
	White     = Color{245, 245, 245, 255} // window background
	Black     = Color{0, 0, 0, 255}
	LightGray = Color{200, 200, 200, 255}
	DarkGray  = Color{50, 50, 50, 255}
	Green     = Color{0, 150, 0, 255}   // accept actions
	Red       = Color{150, 0, 0, 255}   // decline actions
	Blue      = Color{0, 120, 200, 255} // focused fields, sign-in
	Yellow    = Color{255, 200, 0, 255} // transient message bar
	DarkBlue  = Color{0, 82, 172, 255}
	BrightRed = Color{230, 41, 55, 255}
	Lime      = Color{0, 158, 47, 255}
)

// Key identifies the non-printable keys the core reacts to.
type Key int

const (
	KeyBackspace Key = iota
	KeyEnter
)

// Backend is the capability surface the core draws and polls through:
// primitive drawing, text measurement, pointer and keyboard edges, and
// frame timing. Window creation and teardown stay with the host.
type Backend interface {
	// ShouldClose reports whether the host window received a close signal.
	ShouldClose() bool
	// BeginFrame and EndFrame bracket one frame's drawing.
	BeginFrame()
	EndFrame()
	// Size returns the current drawable size in pixels.
	Size() (width, height int32)

	// FrameTime returns the seconds elapsed since the previous frame.
	FrameTime() float32
	// Time returns monotonic seconds since the window opened.
	Time() float64

	Clear(c Color)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, thickness float32, c Color)
	Text(s string, x, y, size int32, c Color)
	TextWidth(s string, size int32) int32

	MousePos() Vec2
	// MousePressed reports a left-button press edge for this frame.
	MousePressed() bool
	// KeyPressed reports a press edge for k this frame.
	KeyPressed(k Key) bool
	// CharsPressed returns the printable characters typed this frame, in order.
	CharsPressed() []rune
}
