// Package raylibui implements ui.Backend on raylib. It is the only
// package besides main that touches the graphics library.
package raylibui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"auction-house/internal/ui"
)

// Backend renders and polls through a raylib window.
type Backend struct{}

var _ ui.Backend = (*Backend)(nil)

// Open creates the application window at a 60 FPS target. Callers own the
// window lifecycle: defer Close.
func Open(width, height int32, title string) *Backend {
	rl.InitWindow(width, height, title)
	rl.SetTargetFPS(60)
	return &Backend{}
}

// Close tears the window down and releases the GPU context.
func (b *Backend) Close() {
	rl.CloseWindow()
}

func (b *Backend) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (b *Backend) BeginFrame() {
	rl.BeginDrawing()
}

func (b *Backend) EndFrame() {
	rl.EndDrawing()
}

func (b *Backend) Size() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

func (b *Backend) FrameTime() float32 {
	return rl.GetFrameTime()
}

func (b *Backend) Time() float64 {
	return rl.GetTime()
}

func (b *Backend) Clear(c ui.Color) {
	rl.ClearBackground(toColor(c))
}

func (b *Backend) FillRect(r ui.Rect, c ui.Color) {
	rl.DrawRectangleRec(toRect(r), toColor(c))
}

func (b *Backend) StrokeRect(r ui.Rect, thickness float32, c ui.Color) {
	rl.DrawRectangleLinesEx(toRect(r), thickness, toColor(c))
}

func (b *Backend) Text(s string, x, y, size int32, c ui.Color) {
	rl.DrawText(s, x, y, size, toColor(c))
}

func (b *Backend) TextWidth(s string, size int32) int32 {
	return rl.MeasureText(s, size)
}

func (b *Backend) MousePos() ui.Vec2 {
	p := rl.GetMousePosition()
	return ui.Vec2{X: p.X, Y: p.Y}
}

func (b *Backend) MousePressed() bool {
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}

func (b *Backend) KeyPressed(k ui.Key) bool {
	switch k {
	case ui.KeyBackspace:
		return rl.IsKeyPressed(rl.KeyBackspace)
	case ui.KeyEnter:
		return rl.IsKeyPressed(rl.KeyEnter)
	}
	return false
}

// CharsPressed drains raylib's queue of characters typed this frame.
func (b *Backend) CharsPressed() []rune {
	var chars []rune
	for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
		chars = append(chars, c)
	}
	return chars
}

func toRect(r ui.Rect) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.Width, r.Height)
}

func toColor(c ui.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
