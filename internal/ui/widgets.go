package ui

// Clicked reports whether the left button was pressed inside r this frame.
func Clicked(b Backend, r Rect) bool {
	return b.MousePressed() && r.Contains(b.MousePos())
}

// Hovered reports whether the pointer is over r.
func Hovered(b Backend, r Rect) bool {
	return r.Contains(b.MousePos())
}

// Button draws a filled, outlined rectangle with a centered label.
// Click handling stays with the caller (see Clicked).
func Button(b Backend, r Rect, label string, size int32, bg, fg Color) {
	b.FillRect(r, bg)
	b.StrokeRect(r, 2, DarkGray)
	x := int32(r.X+r.Width/2) - b.TextWidth(label, size)/2
	y := int32(r.Y + (r.Height-float32(size))/2)
	b.Text(label, x, y, size, fg)
}

// CenteredText draws s horizontally centered in the window at height y.
func CenteredText(b Backend, s string, y, size int32, c Color) {
	w, _ := b.Size()
	b.Text(s, w/2-b.TextWidth(s, size)/2, y, size, c)
}
