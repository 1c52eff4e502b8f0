package ui

import "strings"

// DefaultFieldLimit is the character capacity every input field in the
// application uses.
const DefaultFieldLimit = 20

const fieldTextSize = 20

// Field is a focusable single-line text entry. Masked fields render one
// '*' per typed character. The border color is derived from focus, never
// stored.
type Field struct {
	Rect   Rect
	Masked bool
	Limit  int

	text    []rune
	focused bool
}

// NewField creates an unfocused, empty field covering r.
func NewField(r Rect, masked bool) Field {
	return Field{Rect: r, Masked: masked, Limit: DefaultFieldLimit}
}

// Update handles one frame of pointer and keyboard input. A press inside
// the rectangle focuses the field, a press anywhere else unfocuses it
// (last click wins across the fields the caller updates). While focused,
// printable ASCII 32..125 is appended up to Limit with excess silently
// dropped, backspace removes the last character and Enter unfocuses.
func (f *Field) Update(b Backend) {
	if b.MousePressed() {
		f.focused = f.Rect.Contains(b.MousePos())
	}

	if !f.focused {
		return
	}

	for _, c := range b.CharsPressed() {
		if c >= 32 && c <= 125 && len(f.text) < f.Limit {
			f.text = append(f.text, c)
		}
	}
	if b.KeyPressed(KeyBackspace) && len(f.text) > 0 {
		f.text = f.text[:len(f.text)-1]
	}
	if b.KeyPressed(KeyEnter) {
		f.focused = false
	}
}

// Draw renders the field with its label above, masking if configured, and
// a caret blinking at ~1 Hz while focused.
func (f *Field) Draw(b Backend, label string) {
	b.Text(label, int32(f.Rect.X), int32(f.Rect.Y)-25, fieldTextSize, DarkGray)
	b.FillRect(f.Rect, White)
	b.StrokeRect(f.Rect, 2, f.borderColor())

	shown := f.displayText()
	b.Text(shown, int32(f.Rect.X)+5, int32(f.Rect.Y)+10, fieldTextSize, Black)

	if f.focused && int(b.Time()*2)%2 == 0 {
		caretX := int32(f.Rect.X) + 5 + b.TextWidth(shown, fieldTextSize)
		b.Text("_", caretX, int32(f.Rect.Y)+10, fieldTextSize, Black)
	}
}

func (f *Field) displayText() string {
	if f.Masked {
		return strings.Repeat("*", len(f.text))
	}
	return string(f.text)
}

func (f *Field) borderColor() Color {
	if f.focused {
		return Blue
	}
	return DarkGray
}

// Text returns the current buffer contents.
func (f *Field) Text() string {
	return string(f.text)
}

// Focused reports whether the field currently has keyboard focus.
func (f *Field) Focused() bool {
	return f.focused
}

// Reset clears the buffer and drops focus.
func (f *Field) Reset() {
	f.text = f.text[:0]
	f.focused = false
}
