// Package app runs the six-screen auction flow. Each screen is a variant
// with its own update and draw and carries the state only it needs, so a
// selected-item index exists exactly while a detail or bid screen is up.
package app

import (
	"auction-house/internal/catalog"
	"auction-house/internal/credentials"
	"auction-house/internal/ui"
)

// messageDuration is how long a transient message stays on screen, in seconds.
const messageDuration = 3.0

// screen is one of the six mutually exclusive UI modes.
type screen interface {
	update(a *App, b ui.Backend)
	draw(a *App, b ui.Backend)
}

// App owns the session and the current screen, and drives one variant's
// update and draw per frame.
type App struct {
	catalog *catalog.Catalog
	creds   *credentials.Manager

	user    string // logged-in username, empty when signed out
	current screen

	message      string
	messageTimer float32
}

// New creates an App on the authentication menu.
func New(cat *catalog.Catalog, creds *credentials.Manager) *App {
	return &App{
		catalog: cat,
		creds:   creds,
		current: &authMenuScreen{},
	}
}

// Update runs one frame of input handling and state transitions. dt is the
// elapsed time since the previous frame.
func (a *App) Update(b ui.Backend, dt float32) {
	if a.messageTimer > 0 {
		a.messageTimer -= dt
		if a.messageTimer <= 0 {
			a.message = ""
		}
	}

	a.current.update(a, b)
}

// Draw renders the current screen and the transient message overlay.
func (a *App) Draw(b ui.Backend) {
	b.Clear(ui.White)

	a.current.draw(a, b)

	if a.message != "" {
		w, h := b.Size()
		b.FillRect(ui.Rect{X: 0, Y: float32(h) - 30, Width: float32(w), Height: 30}, ui.Yellow)
		ui.CenteredText(b, a.message, h-25, 20, ui.DarkGray)
	}
}

// CurrentUser returns the logged-in username, or "" when signed out.
func (a *App) CurrentUser() string {
	return a.user
}

// Message returns the transient message currently shown, or "".
func (a *App) Message() string {
	return a.message
}

func (a *App) say(message string) {
	a.message = message
	a.messageTimer = messageDuration
}

func (a *App) clearMessage() {
	a.message = ""
	a.messageTimer = 0
}
