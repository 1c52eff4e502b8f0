package integrationtests

import (
	"testing"

	"auction-house/internal/app"
	"auction-house/internal/catalog"
	"auction-house/internal/credentials"
	"auction-house/internal/store"
	"auction-house/internal/ui"
	"auction-house/internal/ui/uitest"

	"github.com/stretchr/testify/require"
)

// SetupApp builds the real application wiring (seeded catalog, file-backed
// credentials) over the user store at storePath, driven by a scripted
// backend instead of a window.
func SetupApp(t *testing.T, storePath string) (*app.App, *uitest.Backend) {
	t.Helper()

	cat := catalog.New()
	for _, item := range catalog.Seed() {
		require.NoError(t, cat.AddItem(item))
	}

	creds, err := credentials.NewManager(store.NewFileStore(storePath))
	require.NoError(t, err)

	return app.New(cat, creds), uitest.New(800, 600)
}

// Step runs one update frame and drops the queued input.
func Step(a *app.App, b *uitest.Backend) {
	a.Update(b, b.FrameTime())
	b.ClearInput()
}

// Click presses the left button at the center of r for one frame.
func Click(a *app.App, b *uitest.Backend, r ui.Rect) {
	b.ClickRect(r)
	Step(a, b)
}

// TypeInto focuses the field at r and types text into it.
func TypeInto(a *app.App, b *uitest.Backend, r ui.Rect, text string) {
	b.ClickRect(r)
	Step(a, b)
	b.Type(text)
	Step(a, b)
}

// Render draws one frame so the backend's drawn-text record can be asserted on.
func Render(a *app.App, b *uitest.Backend) {
	b.BeginFrame()
	a.Draw(b)
	b.EndFrame()
}

// Register drives the sign-up screen from the auth menu and leaves the app
// on the sign-in screen.
func Register(t *testing.T, a *app.App, b *uitest.Backend, username, password string) {
	t.Helper()
	Click(a, b, app.AuthSignUpButton(b))
	TypeInto(a, b, app.SignUpUsernameField(b), username)
	TypeInto(a, b, app.SignUpPasswordField(b), password)
	TypeInto(a, b, app.SignUpConfirmField(b), password)
	Click(a, b, app.SignUpRegisterButton(b))
	require.Equal(t, "Registration successful! Please sign in.", a.Message())
}

// SignIn drives the sign-in screen and verifies the session started.
// Call it with the app on the sign-in screen or the auth menu.
func SignIn(t *testing.T, a *app.App, b *uitest.Backend, username, password string, fromMenu bool) {
	t.Helper()
	if fromMenu {
		Click(a, b, app.AuthSignInButton(b))
	}
	TypeInto(a, b, app.SignInUsernameField(b), username)
	TypeInto(a, b, app.SignInPasswordField(b), password)
	Click(a, b, app.SignInLoginButton(b))
	require.Equal(t, username, a.CurrentUser())
}
