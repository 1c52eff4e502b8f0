package app

import "auction-house/internal/ui"

// Screen layout. Shared by the update and draw paths (and by tests), so
// hit regions and drawn widgets can never drift apart.

func AuthSignInButton(b ui.Backend) ui.Rect {
	w, h := b.Size()
	return ui.Rect{X: float32(w)/2 - 100, Y: float32(h)/2 - 50, Width: 200, Height: 50}
}

func AuthSignUpButton(b ui.Backend) ui.Rect {
	w, h := b.Size()
	return ui.Rect{X: float32(w)/2 - 100, Y: float32(h)/2 + 20, Width: 200, Height: 50}
}

func SignInUsernameField(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 - 120, Y: 250, Width: 240, Height: 40}
}

func SignInPasswordField(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 - 120, Y: 320, Width: 240, Height: 40}
}

func SignInLoginButton(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 - 80, Y: 400, Width: 160, Height: 50}
}

func SignInBackButton(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 - 80, Y: 470, Width: 160, Height: 50}
}

func SignUpUsernameField(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 - 120, Y: 200, Width: 240, Height: 40}
}

func SignUpPasswordField(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 - 120, Y: 270, Width: 240, Height: 40}
}

func SignUpConfirmField(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 - 120, Y: 340, Width: 240, Height: 40}
}

func SignUpRegisterButton(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 - 80, Y: 410, Width: 160, Height: 50}
}

func SignUpBackButton(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 - 80, Y: 480, Width: 160, Height: 50}
}

// ItemRow is the clickable list row for the item at index.
func ItemRow(b ui.Backend, index int) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: 50, Y: float32(100 + index*60), Width: float32(w) - 100, Height: 50}
}

func LogoutButton(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w) - 150, Y: 20, Width: 120, Height: 40}
}

func DetailsBackButton(b ui.Backend) ui.Rect {
	_, h := b.Size()
	return ui.Rect{X: 50, Y: float32(h) - 60, Width: 120, Height: 40}
}

func DetailsBidButton(b ui.Backend) ui.Rect {
	w, h := b.Size()
	return ui.Rect{X: float32(w) - 170, Y: float32(h) - 60, Width: 120, Height: 40}
}

func BidAmountField(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 - 100, Y: 300, Width: 200, Height: 40}
}

func BidderNameField(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 - 100, Y: 380, Width: 200, Height: 40}
}

func BidSubmitButton(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 - 120, Y: 480, Width: 100, Height: 40}
}

func BidCancelButton(b ui.Backend) ui.Rect {
	w, _ := b.Size()
	return ui.Rect{X: float32(w)/2 + 20, Y: 480, Width: 100, Height: 40}
}
