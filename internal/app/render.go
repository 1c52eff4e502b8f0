package app

import (
	"fmt"

	"auction-house/internal/models"
	"auction-house/internal/ui"
)

func (s *authMenuScreen) draw(a *App, b ui.Backend) {
	ui.CenteredText(b, "Welcome to the Auction!", 100, 40, ui.DarkGray)
	ui.Button(b, AuthSignInButton(b), "Sign In", 30, ui.Blue, ui.White)
	ui.Button(b, AuthSignUpButton(b), "Sign Up", 30, ui.Green, ui.White)
}

func (s *signInScreen) draw(a *App, b ui.Backend) {
	ui.CenteredText(b, "Sign In", 100, 40, ui.DarkGray)
	s.username.Draw(b, "Username:")
	s.password.Draw(b, "Password:")
	ui.Button(b, SignInLoginButton(b), "Login", 25, ui.Green, ui.White)
	ui.Button(b, SignInBackButton(b), "Back", 25, ui.LightGray, ui.DarkGray)
}

func (s *signUpScreen) draw(a *App, b ui.Backend) {
	ui.CenteredText(b, "Sign Up", 100, 40, ui.DarkGray)
	s.username.Draw(b, "Username:")
	s.password.Draw(b, "Password:")
	s.confirm.Draw(b, "Confirm Password:")
	ui.Button(b, SignUpRegisterButton(b), "Register", 25, ui.Green, ui.White)
	ui.Button(b, SignUpBackButton(b), "Back", 25, ui.LightGray, ui.DarkGray)
}

func (s *itemListScreen) draw(a *App, b ui.Backend) {
	ui.CenteredText(b, "Auction Items", 30, 40, ui.DarkGray)
	b.Text(fmt.Sprintf("Logged in as: %s", a.user), 20, 20, 20, ui.DarkGray)

	for i, item := range a.catalog.Items() {
		drawItemRow(b, i, item)
	}

	ui.Button(b, LogoutButton(b), "Logout", 20, ui.Red, ui.White)
}

// drawItemRow renders one list entry: name on the left, current bid on the
// right, open/closed status underneath. Rows alternate background colors
// and darken under the pointer.
func drawItemRow(b ui.Backend, index int, item models.AuctionItem) {
	r := ItemRow(b, index)
	hovered := ui.Hovered(b, r)

	bg := ui.White
	if index%2 == 0 {
		bg = ui.LightGray
	}
	text := ui.Black
	if hovered {
		bg = ui.DarkGray
		text = ui.White
	}

	b.FillRect(r, bg)
	b.StrokeRect(r, 2, ui.DarkGray)

	x, y := int32(r.X), int32(r.Y)
	b.Text(item.Name, x+10, y+10, 20, text)

	bidText := fmt.Sprintf("Current Bid: $%.2f", item.CurrentBid)
	b.Text(bidText, x+int32(r.Width)-b.TextWidth(bidText, 20)-10, y+10, 20, text)

	status, statusColor := "OPEN", ui.Green
	if item.Closed {
		status, statusColor = "CLOSED", ui.Red
	}
	b.Text(status, x+10, y+35, 15, statusColor)
}

func (s *itemDetailsScreen) draw(a *App, b ui.Backend) {
	item, err := a.catalog.Item(s.item)
	if err != nil {
		// Invariant violation: detail screen without a resolvable item.
		b.Text("No item selected. This shouldn't happen!", 50, 100, 20, ui.BrightRed)
		return
	}

	ui.CenteredText(b, item.Name, 30, 40, ui.DarkBlue)
	b.Text(fmt.Sprintf("Description: %s", item.Description), 50, 100, 20, ui.Black)
	b.Text(fmt.Sprintf("Current Bid: $%.2f", item.CurrentBid), 50, 140, 25, ui.Lime)
	b.Text(fmt.Sprintf("Highest Bidder: %s", item.HighestBidder), 50, 170, 25, ui.Blue)

	status, statusColor := "OPEN", ui.Lime
	if item.Closed {
		status, statusColor = "CLOSED", ui.BrightRed
	}
	b.Text(fmt.Sprintf("Status: %s", status), 50, 210, 25, statusColor)

	ui.Button(b, DetailsBackButton(b), "Back", 20, ui.LightGray, ui.DarkGray)
	if !item.Closed {
		ui.Button(b, DetailsBidButton(b), "Place Bid", 20, ui.Green, ui.White)
	}
}

func (s *placeBidScreen) draw(a *App, b ui.Backend) {
	ui.CenteredText(b, "Place Your Bid", 30, 40, ui.DarkGray)

	item, err := a.catalog.Item(s.item)
	if err != nil {
		b.Text("No item selected. This shouldn't happen!", 50, 100, 20, ui.BrightRed)
		return
	}

	ui.CenteredText(b, fmt.Sprintf("Item: %s", item.Name), 100, 25, ui.Black)
	ui.CenteredText(b, fmt.Sprintf("Current Bid: $%.2f", item.CurrentBid), 140, 25, ui.Lime)

	s.amount.Draw(b, "Bid Amount:")
	s.bidder.Draw(b, "Your Name:")

	ui.Button(b, BidSubmitButton(b), "BID!", 20, ui.Green, ui.White)
	ui.Button(b, BidCancelButton(b), "Cancel", 20, ui.Red, ui.White)
}
