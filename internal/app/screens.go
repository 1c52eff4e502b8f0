package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/ui"
	"auction-house/utils"
)

// authMenuScreen lets the user choose between signing in and signing up.
type authMenuScreen struct{}

func (s *authMenuScreen) update(a *App, b ui.Backend) {
	if ui.Clicked(b, AuthSignInButton(b)) {
		a.current = newSignInScreen(b)
		a.say("Enter your credentials.")
	}
	if ui.Clicked(b, AuthSignUpButton(b)) {
		a.current = newSignUpScreen(b)
		a.say("Choose a username and password.")
	}
}

// signInScreen authenticates an existing account.
type signInScreen struct {
	username ui.Field
	password ui.Field
}

func newSignInScreen(b ui.Backend) *signInScreen {
	return &signInScreen{
		username: ui.NewField(SignInUsernameField(b), false),
		password: ui.NewField(SignInPasswordField(b), true),
	}
}

func (s *signInScreen) update(a *App, b ui.Backend) {
	s.username.Update(b)
	s.password.Update(b)

	if ui.Clicked(b, SignInLoginButton(b)) {
		if a.creds.Authenticate(s.username.Text(), s.password.Text()) {
			a.user = s.username.Text()
			utils.Info("User signed in", map[string]any{"username": a.user})
			a.current = &itemListScreen{}
			a.say(fmt.Sprintf("Welcome, %s!", a.user))
		} else {
			a.say("Login failed. Check username/password.")
		}
	}
	if ui.Clicked(b, SignInBackButton(b)) {
		a.current = &authMenuScreen{}
		a.clearMessage()
	}
}

// signUpScreen registers a new account.
type signUpScreen struct {
	username ui.Field
	password ui.Field
	confirm  ui.Field
}

func newSignUpScreen(b ui.Backend) *signUpScreen {
	return &signUpScreen{
		username: ui.NewField(SignUpUsernameField(b), false),
		password: ui.NewField(SignUpPasswordField(b), true),
		confirm:  ui.NewField(SignUpConfirmField(b), true),
	}
}

func (s *signUpScreen) update(a *App, b ui.Backend) {
	s.username.Update(b)
	s.password.Update(b)
	s.confirm.Update(b)

	if ui.Clicked(b, SignUpRegisterButton(b)) {
		s.register(a, b)
	}
	if ui.Clicked(b, SignUpBackButton(b)) {
		a.current = &authMenuScreen{}
		a.clearMessage()
	}
}

// register runs the validation chain: first failing check wins, and only
// the last step reaches the credential manager.
func (s *signUpScreen) register(a *App, b ui.Backend) {
	switch {
	case len(s.username.Text()) < 3:
		a.say("Username too short (min 3 chars).")
	case len(s.password.Text()) < 5:
		a.say("Password too short (min 5 chars).")
	case s.password.Text() != s.confirm.Text():
		a.say("Passwords do not match!")
	case a.creds.UsernameExists(s.username.Text()):
		a.say("Username already taken.")
	default:
		err := a.creds.Register(s.username.Text(), s.password.Text())
		switch {
		case err == nil:
			a.current = newSignInScreen(b)
			a.say("Registration successful! Please sign in.")
		case errors.Is(err, auctionerrors.ErrUserLimit):
			a.say("Cannot register: maximum user limit reached.")
		default:
			utils.Error("Registration failed", map[string]any{
				"username": s.username.Text(),
				"error":    err.Error(),
			})
			a.say("Registration failed. Try again.")
		}
	}
}

// itemListScreen shows every catalog item.
type itemListScreen struct{}

func (s *itemListScreen) update(a *App, b ui.Backend) {
	if b.MousePressed() {
		for i := 0; i < a.catalog.Len(); i++ {
			if ItemRow(b, i).Contains(b.MousePos()) {
				a.current = &itemDetailsScreen{item: i}
				a.clearMessage()
				break
			}
		}
	}

	if ui.Clicked(b, LogoutButton(b)) {
		utils.Info("User signed out", map[string]any{"username": a.user})
		a.user = ""
		a.current = &authMenuScreen{}
		a.say("Logged out successfully.")
	}
}

// itemDetailsScreen shows one item. The bid action only exists while the
// item's auction is open; closed items offer no route to the bid screen.
type itemDetailsScreen struct {
	item int
}

func (s *itemDetailsScreen) update(a *App, b ui.Backend) {
	if ui.Clicked(b, DetailsBackButton(b)) {
		a.current = &itemListScreen{}
		a.clearMessage()
		return
	}

	item, err := a.catalog.Item(s.item)
	if err == nil && !item.Closed && ui.Clicked(b, DetailsBidButton(b)) {
		a.current = newPlaceBidScreen(b, s.item)
		a.say("Enter your bid and name.")
	}
}

// placeBidScreen collects a bid amount and bidder name for one open item.
type placeBidScreen struct {
	item   int
	amount ui.Field
	bidder ui.Field
}

func newPlaceBidScreen(b ui.Backend, item int) *placeBidScreen {
	return &placeBidScreen{
		item:   item,
		amount: ui.NewField(BidAmountField(b), false),
		bidder: ui.NewField(BidderNameField(b), false),
	}
}

func (s *placeBidScreen) update(a *App, b ui.Backend) {
	s.amount.Update(b)
	s.bidder.Update(b)

	if ui.Clicked(b, BidSubmitButton(b)) {
		s.submit(a)
	}
	if ui.Clicked(b, BidCancelButton(b)) {
		a.current = &itemDetailsScreen{item: s.item}
		a.clearMessage()
	}
}

func (s *placeBidScreen) submit(a *App) {
	// Unparseable input bids zero, which the too-low rule then rejects.
	amount, _ := strconv.ParseFloat(strings.TrimSpace(s.amount.Text()), 64)

	bid, err := a.catalog.PlaceBid(s.item, amount, s.bidder.Text())
	switch {
	case err == nil:
		a.current = &itemDetailsScreen{item: s.item}
		a.say(fmt.Sprintf("Bid of $%.2f placed successfully by %s!", bid.Amount, bid.Bidder))
	case errors.Is(err, auctionerrors.ErrNoBidder):
		a.say("Please enter your name to bid.")
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		item, itemErr := a.catalog.Item(s.item)
		if itemErr != nil {
			a.say("Bid failed.")
			return
		}
		a.say(fmt.Sprintf("Bid failed: $%.2f is not higher than current bid $%.2f", amount, item.CurrentBid))
	case errors.Is(err, auctionerrors.ErrBidTooLarge):
		a.say("Bid amount too large!")
	default:
		utils.Error("Bid rejected", map[string]any{
			"item":   s.item,
			"amount": amount,
			"error":  err.Error(),
		})
		a.say("Bid failed.")
	}
}
