package main

import (
	"os"

	"auction-house/internal/app"
	"auction-house/internal/catalog"
	"auction-house/internal/credentials"
	"auction-house/internal/raylibui"
	"auction-house/internal/store"
	"auction-house/utils"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

func main() {
	creds, err := credentials.NewManager(store.NewFileStore(usersFilePath()))
	if err != nil {
		utils.Warn("Could not load user store, starting with no users", map[string]any{
			"error": err.Error(),
		})
	}

	cat := catalog.New()
	seedItems(cat)

	win := raylibui.Open(screenWidth, screenHeight, "Public Auction")
	defer win.Close()

	a := app.New(cat, creds)
	for !win.ShouldClose() {
		a.Update(win, win.FrameTime())

		win.BeginFrame()
		a.Draw(win)
		win.EndFrame()
	}
}

// seedItems populates the catalog's starting inventory.
func seedItems(cat *catalog.Catalog) {
	for _, item := range catalog.Seed() {
		if err := cat.AddItem(item); err != nil {
			utils.Fatal("Failed to seed catalog", map[string]any{"error": err.Error()})
		}
	}
}

// usersFilePath returns the user store location from env or the default "users.txt".
func usersFilePath() string {
	if p := os.Getenv("AUCTION_USERS_FILE"); p != "" {
		return p
	}
	return "users.txt"
}
