// Package credentials manages the registered-user table and password
// checks. Passwords are stored as djb2 checksums, which gives no real
// confidentiality; the algorithm is kept exactly as-is for compatibility
// with existing store files.
package credentials

import (
	"fmt"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/store"
	"auction-house/utils"
)

// MaxUsers caps how many accounts can be registered.
const MaxUsers = 10

// Hash computes the djb2 checksum of password: seed 5381, then
// hash = hash*33 + c for each byte, wrapping at 32 bits. Hash("") is 5381.
// NOT a cryptographic primitive; it only avoids storing plaintext.
func Hash(password string) uint32 {
	var hash uint32 = 5381
	for i := 0; i < len(password); i++ {
		hash = hash*33 + uint32(password[i])
	}
	return hash
}

// Manager owns the in-memory user table, backed by a UserStore.
type Manager struct {
	store store.UserStore
	users []models.User
}

// NewManager loads the user table from st. A load failure leaves the
// manager usable with an empty table; the error is returned so the caller
// can log it.
func NewManager(st store.UserStore) (*Manager, error) {
	m := &Manager{store: st}

	users, err := st.Load()
	if err != nil {
		return m, fmt.Errorf("credentials: load users: %w", err)
	}
	if len(users) > MaxUsers {
		users = users[:MaxUsers]
	}
	m.users = users
	return m, nil
}

// UsernameExists reports whether name is already registered.
// Matching is exact and case-sensitive.
func (m *Manager) UsernameExists(name string) bool {
	for _, u := range m.users {
		if u.Username == name {
			return true
		}
	}
	return false
}

// Register adds a new user and persists the table immediately. Length
// validation of name and password is the caller's job; Register only
// checks capacity and uniqueness. If the save fails the new user is
// rolled back so memory and disk never diverge.
func (m *Manager) Register(name, password string) error {
	if len(m.users) >= MaxUsers {
		return fmt.Errorf("credentials: register %s: %w", name, auctionerrors.ErrUserLimit)
	}
	if m.UsernameExists(name) {
		return fmt.Errorf("credentials: register %s: %w", name, auctionerrors.ErrUsernameTaken)
	}

	m.users = append(m.users, models.User{
		Username:       name,
		HashedPassword: Hash(password),
	})

	if err := m.store.Save(m.users); err != nil {
		m.users = m.users[:len(m.users)-1]
		return fmt.Errorf("credentials: persist %s: %w", name, err)
	}

	utils.Info("User registered", map[string]any{
		"username": name,
		"users":    len(m.users),
	})
	return nil
}

// Authenticate reports whether name and password match a registered user.
// Two passwords with the same djb2 checksum authenticate interchangeably;
// that collision weakness comes with the hash and is kept deliberately.
func (m *Manager) Authenticate(name, password string) bool {
	hash := Hash(password)
	for _, u := range m.users {
		if u.Username == name && u.HashedPassword == hash {
			return true
		}
	}
	return false
}

// Count returns how many users are registered.
func (m *Manager) Count() int {
	return len(m.users)
}
