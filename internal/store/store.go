// Package store persists user records as a plain-text file, one
// `<username> <hash>` pair per line.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"auction-house/internal/models"
	"auction-house/utils"
)

// UserStore defines the persistence interface for user records.
// The abstraction exists so the credential layer can be tested against
// a mock (see mock_store.go).
type UserStore interface {
	// Load reads every stored user in file order. A missing store is not
	// an error: it yields an empty set.
	Load() ([]models.User, error)

	// Save truncates the store and rewrites it from the given set.
	Save(users []models.User) error
}

// FileStore is the flat-file implementation of UserStore.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads user records from the store file. Parsing stops silently at
// the first line that is not exactly a username and an unsigned decimal
// hash; everything read up to that point is returned. Usernames must not
// contain whitespace, so two tokens per line is the whole format.
func (s *FileStore) Load() ([]models.User, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			utils.Info("User store not found, starting with no users", map[string]any{
				"path": s.path,
			})
			return nil, nil
		}
		return nil, fmt.Errorf("store: open %s: %w", s.path, err)
	}
	defer file.Close()

	var users []models.User
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			break
		}
		hash, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			break
		}
		users = append(users, models.User{
			Username:       fields[0],
			HashedPassword: uint32(hash),
		})
	}
	if err := scanner.Err(); err != nil {
		return users, fmt.Errorf("store: read %s: %w", s.path, err)
	}

	utils.Info("Loaded users from store", map[string]any{
		"path":  s.path,
		"count": len(users),
	})
	return users, nil
}

// Save rewrites the whole store from users. The overwrite is
// unconditional: no atomic replace, no backup.
func (s *FileStore) Save(users []models.User) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("store: create %s: %w", s.path, err)
	}

	w := bufio.NewWriter(file)
	for _, u := range users {
		if _, err := fmt.Fprintf(w, "%s %d\n", u.Username, u.HashedPassword); err != nil {
			file.Close()
			return fmt.Errorf("store: write %s: %w", s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("store: flush %s: %w", s.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", s.path, err)
	}

	utils.Info("Saved users to store", map[string]any{
		"path":  s.path,
		"count": len(users),
	})
	return nil
}
