// Package credstore persists session tokens on disk.
//
// Tokens live in ~/.config/drip/credentials.json, keyed by API base URL so a
// user can hold sessions against several deployments (local dev, staging)
// at once. Writes go through a temp file and rename so a crash mid-write
// never corrupts the store, and the file stays at mode 0600.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultCredsPath = "~/.config/drip/credentials.json"

// Credential is one stored session.
type Credential struct {
	Email       string    `json:"email"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	SavedAt     time.Time `json:"saved_at"`
}

// Store persists credentials keyed by API base URL.
type Store struct {
	path string
	mu   sync.Mutex
}

// New returns a Store backed by path; empty path uses the default location.
func New(path string) (*Store, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: resolved}, nil
}

// DefaultPath returns the default credentials file path.
func DefaultPath() string {
	return defaultCredsPath
}

// Save stores or replaces the credential for baseURL.
func (s *Store) Save(baseURL string, cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := make(map[string]Credential)
	if err := readJSON(s.path, &creds); err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}
	if cred.SavedAt.IsZero() {
		cred.SavedAt = time.Now()
	}
	creds[baseURL] = cred

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	return writeJSON(s.path, creds, 0o600)
}

// Load retrieves the credential for baseURL.
func (s *Store) Load(baseURL string) (Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := make(map[string]Credential)
	if err := readJSON(s.path, &creds); err != nil {
		return Credential{}, false, fmt.Errorf("read credentials: %w", err)
	}
	cred, ok := creds[baseURL]
	return cred, ok, nil
}

// Clear removes the credential for baseURL. Clearing a missing entry is not
// an error.
func (s *Store) Clear(baseURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := make(map[string]Credential)
	if err := readJSON(s.path, &creds); err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}
	if _, ok := creds[baseURL]; !ok {
		return nil
	}
	delete(creds, baseURL)
	return writeJSON(s.path, creds, 0o600)
}

// Session binds a Store to one API base URL and satisfies api.TokenSource.
type Session struct {
	store   *Store
	baseURL string
}

// NewSession returns a Session for baseURL.
func NewSession(store *Store, baseURL string) *Session {
	return &Session{store: store, baseURL: baseURL}
}

// Token returns the stored access token, or "" when no session exists or the
// store is unreadable. Request-time auth failures surface as 401s; a broken
// local file should not take the whole app down.
func (s *Session) Token() string {
	cred, ok, err := s.store.Load(s.baseURL)
	if err != nil || !ok {
		return ""
	}
	return cred.AccessToken
}

// Email returns the stored account email, or "".
func (s *Session) Email() string {
	cred, ok, err := s.store.Load(s.baseURL)
	if err != nil || !ok {
		return ""
	}
	return cred.Email
}

// Save stores a fresh credential for this session's endpoint.
func (s *Session) Save(cred Credential) error {
	return s.store.Save(s.baseURL, cred)
}

// Clear drops the stored session. Used as the client's 401 hook.
func (s *Session) Clear() {
	_ = s.store.Clear(s.baseURL)
}

// readJSON best-effort reads path into out; a missing file is not an error.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// writeJSON writes JSON via a temp file then rename.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultCredsPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
