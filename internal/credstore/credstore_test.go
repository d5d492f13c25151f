package credstore

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "credentials.json"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return s
}

func TestStore_SaveLoadClearRoundTrip(t *testing.T) {
	s := newTestStore(t)

	const base = "http://127.0.0.1:8000"
	if _, ok, err := s.Load(base); err != nil || ok {
		t.Fatalf("Load on empty store = ok=%v err=%v, want miss without error", ok, err)
	}

	cred := Credential{Email: "user@example.com", AccessToken: "tok", TokenType: "bearer"}
	if err := s.Save(base, cred); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, ok, err := s.Load(base)
	if err != nil || !ok {
		t.Fatalf("Load = ok=%v err=%v, want hit", ok, err)
	}
	if got.Email != cred.Email || got.AccessToken != cred.AccessToken {
		t.Fatalf("Load = %#v, want saved credential", got)
	}
	if got.SavedAt.IsZero() {
		t.Fatalf("SavedAt not stamped on save")
	}

	if err := s.Clear(base); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if _, ok, _ := s.Load(base); ok {
		t.Fatalf("Load after Clear = hit, want miss")
	}

	// Clearing again must be a no-op, not an error.
	if err := s.Clear(base); err != nil {
		t.Fatalf("Clear on missing entry returned error: %v", err)
	}
}

func TestStore_KeysByBaseURL(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save("http://dev:8000", Credential{Email: "dev@x", AccessToken: "d"}); err != nil {
		t.Fatalf("Save dev: %v", err)
	}
	if err := s.Save("https://api.example.com", Credential{Email: "prod@x", AccessToken: "p"}); err != nil {
		t.Fatalf("Save prod: %v", err)
	}

	dev, ok, _ := s.Load("http://dev:8000")
	if !ok || dev.AccessToken != "d" {
		t.Fatalf("dev credential = %#v ok=%v, want token d", dev, ok)
	}
	prod, ok, _ := s.Load("https://api.example.com")
	if !ok || prod.AccessToken != "p" {
		t.Fatalf("prod credential = %#v ok=%v, want token p", prod, ok)
	}
}

func TestStore_FileModeRestricted(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), "credentials.json")
	s, err := New(path)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := s.Save("http://x", Credential{AccessToken: "t"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat returned error: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("credentials file mode = %o, want 600", perm)
	}
}

func TestSession_TokenAndClear(t *testing.T) {
	s := newTestStore(t)
	const base = "http://127.0.0.1:8000"

	session := NewSession(s, base)
	if token := session.Token(); token != "" {
		t.Fatalf("Token on empty store = %q, want empty", token)
	}

	if err := s.Save(base, Credential{Email: "u@x", AccessToken: "abc"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if token := session.Token(); token != "abc" {
		t.Fatalf("Token = %q, want abc", token)
	}
	if email := session.Email(); email != "u@x" {
		t.Fatalf("Email = %q, want u@x", email)
	}

	session.Clear()
	if token := session.Token(); token != "" {
		t.Fatalf("Token after Clear = %q, want empty", token)
	}
}

func TestNew_ExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := New("")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := s.path; filepath.Dir(filepath.Dir(got)) != filepath.Join(home, ".config") {
		t.Fatalf("path = %q, want under %s/.config", got, home)
	}
}
