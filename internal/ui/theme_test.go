package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Dracula" || names[1] != "Nightfox" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Dracula Nightfox Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Nightfox" {
		t.Fatalf("NextTheme(Dracula) = %q, want Nightfox", got)
	}
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want Dracula", got)
	}
	if got := NextTheme("Unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dracula", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Fatalf("GetTheme(%s).Name = %q, want %q", name, got.Name, name)
		}
	}
	if got := GetTheme("Unknown"); got.Name != "Dracula" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Dracula (fallback)", got.Name)
	}
}

func TestThemes_CoverProcessingStatuses(t *testing.T) {
	statuses := []string{"pending", "processing", "completed", "failed"}
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		for _, status := range statuses {
			if theme.StatusColors[status] == "" {
				t.Errorf("theme %s missing status color for %q", name, status)
			}
		}
	}
}
