package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dripdirective/drip/internal/api"
)

// renderHeader renders the status bar with account and processing info.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	if m.snapshot.LastUpdated.IsZero() {
		return styles.Header.Width(m.width).Render(
			styles.Logo.Render("drip") + sep +
				styles.WarningText.Bold(true).Render("Connecting to "+m.serverLabel()+"..."),
		)
	}

	if m.snapshot.IsOffline() {
		last := "soon"
		if !m.lastUpdated.IsZero() {
			last = m.lastUpdated.Format("15:04:05")
		}
		parts := []string{
			styles.Logo.Render("drip"),
			styles.DangerText.Bold(true).Render("API " + classifyConnectionError(m.snapshot.LastError)),
			styles.WarningText.Bold(true).Render("Retrying..."),
			styles.MutedText.Render(last),
		}
		return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
	}

	var parts []string

	// Logo + account
	parts = append(parts, styles.Logo.Render("drip"))
	if m.account != "" {
		parts = append(parts, styles.MutedText.Render(truncateMiddle(m.account, 30)))
	}

	// Resource counts
	parts = append(parts,
		styles.MutedText.Render("Wardrobe:")+" "+
			styles.Text.Render(fmt.Sprintf("%d", len(m.snapshot.Wardrobe))),
		styles.MutedText.Render("Photos:")+" "+
			styles.Text.Render(fmt.Sprintf("%d", len(m.snapshot.Images))),
		styles.MutedText.Render("Outfits:")+" "+
			styles.Text.Render(fmt.Sprintf("%d", completedRecommendations(m.snapshot.Recommendations))),
	)

	// Processing activity
	if images, wardrobe := m.snapshot.Processing(); images+wardrobe > 0 {
		parts = append(parts,
			styles.InfoText.Render(fmt.Sprintf("● analyzing %d", images+wardrobe)))
	}

	// Stale data warning after a single failed poll (full offline banner needs two)
	if m.snapshot.LastError != nil {
		parts = append(parts, styles.WarningText.Render("stale"))
	}

	// Relative freshness of the snapshot
	if !m.lastUpdated.IsZero() {
		parts = append(parts, styles.MutedText.Render(humanizeDuration(time.Since(m.lastUpdated))))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar renders the second header row with key hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	hints := []struct{ key, label string }{
		{"w", "wardrobe"},
		{"i", "photos"},
		{"r", "recs"},
		{"u", "profile"},
		{"h", "help"},
		{"e", "exit"},
	}

	var parts []string
	for _, hint := range hints {
		label := hint.label
		if m.currentView == viewForKey(hint.key) {
			parts = append(parts, styles.AccentText.Bold(true).Render("<"+hint.key+"> "+label))
			continue
		}
		parts = append(parts,
			styles.WarningText.Render("<"+hint.key+">")+" "+styles.MutedText.Render(label))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func viewForKey(key string) View {
	switch key {
	case "i":
		return ViewPhotos
	case "r":
		return ViewRecommendations
	case "u":
		return ViewProfile
	case "w":
		return ViewWardrobe
	}
	return View(-1)
}

func (m Model) serverLabel() string {
	if m.client != nil {
		return m.client.BaseURL()
	}
	return "API"
}

func completedRecommendations(recs []api.Recommendation) int {
	count := 0
	for _, rec := range recs {
		if rec.Completed() {
			count++
		}
	}
	return count
}
