package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dripdirective/drip/internal/api"
)

// handleRecommendationsKey processes keyboard input for the recommendations
// view, both the list and the open detail pane.
func (m Model) handleRecommendationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detailOpen {
		return m.handleRecommendationDetailKey(msg)
	}

	count := len(m.snapshot.Recommendations)

	switch msg.String() {
	case "j", "down":
		if m.recRow < count-1 {
			m.recRow++
		}
	case "k", "up":
		if m.recRow > 0 {
			m.recRow--
		}
	case "g", "home":
		m.recRow = 0
	case "G", "end":
		if count > 0 {
			m.recRow = count - 1
		}
	case "enter":
		if rec := m.selectedRecommendation(); rec != nil && rec.Completed() {
			m.detailOpen = true
			m.outfitCursor = 0
			m.updateDetailViewport()
		}
	case "n":
		m.prompting = true
		m.input.Focus()
		return m, nil
	}

	return m, nil
}

func (m Model) handleRecommendationDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rec := m.selectedRecommendation()
	if rec == nil {
		m.detailOpen = false
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.outfitCursor < len(rec.Outfits)-1 {
			m.outfitCursor++
			m.updateDetailViewport()
		}
	case "k", "up":
		if m.outfitCursor > 0 {
			m.outfitCursor--
			m.updateDetailViewport()
		}
	case "v":
		if m.outfitCursor < 0 || m.outfitCursor >= len(rec.Outfits) {
			return m, nil
		}
		m.flash = fmt.Sprintf("generating try-on for %q", rec.Outfits[m.outfitCursor].OutfitName)
		m.flashErr = false
		return m, tryOnCmd(m.ctx, m.client, *rec, m.outfitCursor)
	case "ctrl+d":
		m.detailViewport.HalfViewDown()
	case "ctrl+u":
		m.detailViewport.HalfViewUp()
	}

	return m, nil
}

func (m Model) selectedRecommendation() *api.Recommendation {
	if m.recRow < 0 || m.recRow >= len(m.snapshot.Recommendations) {
		return nil
	}
	return &m.snapshot.Recommendations[m.recRow]
}

// renderRecommendations renders the recommendation list.
func (m Model) renderRecommendations() string {
	styles := m.theme.Styles()
	recs := m.snapshot.Recommendations

	if len(recs) == 0 {
		return styles.MutedText.Render("No recommendations yet. Press <n> to request outfits.")
	}

	var b strings.Builder
	for i, rec := range recs {
		badge := styles.StatusStyle(rec.Status).Render(rec.Status)
		line := fmt.Sprintf("%s %s %s",
			styles.FaintText.Render(fmt.Sprintf("#%-4d", rec.ID)),
			badge,
			styles.Text.Render(truncateMiddle(rec.Query, 60)),
		)
		if rec.Completed() {
			line += "  " + styles.MutedText.Render(fmt.Sprintf("%d outfits", len(rec.Outfits)))
		}
		if i == m.recRow {
			line = styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("<enter> open outfits  <n> new recommendation"))

	return b.String()
}

// renderRecommendationDetail renders the outfit pane for the selected
// recommendation through the shared viewport.
func (m Model) renderRecommendationDetail() string {
	return m.detailViewport.View()
}

// updateDetailViewport refreshes the detail pane content from the snapshot.
func (m *Model) updateDetailViewport() {
	if !m.ready || !m.detailOpen {
		return
	}
	rec := m.selectedRecommendation()
	if rec == nil {
		return
	}
	m.detailViewport.SetContent(m.outfitContent(*rec))
}

func (m Model) outfitContent(rec api.Recommendation) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render(truncateMiddle(rec.Query, 70)))
	b.WriteString("\n\n")

	for i, outfit := range rec.Outfits {
		marker := "  "
		nameStyle := styles.Text.Bold(true)
		if i == m.outfitCursor {
			marker = styles.AccentText.Render("> ")
			nameStyle = styles.AccentText.Bold(true)
		}

		b.WriteString(marker + nameStyle.Render(outfit.OutfitName))
		if outfit.Occasion != "" {
			b.WriteString("  " + styles.MutedText.Render(outfit.Occasion))
		}
		b.WriteString("\n")

		if outfit.Description != "" {
			b.WriteString("  " + styles.Text.Render(outfit.Description) + "\n")
		}
		for _, item := range outfit.Items {
			line := fmt.Sprintf("  - %s", item.ItemName)
			if item.StylingTip != "" {
				line += "  " + styles.FaintText.Render(item.StylingTip)
			}
			b.WriteString(styles.MutedText.Render(line) + "\n")
		}
		if outfit.WhyItWorks != "" {
			b.WriteString("  " + styles.FaintText.Render("why: "+outfit.WhyItWorks) + "\n")
		}
		if outfit.TryOnImagePath != "" {
			b.WriteString("  " + styles.InfoText.Render("try-on: "+outfit.TryOnImagePath) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.MutedText.Render("<j/k> select outfit  <v> virtual try-on  <esc> back"))

	return b.String()
}

// Commands

func tryOnCmd(ctx context.Context, client *api.Client, rec api.Recommendation, outfitIndex int) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.GenerateTryOn(ctx, &rec, outfitIndex)
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{note: "try-on ready: " + resp.ImagePath}
	}
}
