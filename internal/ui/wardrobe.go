package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dripdirective/drip/internal/api"
)

// handleWardrobeKey processes keyboard input for the wardrobe view.
func (m Model) handleWardrobeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.snapshot.Wardrobe
	count := len(items)

	switch msg.String() {
	case "j", "down":
		if m.wardrobeRow < count-1 {
			m.wardrobeRow++
		}
	case "k", "up":
		if m.wardrobeRow > 0 {
			m.wardrobeRow--
		}
	case "g", "home":
		m.wardrobeRow = 0
	case "G", "end":
		if count > 0 {
			m.wardrobeRow = count - 1
		}
	case "a":
		if item := m.selectedWardrobeItem(); item != nil {
			m.flash = fmt.Sprintf("analyzing item #%d", item.ID)
			m.flashErr = false
			return m, processWardrobeCmd(m.ctx, m.client, item.ID)
		}
	case "A":
		m.flash = "analyzing all unprocessed items"
		m.flashErr = false
		return m, processAllWardrobeCmd(m.ctx, m.client)
	case "x":
		if item := m.selectedWardrobeItem(); item != nil {
			m.flash = fmt.Sprintf("removing item #%d", item.ID)
			m.flashErr = false
			return m, deleteWardrobeCmd(m.ctx, m.client, item.ID)
		}
	}

	return m, nil
}

func (m Model) selectedWardrobeItem() *api.WardrobeItemWithImages {
	if m.wardrobeRow < 0 || m.wardrobeRow >= len(m.snapshot.Wardrobe) {
		return nil
	}
	return &m.snapshot.Wardrobe[m.wardrobeRow]
}

// renderWardrobe renders the wardrobe item list.
func (m Model) renderWardrobe() string {
	styles := m.theme.Styles()
	items := m.snapshot.Wardrobe

	if len(items) == 0 {
		return styles.MutedText.Render("No wardrobe items yet. Add some with `drip wardrobe add <photo>...`")
	}

	var b strings.Builder
	for i, item := range items {
		line := m.wardrobeLine(item, styles)
		if i == m.wardrobeRow {
			line = styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Selected item detail
	if item := m.selectedWardrobeItem(); item != nil {
		b.WriteString("\n")
		b.WriteString(m.wardrobeDetail(*item, styles))
	}

	return b.String()
}

func (m Model) wardrobeLine(item api.WardrobeItemWithImages, styles Styles) string {
	badge := styles.StatusStyle(item.ProcessingStatus.String()).Render(item.ProcessingStatus.String())

	label := fmt.Sprintf("#%-4d", item.ID)
	summary := "awaiting analysis"
	if meta, err := item.Metadata(); err == nil && meta.GarmentType != "" {
		summary = meta.GarmentType
		if meta.Color != "" {
			summary = meta.Color + " " + summary
		}
	}

	return fmt.Sprintf("%s %s %s", styles.FaintText.Render(label), badge, styles.Text.Render(summary))
}

func (m Model) wardrobeDetail(item api.WardrobeItemWithImages, styles Styles) string {
	var b strings.Builder

	meta, err := item.Metadata()
	if err != nil || meta.GarmentType == "" {
		b.WriteString(styles.MutedText.Render("Not analyzed yet. Press <a> to analyze this item."))
		return b.String()
	}

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(styles.Text.Render(value))
		b.WriteString("\n")
	}

	row("Type", meta.GarmentType)
	row("Color", meta.Color)
	row("Material", meta.Material)
	row("Style", meta.Style)
	row("Occasions", strings.Join(meta.Occasions, ", "))
	row("Seasons", strings.Join(meta.Seasons, ", "))
	if meta.FormalityScore > 0 || meta.VersatilityScore > 0 {
		row("Scores", fmt.Sprintf("formality %.1f, versatility %.1f",
			meta.FormalityScore, meta.VersatilityScore))
	}

	return strings.TrimRight(b.String(), "\n")
}

// Commands

func processWardrobeCmd(ctx context.Context, client *api.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		if _, err := client.ProcessWardrobeItem(ctx, id); err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{note: fmt.Sprintf("item #%d queued for analysis", id)}
	}
}

func processAllWardrobeCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.ProcessAllWardrobe(ctx)
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{note: resp.Message}
	}
}

func deleteWardrobeCmd(ctx context.Context, client *api.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteWardrobeItem(ctx, id); err != nil && !api.IsNotFound(err) {
			return actionMsg{err: err}
		}
		return actionMsg{note: fmt.Sprintf("item #%d removed", id)}
	}
}
