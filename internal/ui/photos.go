package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dripdirective/drip/internal/api"
)

// handlePhotosKey processes keyboard input for the photos view.
func (m Model) handlePhotosKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snapshot.Images)

	switch msg.String() {
	case "j", "down":
		if m.photoRow < count-1 {
			m.photoRow++
		}
	case "k", "up":
		if m.photoRow > 0 {
			m.photoRow--
		}
	case "g", "home":
		m.photoRow = 0
	case "G", "end":
		if count > 0 {
			m.photoRow = count - 1
		}
	case "a":
		m.flash = "analyzing body photos"
		m.flashErr = false
		return m, processImagesCmd(m.ctx, m.client)
	case "x":
		if img := m.selectedPhoto(); img != nil {
			m.flash = fmt.Sprintf("removing photo #%d", img.ID)
			m.flashErr = false
			return m, deleteImageCmd(m.ctx, m.client, img.ID)
		}
	}

	return m, nil
}

func (m Model) selectedPhoto() *api.UserImage {
	if m.photoRow < 0 || m.photoRow >= len(m.snapshot.Images) {
		return nil
	}
	return &m.snapshot.Images[m.photoRow]
}

// renderPhotos renders the body photo list.
func (m Model) renderPhotos() string {
	styles := m.theme.Styles()
	images := m.snapshot.Images

	if len(images) == 0 {
		return styles.MutedText.Render("No body photos yet. Add some with `drip upload <photo>...`")
	}

	var b strings.Builder
	for i, img := range images {
		badge := styles.StatusStyle(img.ProcessingStatus.String()).Render(img.ProcessingStatus.String())
		line := fmt.Sprintf("%s %s %s",
			styles.FaintText.Render(fmt.Sprintf("#%-4d", img.ID)),
			badge,
			styles.Text.Render(string(img.ImageType)),
		)
		if uploaded := img.ParsedCreatedAt(); !uploaded.IsZero() {
			line += "  " + styles.MutedText.Render(uploaded.Format("2006-01-02 15:04"))
		}
		if i == m.photoRow {
			line = styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("<a> analyze photos  <x> remove selected"))

	return b.String()
}

// Commands

func processImagesCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.ProcessUserImages(ctx)
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{note: resp.Message}
	}
}

func deleteImageCmd(ctx context.Context, client *api.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := client.DeleteImage(ctx, id); err != nil && !api.IsNotFound(err) {
			return actionMsg{err: err}
		}
		return actionMsg{note: fmt.Sprintf("photo #%d removed", id)}
	}
}
