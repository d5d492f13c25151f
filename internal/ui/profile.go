package ui

import (
	"fmt"
	"strings"
)

// renderProfile renders the styling profile view.
func (m Model) renderProfile() string {
	styles := m.theme.Styles()
	profile := m.snapshot.Profile

	var b strings.Builder

	if m.snapshot.Account != nil {
		b.WriteString(styles.MutedText.Render("Account     "))
		b.WriteString(styles.Text.Render(m.snapshot.Account.Email))
		b.WriteString("\n\n")
	}

	if profile == nil {
		b.WriteString(styles.MutedText.Render("No styling profile yet. Create one with `drip profile set`."))
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

	row("Name", profile.Name)
	row("Gender", profile.Gender)
	if profile.Age > 0 {
		row("Age", fmt.Sprintf("%d", profile.Age))
	}
	if profile.Height > 0 {
		row("Height", fmt.Sprintf("%.0f cm", profile.Height))
	}
	if profile.Weight > 0 {
		row("Weight", fmt.Sprintf("%.0f kg", profile.Weight))
	}
	row("Marital", profile.MaritalStatus)
	row("Body type", profile.BodyType)
	row("Skin tone", profile.FaceTone)
	row("Occupation", profile.Occupation)
	location := strings.TrimSpace(strings.TrimPrefix(profile.State+", "+profile.Country, ", "))
	row("Location", strings.TrimSuffix(location, ", "))
	row("Notes", profile.AdditionalInfo)

	return strings.TrimRight(b.String(), "\n")
}
