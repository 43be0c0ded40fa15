package tui

import (
	"fmt"
	"strings"

	"github.com/mkarpenko/secretpanel/models"
)

type detailModel struct {
	item   models.Secret
	status string
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func expiryLabel(item models.Secret) string {
	if item.ExpiresAt == nil {
		return "—"
	}
	return item.ExpiresAt.Format("2006-01-02")
}

func twoFactorLabel(meta *models.TwoFactorMetadata) string {
	if meta == nil || !meta.Enabled {
		return "off"
	}
	label := "on"
	if meta.Type != "" {
		label += " (" + meta.Type + ")"
	}
	if n := len(meta.RecoveryCodes); n > 0 {
		label += fmt.Sprintf(", %d recovery codes", n)
	}
	return label
}

func (m detailModel) View() string {
	out := titleStyle.Render(m.item.Website) + "\n\n"
	out += fmt.Sprintf("Username:  %s\n", orDash(m.item.Username))
	out += "Password:  ••••••••\n"
	out += fmt.Sprintf("Tags:      %s\n", orDash(strings.Join(m.item.Tags, ", ")))
	out += fmt.Sprintf("Expires:   %s\n", expiryLabel(m.item))
	out += fmt.Sprintf("2FA:       %s\n", twoFactorLabel(m.item.Metadata))
	out += fmt.Sprintf("Notes:     %s\n", orDash(m.item.Notes))

	out += "\n" + helpStyle.Render("e edit  d delete  s shares  c copy password  u copy username  esc back")

	if m.status != "" {
		out += "\n\n" + m.status
	}

	return out
}
