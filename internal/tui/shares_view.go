package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mkarpenko/secretpanel/internal/controller"
	"github.com/mkarpenko/secretpanel/models"
)

type lookupKind int

const (
	lookupUsers lookupKind = iota
	lookupRoles
)

// sharesModel is the share dialog for one secret: the current grant list
// plus a directory lookup for adding new grants.
type sharesModel struct {
	shareIdx int

	focusLookup bool
	lookupInput textinput.Model
	kind        lookupKind
	lookingUp   bool

	users     []models.DirectoryUser
	roles     []models.DirectoryRole
	resultIdx int
}

func newSharesModel() sharesModel {
	input := textinput.New()
	input.Placeholder = "name or email"
	input.Width = 40
	return sharesModel{lookupInput: input}
}

func (m *sharesModel) toggleKind() {
	if m.kind == lookupUsers {
		m.kind = lookupRoles
	} else {
		m.kind = lookupUsers
	}
	m.users = nil
	m.roles = nil
	m.resultIdx = 0
}

func (m sharesModel) resultCount() int {
	if m.kind == lookupUsers {
		return len(m.users)
	}
	return len(m.roles)
}

// selectedRequest builds a share request for the highlighted lookup result,
// or reports false when no result is selected.
func (m sharesModel) selectedRequest(secretID string) (models.ShareRequest, bool) {
	if m.kind == lookupUsers {
		if m.resultIdx < 0 || m.resultIdx >= len(m.users) {
			return models.ShareRequest{}, false
		}
		return models.ShareRequest{SecretID: secretID, TargetUserID: m.users[m.resultIdx].ID}, true
	}
	if m.resultIdx < 0 || m.resultIdx >= len(m.roles) {
		return models.ShareRequest{}, false
	}
	return models.ShareRequest{SecretID: secretID, TargetRoleID: m.roles[m.resultIdx].ID}, true
}

func shareLabel(s models.Share) string {
	switch s.Target() {
	case models.ShareTargetUser:
		if s.SharedWithUserEmail != "" {
			return "user " + s.SharedWithUserEmail
		}
		return "user " + s.TargetUserID
	case models.ShareTargetRole:
		if s.SharedWithRoleName != "" {
			return "role " + s.SharedWithRoleName
		}
		return "role " + s.TargetRoleID
	default:
		return "malformed grant"
	}
}

func (m sharesModel) view(st controller.ShareState) string {
	out := titleStyle.Render("Shares") + "\n\n"

	switch {
	case st.Loading:
		out += "Loading shares...\n"
	case len(st.Shares) == 0:
		out += "Not shared with anyone\n"
	default:
		for i, grant := range st.Shares {
			cursor := "  "
			if !m.focusLookup && i == m.shareIdx {
				cursor = "> "
			}
			out += cursor + shareLabel(grant) + "\n"
		}
	}

	if m.focusLookup {
		kind := "users"
		if m.kind == lookupRoles {
			kind = "roles"
		}
		out += fmt.Sprintf("\nAdd share (%s): %s\n", kind, m.lookupInput.View())
		if m.lookingUp {
			out += "Searching directory...\n"
		}
		for i := 0; i < m.resultCount(); i++ {
			cursor := "  "
			if i == m.resultIdx {
				cursor = "> "
			}
			if m.kind == lookupUsers {
				u := m.users[i]
				out += fmt.Sprintf("%s%s <%s>\n", cursor, u.Name, u.Email)
			} else {
				out += cursor + m.roles[i].Name + "\n"
			}
		}
		out += "\n" + helpStyle.Render("tab users/roles  enter search or grant  esc back")
	} else {
		out += "\n" + helpStyle.Render("n add share  d revoke  esc close")
	}

	if st.Err != "" {
		out += "\n" + errorStyle.Render("Error: "+st.Err) + "\n"
	}

	return out
}
