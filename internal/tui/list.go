package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mkarpenko/secretpanel/internal/controller"
)

type listModel struct {
	idx         int
	searching   bool
	searchInput textinput.Model
	spinner     spinner.Model
	status      string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	input := textinput.New()
	input.Placeholder = "search secrets"
	input.Width = 40

	return listModel{spinner: s, searchInput: input}
}

func (m listModel) view(st controller.ListState, enabled bool) string {
	header := titleStyle.Render("Secret Panel")
	if st.Loading || st.LoadingMore || st.Mutating {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if !enabled {
		out += "No secret store configured. Set the store address to enable the panel.\n"
		out += "\n" + helpStyle.Render("q quit")
		return out
	}

	if m.searching {
		out += "Search: " + m.searchInput.View() + "\n\n"
	} else if st.Query != "" {
		out += fmt.Sprintf("Filter: %q  (press / to change, / then esc to clear)\n\n", st.Query)
	}

	switch {
	case st.Loading:
		out += "Loading...\n"
	case len(st.Items) == 0 && st.Query != "":
		out += "No secrets match the search\n"
	case len(st.Items) == 0:
		out += "No secrets yet\n"
	default:
		for i, item := range st.Items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s  %s", cursor, item.Website, item.Username)
			if item.Metadata != nil && item.Metadata.Enabled {
				line += "  [2FA]"
			}
			out += line + "\n"
		}
		if st.LoadingMore {
			out += "  loading more...\n"
		} else if st.HasMore {
			out += helpStyle.Render("  m / scroll down for more") + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if st.Err != "" {
		out += "\n" + errorStyle.Render("Error: "+st.Err) + "\n"
	}

	out += "\n" + helpStyle.Render("n new  e edit  d delete  s shares  / search  r refresh  c copy password  enter open  q quit")
	return out
}
