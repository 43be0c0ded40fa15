package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mkarpenko/secretpanel/models"
)

const (
	fieldWebsite = iota
	fieldUsername
	fieldPassword
	fieldTags
	fieldExpires
	fieldNotes
	fieldCount
)

type formModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	id         string
	metadata   *models.TwoFactorMetadata
	submitting bool
}

func newFormModel(item *models.Secret) formModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '*'
	inputs[fieldExpires].Placeholder = "2026-12-31"
	inputs[fieldWebsite].Focus()

	m := formModel{inputs: inputs}
	if item == nil {
		return m
	}

	m.editing = true
	m.id = item.ID
	m.metadata = item.Metadata
	m.inputs[fieldWebsite].SetValue(item.Website)
	m.inputs[fieldUsername].SetValue(item.Username)
	m.inputs[fieldPassword].SetValue(item.Password)
	m.inputs[fieldTags].SetValue(strings.Join(item.Tags, ", "))
	if item.ExpiresAt != nil {
		m.inputs[fieldExpires].SetValue(item.ExpiresAt.Format("2006-01-02"))
	}
	m.inputs[fieldNotes].SetValue(item.Notes)
	return m
}

func (m formModel) tags() []string {
	raw := strings.Split(m.inputs[fieldTags].Value(), ",")
	var tags []string
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (m formModel) expiresAt() (*time.Time, error) {
	value := strings.TrimSpace(m.inputs[fieldExpires].Value())
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (m formModel) toNewSecret() models.NewSecret {
	expires, _ := m.expiresAt()
	return models.NewSecret{
		Website:   strings.TrimSpace(m.inputs[fieldWebsite].Value()),
		Username:  strings.TrimSpace(m.inputs[fieldUsername].Value()),
		Password:  m.inputs[fieldPassword].Value(),
		Notes:     m.inputs[fieldNotes].Value(),
		Tags:      m.tags(),
		ExpiresAt: expires,
		Metadata:  m.metadata,
	}
}

func (m formModel) toUpdate() models.SecretUpdate {
	expires, _ := m.expiresAt()
	return models.SecretUpdate{
		ID:        m.id,
		Website:   strings.TrimSpace(m.inputs[fieldWebsite].Value()),
		Username:  strings.TrimSpace(m.inputs[fieldUsername].Value()),
		Password:  m.inputs[fieldPassword].Value(),
		Notes:     m.inputs[fieldNotes].Value(),
		Tags:      m.tags(),
		ExpiresAt: expires,
		Metadata:  m.metadata,
	}
}

func (m formModel) View() string {
	title := "New secret"
	if m.editing {
		title = "Editing: " + m.inputs[fieldWebsite].Value()
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Website:  [" + m.inputs[fieldWebsite].View() + "]\n"
	out += "Username: [" + m.inputs[fieldUsername].View() + "]\n"
	out += "Password: [" + m.inputs[fieldPassword].View() + "]\n"
	out += "Tags:     [" + m.inputs[fieldTags].View() + "]\n"
	out += "Expires:  [" + m.inputs[fieldExpires].View() + "]\n"
	out += "Notes:    [" + m.inputs[fieldNotes].View() + "]\n\n"
	if m.submitting {
		out += "Saving...\n\n"
	}
	out += helpStyle.Render("esc cancel  tab next field  enter save")
	return out
}
