package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkarpenko/secretpanel/internal/controller"
	"github.com/mkarpenko/secretpanel/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenShares
)

type appModel struct {
	ctx  context.Context
	ctrl *controller.SecretListController

	currentScreen screen

	list       listModel
	detail     detailModel
	form       formModel
	sharesView sharesModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	quitByUser    bool
}

func newAppModel(ctx context.Context, ctrl *controller.SecretListController) appModel {
	return appModel{
		ctx:           ctx,
		ctrl:          ctrl,
		currentScreen: screenList,
		list:          newListModel(),
		sharesView:    newSharesModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdRefresh())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteSecret(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case stateChangedMsg:
		m.clampListIndex()
		return m, m.list.spinner.Tick
	case spinner.TickMsg:
		st := m.ctrl.List()
		sh := m.ctrl.Shares()
		if st.Loading || st.LoadingMore || st.Mutating || sh.Loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case intentDoneMsg:
		// operation outcomes, including failures, live in controller
		// snapshots; nothing to route here beyond a repaint
		m.clampListIndex()
		return m, nil
	case itemSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		return m, nil
	case itemDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = ""
		m.currentScreen = screenList
		m.clampListIndex()
		return m, nil
	case usersFoundMsg:
		m.sharesView.lookingUp = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.sharesView.users = msg.users
		m.sharesView.roles = nil
		m.sharesView.resultIdx = 0
		return m, nil
	case rolesFoundMsg:
		m.sharesView.lookingUp = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.sharesView.roles = msg.roles
		m.sharesView.users = nil
		m.sharesView.resultIdx = 0
		return m, nil
	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Copied!"
		}
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenShares:
		return m.updateShares(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.view(m.ctrl.List(), m.ctrl.Enabled())
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	case screenShares:
		body = m.sharesView.view(m.ctrl.Shares())
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) clampListIndex() {
	n := len(m.ctrl.List().Items)
	if m.list.idx >= n {
		m.list.idx = n - 1
	}
	if m.list.idx < 0 {
		m.list.idx = 0
	}
}

func (m appModel) currentSecret() (models.Secret, bool) {
	items := m.ctrl.List().Items
	if len(items) == 0 || m.list.idx < 0 || m.list.idx >= len(items) {
		return models.Secret{}, false
	}
	return items[m.list.idx], true
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.searching {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.searchInput.Blur()
			m.list.searchInput.SetValue("")
			if m.ctrl.List().Query != "" {
				return m, m.cmdSearch("")
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.list.searching = false
			m.list.searchInput.Blur()
			m.list.idx = 0
			return m, m.cmdSearch(strings.TrimSpace(m.list.searchInput.Value()))
		}
		var cmd tea.Cmd
		m.list.searchInput, cmd = m.list.searchInput.Update(msg)
		return m, cmd
	}

	st := m.ctrl.List()
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(st.Items)-1 {
			m.list.idx++
		} else if st.HasMore && !st.LoadingMore && !st.Loading {
			// scrolling past the end pulls in the next page
			return m, m.cmdLoadMore()
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.currentSecret()
		if !ok {
			return m, nil
		}
		m.detail.item = item
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit):
		item, ok := m.currentSecret()
		if !ok {
			return m, nil
		}
		m.form = newFormModel(&item)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		item, ok := m.currentSecret()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = item.Website
		m.pendingDelete = item.ID
	case key.Matches(keyMsg, keys.share):
		item, ok := m.currentSecret()
		if !ok {
			return m, nil
		}
		m.sharesView = newSharesModel()
		m.currentScreen = screenShares
		return m, m.cmdOpenShares(item.ID)
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		m.list.searchInput.SetValue(st.Query)
		m.list.searchInput.Focus()
		return m, nil
	case key.Matches(keyMsg, keys.more):
		if st.HasMore && !st.LoadingMore && !st.Loading {
			return m, m.cmdLoadMore()
		}
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.copy):
		item, ok := m.currentSecret()
		if !ok || item.Password == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(item.Password)
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		item := m.detail.item
		m.form = newFormModel(&item)
		m.currentScreen = screenForm
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.item.Website
		m.pendingDelete = m.detail.item.ID
		return m, nil
	case key.Matches(keyMsg, keys.share):
		m.sharesView = newSharesModel()
		m.currentScreen = screenShares
		return m, m.cmdOpenShares(m.detail.item.ID)
	case key.Matches(keyMsg, keys.copy):
		if m.detail.item.Password == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.item.Password)
	case key.Matches(keyMsg, keys.copyUser):
		if m.detail.item.Username == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.item.Username)
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = backFromForm(m.form.editing)
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if strings.TrimSpace(m.form.inputs[0].Value()) == "" ||
				strings.TrimSpace(m.form.inputs[1].Value()) == "" ||
				m.form.inputs[2].Value() == "" {
				m.showErrorf("Website, username and password are required")
				return m, nil
			}
			if _, err := m.form.expiresAt(); err != nil {
				m.showErrorf("Expiry must be a date like 2026-12-31")
				return m, nil
			}
			m.form.submitting = true
			if m.form.editing {
				return m, m.cmdUpdateSecret(m.form.toUpdate())
			}
			return m, m.cmdCreateSecret(m.form.toNewSecret())
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateShares(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	sh := m.ctrl.Shares()

	if m.sharesView.focusLookup {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.sharesView.focusLookup = false
			m.sharesView.lookupInput.Blur()
			m.sharesView.users = nil
			m.sharesView.roles = nil
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.sharesView.toggleKind()
			return m, nil
		case key.Matches(keyMsg, keys.up):
			if m.sharesView.resultIdx > 0 {
				m.sharesView.resultIdx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.down):
			if m.sharesView.resultIdx < m.sharesView.resultCount()-1 {
				m.sharesView.resultIdx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if req, ok := m.sharesView.selectedRequest(sh.SecretID); ok {
				m.sharesView.focusLookup = false
				m.sharesView.lookupInput.Blur()
				m.sharesView.users = nil
				m.sharesView.roles = nil
				return m, m.cmdShare(req)
			}
			query := strings.TrimSpace(m.sharesView.lookupInput.Value())
			if query == "" {
				return m, nil
			}
			m.sharesView.lookingUp = true
			if m.sharesView.kind == lookupUsers {
				return m, m.cmdLookupUsers(query)
			}
			return m, m.cmdLookupRoles(query)
		}
		var cmd tea.Cmd
		m.sharesView.lookupInput, cmd = m.sharesView.lookupInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.ctrl.CloseShares()
		m.currentScreen = screenDetail
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.sharesView.shareIdx > 0 {
			m.sharesView.shareIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.sharesView.shareIdx < len(sh.Shares)-1 {
			m.sharesView.shareIdx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.sharesView.focusLookup = true
		m.sharesView.lookupInput.SetValue("")
		m.sharesView.lookupInput.Focus()
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		if m.sharesView.shareIdx >= len(sh.Shares) {
			return m, nil
		}
		grant := sh.Shares[m.sharesView.shareIdx]
		return m, m.cmdUnshare(models.UnshareRequest{
			SecretID:     grant.SecretID,
			TargetUserID: grant.TargetUserID,
			TargetRoleID: grant.TargetRoleID,
		})
	}

	return m, nil
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return intentDoneMsg{err: ctrl.Refresh(ctx)}
	}
}

func (m appModel) cmdSearch(query string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return intentDoneMsg{err: ctrl.Search(ctx, query)}
	}
}

func (m appModel) cmdLoadMore() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return intentDoneMsg{err: ctrl.LoadMore(ctx)}
	}
}

func (m appModel) cmdCreateSecret(req models.NewSecret) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return itemSavedMsg{err: ctrl.CreateSecret(ctx, req)}
	}
}

func (m appModel) cmdUpdateSecret(req models.SecretUpdate) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return itemSavedMsg{err: ctrl.UpdateSecret(ctx, req)}
	}
}

func (m appModel) cmdDeleteSecret(id string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return itemDeletedMsg{err: ctrl.DeleteSecret(ctx, id)}
	}
}

func (m appModel) cmdOpenShares(secretID string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return intentDoneMsg{err: ctrl.OpenShares(ctx, secretID)}
	}
}

func (m appModel) cmdShare(req models.ShareRequest) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return intentDoneMsg{err: ctrl.ShareSecret(ctx, req)}
	}
}

func (m appModel) cmdUnshare(req models.UnshareRequest) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return intentDoneMsg{err: ctrl.UnshareSecret(ctx, req)}
	}
}

func (m appModel) cmdLookupUsers(query string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		users, err := ctrl.LookupUsers(ctx, query)
		return usersFoundMsg{users: users, err: err}
	}
}

func (m appModel) cmdLookupRoles(query string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		roles, err := ctrl.LookupRoles(ctx, query)
		return rolesFoundMsg{roles: roles, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return itemSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func backFromForm(editing bool) screen {
	if editing {
		return screenDetail
	}
	return screenList
}

func focusNextForm(m formModel) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevForm(m formModel) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
