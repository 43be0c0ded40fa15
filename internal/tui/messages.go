package tui

import "github.com/mkarpenko/secretpanel/models"

// stateChangedMsg is pumped in whenever the controller reports a state
// transition; it carries no payload because views re-read snapshots.
type stateChangedMsg struct{}

type intentDoneMsg struct {
	err error
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type usersFoundMsg struct {
	users []models.DirectoryUser
	err   error
}

type rolesFoundMsg struct {
	roles []models.DirectoryRole
	err   error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
