// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Secret Panel Authors

package controller

import "github.com/mkarpenko/secretpanel/models"

// ListState is the observable state of the secret list. The controller is
// its single writer; callers receive deep copies via
// [SecretListController.List] and must treat them as read-only snapshots.
//
// Invariants:
//   - Loading and LoadingMore are never both true.
//   - Offset equals the sum of page lengths fetched so far for the
//     current Query.
//   - Switching Query resets Offset to 0 and discards Items accumulated
//     under the previous query.
type ListState struct {
	// Items is the accumulated secret list for the current query.
	Items []models.Secret

	// Query is the active search filter; empty means the unfiltered list.
	Query string

	// Offset is the position the next page fetch starts from.
	Offset int

	// PageSize is the limit used for unfiltered list fetches.
	PageSize int

	// HasMore reports whether the store has records past Offset.
	HasMore bool

	// Loading is true while an initial load, refresh, or search is in
	// flight.
	Loading bool

	// LoadingMore is true while a load-more fetch is in flight.
	LoadingMore bool

	// Mutating is true while a create, update, or delete call is in
	// flight.
	Mutating bool

	// Err holds the last operation's failure message. It is retained
	// until cleared or superseded by a newer operation's outcome.
	// Cancelled operations never populate it.
	Err string
}

// ShareState is the observable state of the share dialog for one secret.
// It is populated by OpenShares and reset by CloseShares.
type ShareState struct {
	// SecretID identifies the secret whose shares are shown, or empty
	// when no dialog is open.
	SecretID string

	// Shares is the server-authoritative share list. It is always
	// re-fetched after a share or unshare, never mutated optimistically:
	// share state involves a second principal and must not be guessed.
	Shares []models.Share

	// Loading is true while the share list is being fetched.
	Loading bool

	// Err holds the last share operation's failure message.
	Err string
}

func (s ListState) clone() ListState {
	out := s
	if s.Items != nil {
		out.Items = make([]models.Secret, len(s.Items))
		for i, item := range s.Items {
			out.Items[i] = item.Clone()
		}
	}
	return out
}

func (s ShareState) clone() ShareState {
	out := s
	out.Shares = append([]models.Share(nil), s.Shares...)
	return out
}
