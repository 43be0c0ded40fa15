// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Secret Panel Authors

// Package controller implements the secret-list view-model: a single
// authority over the paginated, searchable list of secrets and the share
// dialog attached to it.
//
// The controller mediates every store call for listing, searching, and
// mutating secrets. It guarantees that at most one primary list fetch
// (refresh or search) and, independently, at most one load-more fetch is
// outstanding at a time. A new request of the same category supersedes the
// previous one: the old call's context is cancelled and its eventual
// result is discarded via a generation token, so out-of-order completions
// can never overwrite newer state.
//
// All intent methods block until their store call completes and are safe
// to invoke from multiple goroutines; state mutations are serialized by a
// mutex (single-writer discipline). Presentation layers read state through
// [SecretListController.List] / [SecretListController.Shares] snapshots
// and may register change callbacks via [SecretListController.OnChange].
package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/mkarpenko/secretpanel/internal/adapter"
	"github.com/mkarpenko/secretpanel/internal/logger"
	"github.com/mkarpenko/secretpanel/models"
)

const (
	defaultPageSize       = 50
	defaultSearchPageSize = 100
)

// Options configures a [SecretListController].
type Options struct {
	// PageSize is the limit for unfiltered list fetches. Defaults to 50.
	PageSize int

	// SearchPageSize is the limit for search fetches. Search results are
	// not paginated: the store returns at most this single bounded page.
	// Defaults to 100.
	SearchPageSize int

	// Logger receives controller diagnostics. Defaults to a no-op logger.
	Logger *logger.Logger
}

// SecretListController owns the secret list state and is its only writer.
//
// A controller constructed with a nil store runs in disabled mode: every
// intent is a silent no-op and Enabled reports false. The host renders a
// read-only stub instead of failing.
type SecretListController struct {
	store     adapter.SecretStore
	directory adapter.DirectoryService
	log       *logger.Logger

	pageSize       int
	searchPageSize int

	mu            sync.Mutex
	list          ListState
	shares        ShareState
	primaryGen    uint64
	moreGen       uint64
	shareGen      uint64
	primaryCancel context.CancelFunc
	moreCancel    context.CancelFunc
	subscribers   []func()
}

// New constructs a controller over the given store and directory. Either
// collaborator may be nil; a nil store puts the controller in disabled
// mode, a nil directory disables recipient lookup in the share dialog.
func New(store adapter.SecretStore, directory adapter.DirectoryService, opts Options) *SecretListController {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.SearchPageSize <= 0 {
		opts.SearchPageSize = defaultSearchPageSize
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	return &SecretListController{
		store:          store,
		directory:      directory,
		log:            opts.Logger,
		pageSize:       opts.PageSize,
		searchPageSize: opts.SearchPageSize,
		list:           ListState{PageSize: opts.PageSize},
	}
}

// Enabled reports whether a secret store is configured. When false every
// intent method is a no-op.
func (c *SecretListController) Enabled() bool {
	return c.store != nil
}

// SearchActive reports whether a search filter is currently applied to
// the list. Background refreshers use it to avoid clobbering search
// results with unfiltered pages.
func (c *SecretListController) SearchActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Query != ""
}

// List returns a snapshot of the current list state.
func (c *SecretListController) List() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.clone()
}

// Shares returns a snapshot of the current share-dialog state.
func (c *SecretListController) Shares() ShareState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shares.clone()
}

// OnChange registers fn to be called after every state transition. The
// callback runs outside the controller mutex and must not block for long;
// it receives no arguments, subscribers pull fresh snapshots via List and
// Shares.
func (c *SecretListController) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// ClearError resets the retained error messages of both the list and the
// share dialog.
func (c *SecretListController) ClearError() {
	c.mu.Lock()
	c.list.Err = ""
	c.shares.Err = ""
	c.mu.Unlock()
	c.notify()
}

// Refresh re-runs the current query from offset zero, replacing the list
// wholesale on success. Any in-flight primary fetch or load-more is
// superseded: its context is cancelled and its result discarded on
// arrival. Returns the store error on failure; superseded and cancelled
// calls return nil.
func (c *SecretListController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	query := c.list.Query
	c.mu.Unlock()
	return c.runPrimary(ctx, query)
}

// Search switches the active query and fetches the first page of results.
// An empty query behaves exactly like Refresh with no filter: an
// unfiltered list call, never a search with an empty string. While a
// non-empty query is active, pagination is suppressed: the store returns
// at most one bounded page and LoadMore is a no-op.
func (c *SecretListController) Search(ctx context.Context, query string) error {
	return c.runPrimary(ctx, query)
}

// runPrimary is the shared body of Refresh and Search: it supersedes any
// in-flight primary or load-more fetch, resets pagination for the given
// query, issues the store call, and applies the result only if it is still
// the newest primary fetch.
func (c *SecretListController) runPrimary(ctx context.Context, query string) error {
	if c.store == nil {
		return nil
	}

	c.mu.Lock()
	c.primaryGen++
	gen := c.primaryGen
	if c.primaryCancel != nil {
		c.primaryCancel()
	}
	// a primary fetch supersedes any load-more in flight as well
	c.moreGen++
	if c.moreCancel != nil {
		c.moreCancel()
		c.moreCancel = nil
	}
	callCtx, cancel := context.WithCancel(ctx)
	c.primaryCancel = cancel

	if c.list.Query != query {
		c.list.Items = nil
	}
	c.list.Query = query
	c.list.Offset = 0
	c.list.HasMore = false
	c.list.Loading = true
	c.list.LoadingMore = false
	c.list.Err = ""
	c.mu.Unlock()
	c.notify()

	var page models.SecretPage
	var err error
	if query == "" {
		page, err = c.store.ListSecrets(callCtx, c.pageSize, 0)
	} else {
		page, err = c.store.SearchSecrets(callCtx, query, c.searchPageSize, 0)
	}
	cancel()

	c.mu.Lock()
	if gen != c.primaryGen {
		// superseded by a newer refresh/search: discard, not an error
		c.mu.Unlock()
		return nil
	}
	c.primaryCancel = nil

	c.list.Loading = false

	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.mu.Unlock()
			return nil
		}
		c.list.Err = err.Error()
		c.mu.Unlock()
		c.notify()
		c.log.Error().Err(err).Str("query", query).Msg("primary list fetch failed")
		return err
	}

	c.list.Items = page.Data
	c.list.Offset = len(page.Data)
	if query == "" {
		c.list.HasMore = page.HasMore
	} else {
		c.list.HasMore = false
	}
	c.mu.Unlock()
	c.notify()
	return nil
}

// LoadMore fetches the next page of the unfiltered list and appends it to
// Items. It is a no-op when a primary fetch or another load-more is in
// flight, when the store reports no further records, or while a search
// query is active.
func (c *SecretListController) LoadMore(ctx context.Context) error {
	if c.store == nil {
		return nil
	}

	c.mu.Lock()
	if c.list.Loading || c.list.LoadingMore || !c.list.HasMore || c.list.Query != "" {
		c.mu.Unlock()
		return nil
	}
	c.moreGen++
	gen := c.moreGen
	if c.moreCancel != nil {
		c.moreCancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	c.moreCancel = cancel
	c.list.LoadingMore = true
	c.list.Err = ""
	offset := c.list.Offset
	c.mu.Unlock()
	c.notify()

	page, err := c.store.ListSecrets(callCtx, c.pageSize, offset)
	cancel()

	c.mu.Lock()
	if gen != c.moreGen {
		c.mu.Unlock()
		return nil
	}
	c.moreCancel = nil
	c.list.LoadingMore = false

	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.mu.Unlock()
			return nil
		}
		c.list.Err = err.Error()
		c.mu.Unlock()
		c.notify()
		c.log.Error().Err(err).Int("offset", offset).Msg("load more failed")
		return err
	}

	c.list.Items = append(c.list.Items, page.Data...)
	c.list.Offset += len(page.Data)
	c.list.HasMore = page.HasMore
	c.mu.Unlock()
	c.notify()
	return nil
}

// CreateSecret stores a new credential and refreshes the list on success.
// A missing request ID is filled with a client-side UUID before the call.
func (c *SecretListController) CreateSecret(ctx context.Context, req models.NewSecret) error {
	if c.store == nil {
		return nil
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	c.beginMutation()

	_, err := c.store.CreateSecret(ctx, req)
	if err != nil {
		c.endMutation(err)
		return err
	}

	c.endMutation(nil)
	return c.Refresh(ctx)
}

// UpdateSecret replaces a stored credential and refreshes the list on
// success.
func (c *SecretListController) UpdateSecret(ctx context.Context, req models.SecretUpdate) error {
	if c.store == nil {
		return nil
	}

	c.beginMutation()

	_, err := c.store.UpdateSecret(ctx, req)
	if err != nil {
		c.endMutation(err)
		return err
	}

	c.endMutation(nil)
	return c.Refresh(ctx)
}

// DeleteSecret removes a credential. On success the matching item is
// removed from the local list without a refresh round-trip; on failure the
// list is left untouched and the error message is retained.
func (c *SecretListController) DeleteSecret(ctx context.Context, id string) error {
	if c.store == nil {
		return nil
	}

	c.beginMutation()

	if err := c.store.DeleteSecret(ctx, id); err != nil {
		c.endMutation(err)
		return err
	}

	c.mu.Lock()
	c.list.Mutating = false
	kept := c.list.Items[:0:0]
	removed := 0
	for _, item := range c.list.Items {
		if item.ID == id {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	c.list.Items = kept
	if c.list.Query == "" && c.list.Offset >= removed {
		c.list.Offset -= removed
	}
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *SecretListController) beginMutation() {
	c.mu.Lock()
	c.list.Mutating = true
	c.list.Err = ""
	c.mu.Unlock()
	c.notify()
}

func (c *SecretListController) endMutation(err error) {
	c.mu.Lock()
	c.list.Mutating = false
	if err != nil && !errors.Is(err, context.Canceled) {
		c.list.Err = err.Error()
	}
	c.mu.Unlock()
	c.notify()
}

// LookupUsers proxies a directory user search for the share dialog.
// Returns nil when no directory service is configured.
func (c *SecretListController) LookupUsers(ctx context.Context, query string) ([]models.DirectoryUser, error) {
	if c.directory == nil {
		return nil, nil
	}
	return c.directory.SearchUsers(ctx, query)
}

// LookupRoles proxies a directory role search for the share dialog.
// Returns nil when no directory service is configured.
func (c *SecretListController) LookupRoles(ctx context.Context, query string) ([]models.DirectoryRole, error) {
	if c.directory == nil {
		return nil, nil
	}
	return c.directory.SearchRoles(ctx, query)
}

func (c *SecretListController) notify() {
	c.mu.Lock()
	subs := append([]func(){}, c.subscribers...)
	c.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
