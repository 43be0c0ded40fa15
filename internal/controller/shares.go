// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Secret Panel Authors

package controller

import (
	"context"
	"errors"

	"github.com/mkarpenko/secretpanel/models"
)

// OpenShares loads the share list for the given secret into the share
// dialog state. Opening a dialog for a different secret supersedes any
// share fetch still in flight for the previous one.
func (c *SecretListController) OpenShares(ctx context.Context, secretID string) error {
	if c.store == nil {
		return nil
	}

	c.mu.Lock()
	c.shareGen++
	c.shares = ShareState{SecretID: secretID, Loading: true}
	c.mu.Unlock()
	c.notify()

	return c.loadShares(ctx, secretID)
}

// CloseShares resets the share dialog state. Any share fetch still in
// flight is discarded on arrival.
func (c *SecretListController) CloseShares() {
	c.mu.Lock()
	c.shareGen++
	c.shares = ShareState{}
	c.mu.Unlock()
	c.notify()
}

// ShareSecret grants access to a secret. On success the share list is
// re-fetched from the store so the dialog reflects server-authoritative
// state; the local list is never mutated optimistically.
func (c *SecretListController) ShareSecret(ctx context.Context, req models.ShareRequest) error {
	if c.store == nil {
		return nil
	}
	if err := req.Validate(); err != nil {
		c.setShareError(err)
		return err
	}

	c.mu.Lock()
	c.shares.Loading = true
	c.shares.Err = ""
	c.mu.Unlock()
	c.notify()

	if err := c.store.ShareSecret(ctx, req); err != nil {
		c.setShareError(err)
		return err
	}

	return c.loadShares(ctx, req.SecretID)
}

// UnshareSecret revokes a share grant. On success the share list is
// re-fetched from the store.
func (c *SecretListController) UnshareSecret(ctx context.Context, req models.UnshareRequest) error {
	if c.store == nil {
		return nil
	}
	if err := req.Validate(); err != nil {
		c.setShareError(err)
		return err
	}

	c.mu.Lock()
	c.shares.Loading = true
	c.shares.Err = ""
	c.mu.Unlock()
	c.notify()

	if err := c.store.UnshareSecret(ctx, req); err != nil {
		c.setShareError(err)
		return err
	}

	return c.loadShares(ctx, req.SecretID)
}

// loadShares fetches the share list for secretID and applies it if the
// dialog has not moved on to another secret in the meantime.
func (c *SecretListController) loadShares(ctx context.Context, secretID string) error {
	c.mu.Lock()
	gen := c.shareGen
	c.mu.Unlock()

	shares, err := c.store.ListShares(ctx, secretID)

	c.mu.Lock()
	if gen != c.shareGen {
		c.mu.Unlock()
		return nil
	}
	c.shares.Loading = false

	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.mu.Unlock()
			return nil
		}
		c.shares.Err = err.Error()
		c.mu.Unlock()
		c.notify()
		c.log.Error().Err(err).Str("secret_id", secretID).Msg("load shares failed")
		return err
	}

	c.shares.SecretID = secretID
	c.shares.Shares = shares
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *SecretListController) setShareError(err error) {
	c.mu.Lock()
	c.shares.Loading = false
	if !errors.Is(err, context.Canceled) {
		c.shares.Err = err.Error()
	}
	c.mu.Unlock()
	c.notify()
}
