// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Secret Panel Authors

// Package adapter provides transport-layer access to the host's secrets
// backend.
//
// The primary abstractions are [SecretStore] and [DirectoryService], which
// decouple the panel controller from the underlying protocol. The package
// ships an HTTP/REST implementation ([NewHTTPStore]); the controller only
// ever sees the interfaces, so a host application may substitute its own
// in-process providers.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mkarpenko/secretpanel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SecretStore defines transport-agnostic access to the secret backend.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package. All listing calls are paginated with a limit
// and offset; implementations must honour context cancellation.
type SecretStore interface {
	// ListSecrets fetches one page of the unfiltered secret list starting
	// at offset. Returns the page and a has-more flag, or an error if the
	// request fails.
	ListSecrets(ctx context.Context, limit, offset int) (models.SecretPage, error)

	// SearchSecrets fetches one page of secrets matching query. The match
	// semantics (fields searched, fuzziness) belong to the server.
	SearchSecrets(ctx context.Context, query string, limit, offset int) (models.SecretPage, error)

	// CreateSecret stores a new credential and returns the stored record
	// with server-populated fields.
	CreateSecret(ctx context.Context, req models.NewSecret) (models.Secret, error)

	// UpdateSecret replaces the stored credential identified by req.ID and
	// returns the updated record.
	UpdateSecret(ctx context.Context, req models.SecretUpdate) (models.Secret, error)

	// DeleteSecret removes the credential with the given id. Returns
	// [ErrNotFound] (wrapped) if no such record exists.
	DeleteSecret(ctx context.Context, id string) error

	// ListShares returns every share grant currently attached to the
	// secret with the given id.
	ListShares(ctx context.Context, secretID string) ([]models.Share, error)

	// ShareSecret grants access to a secret for the user or role named in
	// req. The request must name exactly one target.
	ShareSecret(ctx context.Context, req models.ShareRequest) error

	// UnshareSecret revokes a previously granted share.
	UnshareSecret(ctx context.Context, req models.UnshareRequest) error
}

// DirectoryService looks up users and roles in the host directory so the
// share dialog can offer recipients. Authorization for who may be listed
// is enforced server-side.
type DirectoryService interface {
	// SearchUsers returns directory users whose email or name matches
	// query. An empty query returns a server-bounded default listing.
	SearchUsers(ctx context.Context, query string) ([]models.DirectoryUser, error)

	// SearchRoles returns directory roles whose name matches query.
	SearchRoles(ctx context.Context, query string) ([]models.DirectoryRole, error)
}
