// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Secret Panel Authors

package models

import "time"

// Secret represents a single credential record as returned by the secret
// store. The panel never sees plaintext storage details: encryption and
// persistence happen behind the store API, so from the panel's perspective
// a Secret is an immutable value that is replaced wholesale on refresh,
// never patched in place.
type Secret struct {
	// ID is the store-assigned unique identifier of the record.
	ID string `json:"id"`

	// Website is the site or service the credential belongs to.
	Website string `json:"website"`

	// Username is the account name used on Website.
	Username string `json:"username"`

	// Password is the credential value. The store returns it already
	// decrypted for the authenticated caller.
	Password string `json:"password"`

	// Notes contains optional free-form user notes.
	Notes string `json:"notes,omitempty"`

	// Tags holds user-defined labels used for filtering and display.
	Tags []string `json:"tags,omitempty"`

	// ExpiresAt is the optional expiration date of the credential.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// Metadata carries optional two-factor authentication details.
	Metadata *TwoFactorMetadata `json:"metadata,omitempty"`
}

// TwoFactorMetadata describes the 2FA setup attached to a credential.
type TwoFactorMetadata struct {
	// Enabled reports whether two-factor authentication is active.
	Enabled bool `json:"twofa_enabled"`

	// Type names the 2FA mechanism (e.g. "totp", "sms"). Empty when
	// Enabled is false.
	Type string `json:"twofa_type,omitempty"`

	// RecoveryCodes holds one-time backup codes for the account.
	RecoveryCodes []string `json:"recovery_codes,omitempty"`
}

// Clone returns a copy of the secret that shares no memory with the
// receiver: the tag slice, the expiry pointer, and the 2FA metadata
// (including its recovery codes) are all duplicated.
func (s Secret) Clone() Secret {
	out := s
	out.Tags = append([]string(nil), s.Tags...)
	if s.ExpiresAt != nil {
		expires := *s.ExpiresAt
		out.ExpiresAt = &expires
	}
	if s.Metadata != nil {
		meta := *s.Metadata
		meta.RecoveryCodes = append([]string(nil), s.Metadata.RecoveryCodes...)
		out.Metadata = &meta
	}
	return out
}

// NewSecret is the request shape for creating a credential. ID may be left
// empty, in which case the controller assigns a client-side UUID before
// the request is sent.
type NewSecret struct {
	ID        string             `json:"id,omitempty"`
	Website   string             `json:"website"`
	Username  string             `json:"username"`
	Password  string             `json:"password"`
	Notes     string             `json:"notes,omitempty"`
	Tags      []string           `json:"tags,omitempty"`
	ExpiresAt *time.Time         `json:"expires_at,omitempty"`
	Metadata  *TwoFactorMetadata `json:"metadata,omitempty"`
}

// SecretUpdate is the request shape for updating an existing credential.
// ID identifies the record; all other fields replace the stored values.
type SecretUpdate struct {
	ID        string             `json:"id"`
	Website   string             `json:"website"`
	Username  string             `json:"username"`
	Password  string             `json:"password"`
	Notes     string             `json:"notes,omitempty"`
	Tags      []string           `json:"tags,omitempty"`
	ExpiresAt *time.Time         `json:"expires_at,omitempty"`
	Metadata  *TwoFactorMetadata `json:"metadata,omitempty"`
}
