// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Secret Panel Authors

package models

import "errors"

// ErrShareTargetInvalid is returned when a share or unshare request does
// not name exactly one target (user or role).
var ErrShareTargetInvalid = errors.New("share target must be exactly one of user or role")

// ShareTarget names the variant of a share grant.
type ShareTarget string

const (
	// ShareTargetUser marks a grant addressed to an individual user.
	ShareTargetUser ShareTarget = "user"

	// ShareTargetRole marks a grant addressed to every member of a role.
	ShareTargetRole ShareTarget = "role"

	// ShareTargetNone marks a malformed grant with no target set.
	ShareTargetNone ShareTarget = ""
)

// Share is a grant of access to a secret. Exactly one of TargetUserID and
// TargetRoleID is set; the display fields are filled in by the server so
// the panel does not need a directory round-trip to render the list.
type Share struct {
	// SecretID identifies the shared secret.
	SecretID string `json:"secret_id"`

	// TargetUserID is the recipient user, or empty for a role share.
	TargetUserID string `json:"target_user_id,omitempty"`

	// TargetRoleID is the recipient role, or empty for a user share.
	TargetRoleID string `json:"target_role_id,omitempty"`

	// SharedWithUserEmail is the display email for a user share.
	SharedWithUserEmail string `json:"shared_with_user_email,omitempty"`

	// SharedWithRoleName is the display name for a role share.
	SharedWithRoleName string `json:"shared_with_role_name,omitempty"`
}

// Target reports which variant this share is. A share with both or neither
// target set reports ShareTargetNone and should be treated as malformed.
func (s Share) Target() ShareTarget {
	switch {
	case s.TargetUserID != "" && s.TargetRoleID == "":
		return ShareTargetUser
	case s.TargetRoleID != "" && s.TargetUserID == "":
		return ShareTargetRole
	default:
		return ShareTargetNone
	}
}

// ShareRequest asks the store to grant access to a secret.
type ShareRequest struct {
	SecretID     string `json:"secret_id"`
	TargetUserID string `json:"target_user_id,omitempty"`
	TargetRoleID string `json:"target_role_id,omitempty"`
}

// Validate checks that the request names a secret and exactly one target.
func (r ShareRequest) Validate() error {
	if r.SecretID == "" {
		return errors.New("share request: secret id is required")
	}
	if (r.TargetUserID == "") == (r.TargetRoleID == "") {
		return ErrShareTargetInvalid
	}
	return nil
}

// UnshareRequest asks the store to revoke a previously granted share.
type UnshareRequest struct {
	SecretID     string `json:"secret_id"`
	TargetUserID string `json:"target_user_id,omitempty"`
	TargetRoleID string `json:"target_role_id,omitempty"`
}

// Validate checks that the request names a secret and exactly one target.
func (r UnshareRequest) Validate() error {
	if r.SecretID == "" {
		return errors.New("unshare request: secret id is required")
	}
	if (r.TargetUserID == "") == (r.TargetRoleID == "") {
		return ErrShareTargetInvalid
	}
	return nil
}
