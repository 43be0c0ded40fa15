package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShare_Target(t *testing.T) {
	tests := []struct {
		name  string
		share Share
		want  ShareTarget
	}{
		{"user share", Share{SecretID: "s1", TargetUserID: "u1"}, ShareTargetUser},
		{"role share", Share{SecretID: "s1", TargetRoleID: "r1"}, ShareTargetRole},
		{"no target", Share{SecretID: "s1"}, ShareTargetNone},
		{"both targets", Share{SecretID: "s1", TargetUserID: "u1", TargetRoleID: "r1"}, ShareTargetNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.share.Target())
		})
	}
}

func TestShareRequest_Validate(t *testing.T) {
	require.NoError(t, ShareRequest{SecretID: "s1", TargetUserID: "u1"}.Validate())
	require.NoError(t, ShareRequest{SecretID: "s1", TargetRoleID: "r1"}.Validate())

	assert.ErrorIs(t, ShareRequest{SecretID: "s1"}.Validate(), ErrShareTargetInvalid)
	assert.ErrorIs(t, ShareRequest{SecretID: "s1", TargetUserID: "u1", TargetRoleID: "r1"}.Validate(), ErrShareTargetInvalid)
	assert.Error(t, ShareRequest{TargetUserID: "u1"}.Validate())
}

func TestUnshareRequest_Validate(t *testing.T) {
	require.NoError(t, UnshareRequest{SecretID: "s1", TargetRoleID: "r1"}.Validate())
	assert.ErrorIs(t, UnshareRequest{SecretID: "s1"}.Validate(), ErrShareTargetInvalid)
	assert.Error(t, UnshareRequest{TargetRoleID: "r1"}.Validate())
}
