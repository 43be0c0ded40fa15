package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretClone_SharesNoMemory(t *testing.T) {
	expires := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	original := Secret{
		ID:        "s1",
		Website:   "example.com",
		Tags:      []string{"prod", "shared"},
		ExpiresAt: &expires,
		Metadata: &TwoFactorMetadata{
			Enabled:       true,
			Type:          "totp",
			RecoveryCodes: []string{"code-1", "code-2"},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Tags[0] = "mutated"
	*clone.ExpiresAt = clone.ExpiresAt.AddDate(1, 0, 0)
	clone.Metadata.Enabled = false
	clone.Metadata.RecoveryCodes[0] = "mutated"

	assert.Equal(t, "prod", original.Tags[0])
	assert.Equal(t, expires, *original.ExpiresAt)
	assert.True(t, original.Metadata.Enabled)
	assert.Equal(t, "code-1", original.Metadata.RecoveryCodes[0])
}

func TestSecretClone_NilOptionals(t *testing.T) {
	original := Secret{ID: "s2", Website: "example.org"}

	clone := original.Clone()

	assert.Equal(t, original, clone)
	assert.Nil(t, clone.ExpiresAt)
	assert.Nil(t, clone.Metadata)
}
