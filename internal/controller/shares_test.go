// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Secret Panel Authors

package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkarpenko/secretpanel/models"
)

func TestOpenShares_LoadsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, store, _ := newTestController(t, ctrl)

	want := []models.Share{{SecretID: "s1", TargetUserID: "u2", SharedWithUserEmail: "bob@example.com"}}
	store.EXPECT().ListShares(gomock.Any(), "s1").Return(want, nil)

	require.NoError(t, c.OpenShares(context.Background(), "s1"))

	sh := c.Shares()
	assert.Equal(t, "s1", sh.SecretID)
	assert.Equal(t, want, sh.Shares)
	assert.False(t, sh.Loading)
	assert.Empty(t, sh.Err)
}

func TestOpenShares_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, store, _ := newTestController(t, ctrl)

	store.EXPECT().ListShares(gomock.Any(), "s1").Return(nil, errors.New("forbidden"))

	err := c.OpenShares(context.Background(), "s1")

	require.Error(t, err)
	sh := c.Shares()
	assert.False(t, sh.Loading)
	assert.Equal(t, "forbidden", sh.Err)
	assert.Empty(t, sh.Shares)
}

func TestCloseShares_ResetsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, store, _ := newTestController(t, ctrl)

	store.EXPECT().ListShares(gomock.Any(), "s1").
		Return([]models.Share{{SecretID: "s1", TargetRoleID: "r1"}}, nil)

	require.NoError(t, c.OpenShares(context.Background(), "s1"))
	c.CloseShares()

	sh := c.Shares()
	assert.Empty(t, sh.SecretID)
	assert.Empty(t, sh.Shares)
}

// TestOpenShares_StaleFetchDiscarded: opening the dialog for another secret
// while the first fetch is in flight discards the first result on arrival.
func TestOpenShares_StaleFetchDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, store, _ := newTestController(t, ctrl)

	entered := make(chan struct{})
	release := make(chan struct{})
	store.EXPECT().ListShares(gomock.Any(), "s1").DoAndReturn(
		func(ctx context.Context, secretID string) ([]models.Share, error) {
			close(entered)
			<-release
			return []models.Share{{SecretID: "s1", TargetUserID: "stale"}}, nil
		})
	store.EXPECT().ListShares(gomock.Any(), "s2").
		Return([]models.Share{{SecretID: "s2", TargetUserID: "fresh"}}, nil)

	done := make(chan error, 1)
	go func() { done <- c.OpenShares(context.Background(), "s1") }()
	<-entered

	require.NoError(t, c.OpenShares(context.Background(), "s2"))
	close(release)
	require.NoError(t, <-done)

	sh := c.Shares()
	assert.Equal(t, "s2", sh.SecretID)
	require.Len(t, sh.Shares, 1)
	assert.Equal(t, "fresh", sh.Shares[0].TargetUserID)
}

// TestShareSecret_RefetchesList: a successful grant always re-fetches the
// share list so the dialog shows the server's view, including the new
// user-share.
func TestShareSecret_RefetchesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, store, _ := newTestController(t, ctrl)

	store.EXPECT().ListShares(gomock.Any(), "s1").Return(nil, nil)
	store.EXPECT().ShareSecret(gomock.Any(), models.ShareRequest{SecretID: "s1", TargetUserID: "u2"}).
		Return(nil)
	store.EXPECT().ListShares(gomock.Any(), "s1").
		Return([]models.Share{{SecretID: "s1", TargetUserID: "u2", SharedWithUserEmail: "bob@example.com"}}, nil)

	require.NoError(t, c.OpenShares(context.Background(), "s1"))
	require.NoError(t, c.ShareSecret(context.Background(), models.ShareRequest{SecretID: "s1", TargetUserID: "u2"}))

	sh := c.Shares()
	require.Len(t, sh.Shares, 1)
	assert.Equal(t, "u2", sh.Shares[0].TargetUserID)
	assert.Equal(t, "bob@example.com", sh.Shares[0].SharedWithUserEmail)
}

func TestShareSecret_InvalidTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, _, _ := newTestController(t, ctrl)

	// both targets set: rejected before any store call
	err := c.ShareSecret(context.Background(), models.ShareRequest{
		SecretID:     "s1",
		TargetUserID: "u2",
		TargetRoleID: "r1",
	})

	require.ErrorIs(t, err, models.ErrShareTargetInvalid)
	assert.NotEmpty(t, c.Shares().Err)
}

func TestShareSecret_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, store, _ := newTestController(t, ctrl)

	store.EXPECT().ShareSecret(gomock.Any(), gomock.Any()).Return(errors.New("target not found"))

	err := c.ShareSecret(context.Background(), models.ShareRequest{SecretID: "s1", TargetUserID: "ghost"})

	require.Error(t, err)
	sh := c.Shares()
	assert.False(t, sh.Loading)
	assert.Equal(t, "target not found", sh.Err)
}

func TestUnshareSecret_RefetchesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c, store, _ := newTestController(t, ctrl)

	store.EXPECT().ListShares(gomock.Any(), "s1").
		Return([]models.Share{{SecretID: "s1", TargetRoleID: "r1", SharedWithRoleName: "admins"}}, nil)
	store.EXPECT().UnshareSecret(gomock.Any(), models.UnshareRequest{SecretID: "s1", TargetRoleID: "r1"}).
		Return(nil)
	store.EXPECT().ListShares(gomock.Any(), "s1").Return(nil, nil)

	require.NoError(t, c.OpenShares(context.Background(), "s1"))
	require.NoError(t, c.UnshareSecret(context.Background(), models.UnshareRequest{SecretID: "s1", TargetRoleID: "r1"}))

	assert.Empty(t, c.Shares().Shares)
}
