package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialmedia/apperrors"
)

func TestFollowAndUnfollow(t *testing.T) {
	database := setupTestDB(t)
	fs := NewFollowerService(database)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")

	edge, err := fs.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, edge.FollowerID)
	assert.Equal(t, bob.ID, edge.FollowingID)

	following, err := fs.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// Not symmetric.
	following, err = fs.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)

	removed, err := fs.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = fs.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFollowSelf(t *testing.T) {
	database := setupTestDB(t)
	fs := NewFollowerService(database)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")

	_, err := fs.Follow(ctx, alice.ID, alice.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)

	following, err := fs.IsFollowing(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowDuplicate(t *testing.T) {
	database := setupTestDB(t)
	fs := NewFollowerService(database)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")

	_, err := fs.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = fs.Follow(ctx, alice.ID, bob.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
}

func TestFollowUnknownUser(t *testing.T) {
	database := setupTestDB(t)
	fs := NewFollowerService(database)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")

	_, err := fs.Follow(ctx, alice.ID, 999)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}

func TestFollowerLists(t *testing.T) {
	database := setupTestDB(t)
	fs := NewFollowerService(database)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	carol := createTestUser(t, database, "carol")

	_, err := fs.Follow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = fs.Follow(ctx, carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = fs.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	followers, err := fs.GetFollowers(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	followersCount, err := fs.FollowersCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followersCount)

	following, err := fs.GetFollowing(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, bob.ID, following[0].ID)

	followingCount, err := fs.FollowingCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followingCount)
}

// An edge pointing at a deleted user is corruption and surfaces as an
// integrity error instead of being silently dropped.
func TestFollowerMissingUserFailsLoudly(t *testing.T) {
	database := setupTestDB(t)
	fs := NewFollowerService(database)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")
	_, err := fs.Follow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	require.NoError(t, database.Exec("PRAGMA foreign_keys = OFF").Error)
	require.NoError(t, database.Exec("DELETE FROM users WHERE id = ?", bob.ID).Error)

	_, err = fs.GetFollowers(ctx, alice.ID)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindIntegrity, appErr.Kind)
}
