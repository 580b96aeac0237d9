package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialmedia/apperrors"
	"socialmedia/models"
)

func TestUserCreateAndLookup(t *testing.T) {
	database := setupTestDB(t)
	us := NewUserService(database)
	ctx := context.Background()

	bio := "hello there"
	user := &models.User{
		Username:  "alice",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Bio:       &bio,
	}
	require.NoError(t, us.Create(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := us.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alice", byID.Username)
	require.NotNil(t, byID.Bio)
	assert.Equal(t, bio, *byID.Bio)

	byUsername, err := us.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	assert.Equal(t, user.ID, byUsername.ID)

	count, err := us.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserLookupAbsent(t *testing.T) {
	database := setupTestDB(t)
	us := NewUserService(database)

	user, err := us.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = us.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserDuplicateUsername(t *testing.T) {
	database := setupTestDB(t)
	us := NewUserService(database)
	ctx := context.Background()

	createTestUser(t, database, "bob")

	err := us.Create(ctx, &models.User{
		Username:  "bob",
		Email:     "other@example.com",
		FirstName: "Other",
		LastName:  "Bob",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
}

func TestUserGetAllNewestFirst(t *testing.T) {
	database := setupTestDB(t)
	us := NewUserService(database)
	ctx := context.Background()

	createTestUser(t, database, "first")
	createTestUser(t, database, "second")
	createTestUser(t, database, "third")

	users, err := us.GetAll(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "third", users[0].Username)
	assert.Equal(t, "first", users[2].Username)

	paged, err := us.GetAll(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, paged, 2)
	assert.Equal(t, "third", paged[0].Username)
}

func TestUserStats(t *testing.T) {
	database := setupTestDB(t)
	us := NewUserService(database)
	ps := NewPostService(database)
	fs := NewFollowerService(database)
	ctx := context.Background()

	alice := createTestUser(t, database, "alice")
	bob := createTestUser(t, database, "bob")

	_, err := ps.Create(ctx, alice.ID, "post one")
	require.NoError(t, err)
	_, err = ps.Create(ctx, alice.ID, "post two")
	require.NoError(t, err)
	_, err = fs.Follow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = fs.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	stats, err := us.GetStats(ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(2), stats.PostsCount)
	assert.Equal(t, int64(1), stats.FollowersCount)
	assert.Equal(t, int64(1), stats.FollowingCount)

	missing, err := us.GetStats(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
