package user

import (
	"Cookly-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.DeletedUser{}))
	return db
}

func seedUser(t *testing.T, repo UserRepository, uid, email string) {
	t.Helper()
	require.NoError(t, repo.CreateUser(context.Background(), &entities.User{
		UID:          uid,
		FullName:     "Dewi Lestari",
		Email:        email,
		AuthProvider: entities.AuthProviderPassword,
		Role:         "user",
	}))
}

func TestDeleteUser_ArchivesBeforeRemoving(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	seedUser(t, repo, "user-1", "dewi@example.com")

	deleted, err := repo.DeleteUser(ctx, "user-1", "leaving the app")
	require.NoError(t, err)
	assert.True(t, deleted)

	gone, err := repo.GetUserByUID(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	archived, count, err := repo.GetDeletedUsers(ctx, 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, archived, 1)
	assert.Equal(t, "user-1", archived[0].UID)
	assert.Equal(t, "dewi@example.com", archived[0].Email)
	assert.Equal(t, entities.AuthProviderPassword, archived[0].AuthProvider)
	assert.Equal(t, "leaving the app", archived[0].DeletedReason)
	assert.WithinDuration(t, time.Now(), archived[0].DeletedAt, time.Minute)
}

func TestDeleteUser_UnknownUID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	deleted, err := repo.DeleteUser(context.Background(), "ghost", "")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, count, err := repo.GetDeletedUsers(context.Background(), 1, 10, "")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetDeletedUsers_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	seedUser(t, repo, "user-1", "first@example.com")
	seedUser(t, repo, "user-2", "second@example.com")

	_, err := repo.DeleteUser(ctx, "user-1", "")
	require.NoError(t, err)
	// force distinct deleted_at values
	require.NoError(t, db.Model(&entities.DeletedUser{}).
		Where("uid = ?", "user-1").
		Update("deleted_at", time.Now().Add(-time.Hour)).Error)
	_, err = repo.DeleteUser(ctx, "user-2", "")
	require.NoError(t, err)

	archived, count, err := repo.GetDeletedUsers(ctx, 1, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, archived, 2)
	assert.Equal(t, "user-2", archived[0].UID)
	assert.Equal(t, "user-1", archived[1].UID)
}
