package cookbook

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
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
	require.NoError(t, db.AutoMigrate(&entities.UserRecipe{}))
	return db
}

func testUserRecipe(id, userID, originalID string, addedAt time.Time) *entities.UserRecipe {
	return &entities.UserRecipe{
		UserRecipeID:     id,
		UserID:           userID,
		OriginalRecipeID: originalID,
		RecipeName:       "Nasi Goreng",
		Ingredients: datatypes.NewJSONSlice([]entities.UserIngredient{
			{ID: "i1", Name: "Rice", Quantity: "300", Unit: "g"},
		}),
		Steps: datatypes.NewJSONSlice([]entities.UserInstruction{
			{ID: "s1", Instruction: "Fry the rice"},
		}),
		AddedAt: addedAt,
	}
}

func TestInsert_DuplicatePairRejected(t *testing.T) {
	repo := NewCookbookRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testUserRecipe("ur-1", "user-1", "recipe-1", time.Now())))

	err := repo.Insert(ctx, testUserRecipe("ur-2", "user-1", "recipe-1", time.Now()))
	assert.ErrorIs(t, err, domain.ErrAlreadyInCookbook)

	// a different user may clone the same recipe
	require.NoError(t, repo.Insert(ctx, testUserRecipe("ur-3", "user-2", "recipe-1", time.Now())))
	// and the same user may clone a different recipe
	require.NoError(t, repo.Insert(ctx, testUserRecipe("ur-4", "user-1", "recipe-2", time.Now())))
}

func TestListByUser_NewestFirst(t *testing.T) {
	repo := NewCookbookRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Insert(ctx, testUserRecipe("ur-old", "user-1", "recipe-1", base)))
	require.NoError(t, repo.Insert(ctx, testUserRecipe("ur-new", "user-1", "recipe-2", base.Add(time.Hour))))
	require.NoError(t, repo.Insert(ctx, testUserRecipe("ur-other", "user-2", "recipe-1", base)))

	entries, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ur-new", entries[0].UserRecipeID)
	assert.Equal(t, "ur-old", entries[1].UserRecipeID)
}

func TestUpdate_PartialFieldsOnly(t *testing.T) {
	repo := NewCookbookRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testUserRecipe("ur-1", "user-1", "recipe-1", time.Now())))

	updated, err := repo.Update(ctx, "ur-1", map[string]any{
		"steps": datatypes.NewJSONSlice([]entities.UserInstruction{
			{ID: "s1", Instruction: "Fry the rice", IsDone: true},
		}),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.True(t, updated.Steps[0].IsDone)
	// untouched columns survive
	assert.Equal(t, "Nasi Goreng", updated.RecipeName)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, "Rice", updated.Ingredients[0].Name)
}

func TestUpdate_MissingRowReturnsNil(t *testing.T) {
	repo := NewCookbookRepository(newTestDB(t))

	updated, err := repo.Update(context.Background(), "missing", map[string]any{"recipe_name": "x"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestFindByUserAndOriginal(t *testing.T) {
	repo := NewCookbookRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testUserRecipe("ur-1", "user-1", "recipe-1", time.Now())))

	found, err := repo.FindByUserAndOriginal(ctx, "user-1", "recipe-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "ur-1", found.UserRecipeID)

	absent, err := repo.FindByUserAndOriginal(ctx, "user-1", "recipe-9")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestRemove(t *testing.T) {
	repo := NewCookbookRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testUserRecipe("ur-1", "user-1", "recipe-1", time.Now())))

	removed, err := repo.Remove(ctx, "ur-1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, "ur-1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemoveAllByOriginal_CountsClones(t *testing.T) {
	repo := NewCookbookRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testUserRecipe("ur-1", "user-1", "recipe-1", time.Now())))
	require.NoError(t, repo.Insert(ctx, testUserRecipe("ur-2", "user-2", "recipe-1", time.Now())))
	require.NoError(t, repo.Insert(ctx, testUserRecipe("ur-3", "user-3", "recipe-2", time.Now())))

	count, err := repo.RemoveAllByOriginal(ctx, "recipe-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// the unrelated clone is still there
	left, err := repo.FindByID(ctx, "ur-3")
	require.NoError(t, err)
	assert.NotNil(t, left)

	count, err = repo.RemoveAllByOriginal(ctx, "recipe-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
