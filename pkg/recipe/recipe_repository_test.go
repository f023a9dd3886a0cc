package recipe

import (
	"Cookly-Backend/entities"
	"context"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&entities.Recipe{}, &entities.UserRecipe{}))
	return db
}

func testRecipe(id string) *entities.Recipe {
	return &entities.Recipe{
		RecipeID:    id,
		GeneratedBy: "author-1",
		RecipeName:  "Soto Ayam",
		Steps: datatypes.NewJSONSlice([]entities.Instruction{
			{ID: "s1", Instruction: "Boil the chicken"},
		}),
		Likes:    datatypes.NewJSONSlice([]string{}),
		IsPublic: true,
	}
}

func TestSaveAndGetRecipe(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveRecipe(ctx, testRecipe("recipe-1")))

	got, err := repo.GetRecipeByID(ctx, "recipe-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Soto Ayam", got.RecipeName)
	require.Len(t, got.Steps, 1)
	assert.Equal(t, "Boil the chicken", got.Steps[0].Instruction)

	absent, err := repo.GetRecipeByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestToggleLike_AddsThenRemoves(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveRecipe(ctx, testRecipe("recipe-1")))

	liked, err := repo.ToggleLike(ctx, "recipe-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user-1"}, []string(liked.Likes))

	unliked, err := repo.ToggleLike(ctx, "recipe-1", "user-1")
	require.NoError(t, err)
	assert.Empty(t, []string(unliked.Likes))

	// toggling an absent recipe reports nothing to like
	missing, err := repo.ToggleLike(ctx, "missing", "user-1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteRecipeWithClones_RemovesEveryClone(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveRecipe(ctx, testRecipe("recipe-1")))
	require.NoError(t, repo.SaveRecipe(ctx, testRecipe("recipe-2")))

	clones := []*entities.UserRecipe{
		{UserRecipeID: "ur-1", UserID: "user-1", OriginalRecipeID: "recipe-1"},
		{UserRecipeID: "ur-2", UserID: "user-2", OriginalRecipeID: "recipe-1"},
		{UserRecipeID: "ur-3", UserID: "user-1", OriginalRecipeID: "recipe-2"},
	}
	for _, clone := range clones {
		require.NoError(t, db.Create(clone).Error)
	}

	deleted, copies, err := repo.DeleteRecipeWithClones(ctx, "recipe-1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, int64(2), copies)

	var remaining int64
	require.NoError(t, db.Model(&entities.UserRecipe{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	gone, err := repo.GetRecipeByID(ctx, "recipe-1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeleteRecipeWithClones_RepeatIsNoop(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveRecipe(ctx, testRecipe("recipe-1")))

	deleted, copies, err := repo.DeleteRecipeWithClones(ctx, "recipe-1")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, int64(0), copies)

	deleted, copies, err = repo.DeleteRecipeWithClones(ctx, "recipe-1")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, int64(0), copies)
}

func TestCountRecipes(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	count, err := repo.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.SaveRecipe(ctx, testRecipe("recipe-1")))
	require.NoError(t, repo.SaveRecipe(ctx, testRecipe("recipe-2")))

	count, err = repo.CountRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
