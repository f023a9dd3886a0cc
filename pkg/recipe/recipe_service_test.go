package recipe

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type fakeRecipeRepository struct {
	recipes map[string]*entities.Recipe
	clones  map[string]string // userRecipeID -> originalRecipeID
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{
		recipes: map[string]*entities.Recipe{},
		clones:  map[string]string{},
	}
}

func (f *fakeRecipeRepository) SaveRecipe(_ context.Context, recipe *entities.Recipe) error {
	clone := *recipe
	f.recipes[recipe.RecipeID] = &clone
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, recipeID string) (*entities.Recipe, error) {
	recipe, ok := f.recipes[recipeID]
	if !ok {
		return nil, nil
	}
	clone := *recipe
	return &clone, nil
}

func (f *fakeRecipeRepository) GetPublicRecipes(_ context.Context, _, _ int, _ string, _ domain.PublicRecipeFilter) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (f *fakeRecipeRepository) GetLikedRecipes(_ context.Context, _ string, _, _ int, _ string) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (f *fakeRecipeRepository) GetTopPublicRecipes(_ context.Context, _, _ int, _ string) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (f *fakeRecipeRepository) GetUserRecipes(_ context.Context, _ string) ([]*entities.Recipe, error) {
	return nil, nil
}

func (f *fakeRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.Recipe) error {
	clone := *recipe
	f.recipes[recipe.RecipeID] = &clone
	return nil
}

func (f *fakeRecipeRepository) ToggleLike(_ context.Context, recipeID, userID string) (*entities.Recipe, error) {
	recipe, ok := f.recipes[recipeID]
	if !ok {
		return nil, nil
	}
	recipe.Likes = datatypes.NewJSONSlice(append([]string(recipe.Likes), userID))
	clone := *recipe
	return &clone, nil
}

func (f *fakeRecipeRepository) DeleteRecipeWithClones(_ context.Context, recipeID string) (bool, int64, error) {
	var copies int64
	for id, originalID := range f.clones {
		if originalID == recipeID {
			delete(f.clones, id)
			copies++
		}
	}
	if _, ok := f.recipes[recipeID]; !ok {
		return false, copies, nil
	}
	delete(f.recipes, recipeID)
	return true, copies, nil
}

func (f *fakeRecipeRepository) CountRecipes(_ context.Context) (int64, error) {
	return int64(len(f.recipes)), nil
}

func validPayload(id string) domain.RecipePayload {
	return domain.RecipePayload{
		RecipeID:    id,
		GeneratedBy: "author-1",
		RecipeName:  "Gado Gado",
		Ingredients: []domain.IngredientPayload{
			{ID: "i1", Name: "Peanut sauce", Quantity: "100", Unit: "ml"},
		},
		Steps: []domain.InstructionPayload{
			{ID: "s1", Step: "Blanch the vegetables"},
			{ID: "s2", Instruction: "Pour the sauce"},
		},
		ExperienceLevel:      entities.ExperienceNovice,
		EstimatedCookingTime: "30 minutes",
		Description:          "Indonesian salad",
		MealType:             "lunch",
		Cuisine:              "Indonesian",
		CalorieCount:         350,
		Servings:             2,
	}
}

func TestSaveRecipe_NormalizesLegacyStepKey(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)

	saved, err := service.SaveRecipe(context.Background(), validPayload("recipe-1"))
	require.NoError(t, err)

	require.Len(t, saved.Steps, 2)
	assert.Equal(t, "Blanch the vegetables", saved.Steps[0].Instruction)
	assert.Equal(t, "Pour the sauce", saved.Steps[1].Instruction)
	assert.True(t, saved.IsPublic)
	assert.NotNil(t, saved.Likes)
	assert.Empty(t, []string(saved.Likes))
}

func TestSaveRecipe_RespectsExplicitPrivacy(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)

	payload := validPayload("recipe-1")
	private := false
	payload.IsPublic = &private

	saved, err := service.SaveRecipe(context.Background(), payload)
	require.NoError(t, err)
	assert.False(t, saved.IsPublic)
}

func TestUpdateRecipe_PreservesLikesAndNotFound(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)
	ctx := context.Background()

	_, err := service.UpdateRecipe(ctx, "missing", validPayload("missing"))
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	saved, err := service.SaveRecipe(ctx, validPayload("recipe-1"))
	require.NoError(t, err)
	repo.recipes[saved.RecipeID].Likes = datatypes.NewJSONSlice([]string{"user-5"})

	payload := validPayload("recipe-1")
	payload.RecipeName = "Gado Gado Special"

	updated, err := service.UpdateRecipe(ctx, "recipe-1", payload)
	require.NoError(t, err)
	assert.Equal(t, "Gado Gado Special", updated.RecipeName)
	assert.Equal(t, []string{"user-5"}, []string(updated.Likes))
}

func TestDeleteRecipeWithCascade(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo)
	ctx := context.Background()

	_, err := service.SaveRecipe(ctx, validPayload("recipe-1"))
	require.NoError(t, err)
	repo.clones["ur-1"] = "recipe-1"
	repo.clones["ur-2"] = "recipe-1"
	repo.clones["ur-3"] = "recipe-2"

	res, err := service.DeleteRecipeWithCascade(ctx, "recipe-1")
	require.NoError(t, err)
	assert.True(t, res.Deleted)
	assert.Equal(t, int64(2), res.CopiesDeleted)
	assert.Len(t, repo.clones, 1)

	// deleting again is a safe no-op
	res, err = service.DeleteRecipeWithCascade(ctx, "recipe-1")
	require.NoError(t, err)
	assert.False(t, res.Deleted)
	assert.Equal(t, int64(0), res.CopiesDeleted)
}

func TestToggleLike_UnknownRecipe(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository())

	_, err := service.ToggleLike(context.Background(), domain.ToggleLikeRequest{
		RecipeID: "missing",
		UserID:   "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
