package recipe

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"context"

	"gorm.io/datatypes"
)

type (
	RecipeService interface {
		SaveRecipe(ctx context.Context, req domain.RecipePayload) (*entities.Recipe, error)
		GetRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error)
		GetPublicRecipes(ctx context.Context, page, limit int, search string, filter domain.PublicRecipeFilter) ([]*entities.Recipe, int64, error)
		GetLikedRecipes(ctx context.Context, userID string, page, limit int, search string) ([]*entities.Recipe, int64, error)
		GetTopRecipes(ctx context.Context, page, limit int, search string) ([]*entities.Recipe, int64, error)
		GetCurrentUserRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipePayload) (*entities.Recipe, error)
		ToggleLike(ctx context.Context, req domain.ToggleLikeRequest) (*entities.Recipe, error)
		DeleteRecipeWithCascade(ctx context.Context, recipeID string) (domain.CascadeDeleteResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) SaveRecipe(ctx context.Context, req domain.RecipePayload) (*entities.Recipe, error) {
	recipe := recipeFromPayload(req)
	if err := s.recipeRepository.SaveRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	return s.recipeRepository.GetRecipeByID(ctx, recipeID)
}

func (s *recipeService) GetPublicRecipes(ctx context.Context, page, limit int, search string, filter domain.PublicRecipeFilter) ([]*entities.Recipe, int64, error) {
	return s.recipeRepository.GetPublicRecipes(ctx, page, limit, search, filter)
}

func (s *recipeService) GetLikedRecipes(ctx context.Context, userID string, page, limit int, search string) ([]*entities.Recipe, int64, error) {
	return s.recipeRepository.GetLikedRecipes(ctx, userID, page, limit, search)
}

func (s *recipeService) GetTopRecipes(ctx context.Context, page, limit int, search string) ([]*entities.Recipe, int64, error) {
	return s.recipeRepository.GetTopPublicRecipes(ctx, page, limit, search)
}

func (s *recipeService) GetCurrentUserRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetUserRecipes(ctx, userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipePayload) (*entities.Recipe, error) {
	existing, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrRecipeNotFound
	}

	req.RecipeID = recipeID
	updated := recipeFromPayload(req)
	updated.Likes = existing.Likes
	updated.CreatedAt = existing.CreatedAt
	if req.GeneratedBy == "" {
		updated.GeneratedBy = existing.GeneratedBy
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *recipeService) ToggleLike(ctx context.Context, req domain.ToggleLikeRequest) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.ToggleLike(ctx, req.RecipeID, req.UserID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

// DeleteRecipeWithCascade removes a canonical recipe together with every
// cookbook clone made from it. Clone removal and the recipe delete run in
// the same transaction at the repository level.
func (s *recipeService) DeleteRecipeWithCascade(ctx context.Context, recipeID string) (domain.CascadeDeleteResponse, error) {
	deleted, copies, err := s.recipeRepository.DeleteRecipeWithClones(ctx, recipeID)
	if err != nil {
		return domain.CascadeDeleteResponse{}, err
	}
	return domain.CascadeDeleteResponse{Deleted: deleted, CopiesDeleted: copies}, nil
}

// recipeFromPayload normalizes the wire payload into the stored shape; step
// text arriving under the legacy "step" key lands in the instruction field.
func recipeFromPayload(req domain.RecipePayload) *entities.Recipe {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	return &entities.Recipe{
		RecipeID:             req.RecipeID,
		GeneratedBy:          req.GeneratedBy,
		RecipeName:           req.RecipeName,
		Ingredients:          ingredientEntities(req.Ingredients),
		Steps:                instructionEntities(req.Steps),
		InitialPreparation:   instructionEntities(req.InitialPreparation),
		KitchenTools:         toolEntities(req.KitchenTools),
		ExperienceLevel:      req.ExperienceLevel,
		EstimatedCookingTime: req.EstimatedCookingTime,
		Description:          req.Description,
		MealType:             req.MealType,
		Cuisine:              req.Cuisine,
		CalorieCount:         req.CalorieCount,
		Images:               datatypes.NewJSONSlice(req.Images),
		Nutrition:            nutritionEntity(req.Nutrition),
		Servings:             req.Servings,
		Likes:                datatypes.NewJSONSlice([]string{}),
		IsPublic:             isPublic,
	}
}

func ingredientEntities(src []domain.IngredientPayload) datatypes.JSONSlice[entities.Ingredient] {
	out := make([]entities.Ingredient, 0, len(src))
	for _, ing := range src {
		out = append(out, entities.Ingredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			ImageURL: ing.ImageURL,
		})
	}
	return datatypes.NewJSONSlice(out)
}

func instructionEntities(src []domain.InstructionPayload) datatypes.JSONSlice[entities.Instruction] {
	out := make([]entities.Instruction, 0, len(src))
	for _, step := range src {
		out = append(out, entities.Instruction{
			ID:          step.ID,
			Instruction: step.Text(),
		})
	}
	return datatypes.NewJSONSlice(out)
}

func toolEntities(src []domain.KitchenToolPayload) datatypes.JSONSlice[entities.KitchenTool] {
	out := make([]entities.KitchenTool, 0, len(src))
	for _, tool := range src {
		out = append(out, entities.KitchenTool{
			ID:       tool.ID,
			Name:     tool.Name,
			ImageURL: tool.ImageURL,
		})
	}
	return datatypes.NewJSONSlice(out)
}

func nutritionEntity(src *domain.NutritionPayload) *entities.Nutrition {
	if src == nil {
		return nil
	}
	return &entities.Nutrition{
		Protein: src.Protein,
		Carbs:   src.Carbs,
		Fat:     src.Fat,
		Fiber:   src.Fiber,
	}
}
