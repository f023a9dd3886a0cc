package cookbook

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type (
	// RecipeStore is the slice of the recipe repository the cookbook needs:
	// a single read at clone time. It returns nil when the recipe is absent.
	RecipeStore interface {
		GetRecipeByID(ctx context.Context, recipeID string) (*entities.Recipe, error)
	}

	CookbookService interface {
		SavePrivateRecipe(ctx context.Context, req domain.SavePrivateRecipeRequest) (*entities.UserRecipe, error)
		AddToCookbook(ctx context.Context, req domain.AddToCookbookRequest) (*entities.UserRecipe, error)
		GetUserCookbook(ctx context.Context, userID string) ([]*entities.UserRecipe, error)
		GetUserRecipe(ctx context.Context, userRecipeID string) (*entities.UserRecipe, error)
		GetUserRecipeByOriginal(ctx context.Context, userID, originalRecipeID string) (*entities.UserRecipe, error)
		IsRecipeInCookbook(ctx context.Context, userID, originalRecipeID string) (bool, error)
		UpdateProgress(ctx context.Context, userRecipeID string, req domain.UpdateProgressRequest) (*entities.UserRecipe, error)
		FullUpdate(ctx context.Context, userRecipeID string, req domain.FullUpdateRequest) (*entities.UserRecipe, error)
		ResetProgress(ctx context.Context, userRecipeID string) (*entities.UserRecipe, error)
		RemoveFromCookbook(ctx context.Context, userRecipeID string) (bool, error)
	}

	cookbookService struct {
		cookbookRepository CookbookRepository
		recipeStore        RecipeStore
	}
)

func NewCookbookService(cookbookRepository CookbookRepository, recipeStore RecipeStore) CookbookService {
	return &cookbookService{
		cookbookRepository: cookbookRepository,
		recipeStore:        recipeStore,
	}
}

// SavePrivateRecipe stores freshly generated recipe content straight into the
// user's cookbook. The recipe never touches the shared recipe store; its
// originalRecipeId keeps pointing at the caller-supplied id and the owner is
// recorded as its creator.
func (s *cookbookService) SavePrivateRecipe(ctx context.Context, req domain.SavePrivateRecipeRequest) (*entities.UserRecipe, error) {
	userRecipe := &entities.UserRecipe{
		UserRecipeID:         uuid.NewString(),
		UserID:               req.UserID,
		OriginalRecipeID:     req.RecipeID,
		OriginalGeneratedBy:  req.UserID,
		RecipeName:           req.RecipeName,
		Ingredients:          ingredientsFromPayload(req.Ingredients, true),
		Steps:                instructionsFromPayload(req.Steps, true),
		InitialPreparation:   instructionsFromPayload(req.InitialPreparation, true),
		KitchenTools:         toolsFromPayload(req.KitchenTools, true),
		ExperienceLevel:      req.ExperienceLevel,
		EstimatedCookingTime: req.EstimatedCookingTime,
		Description:          req.Description,
		MealType:             req.MealType,
		Cuisine:              req.Cuisine,
		CalorieCount:         req.CalorieCount,
		Images:               datatypes.NewJSONSlice(req.Images),
		Nutrition:            nutritionFromPayload(req.Nutrition),
		Servings:             req.Servings,
		AddedAt:              time.Now(),
	}

	if err := s.cookbookRepository.Insert(ctx, userRecipe); err != nil {
		return nil, err
	}
	return userRecipe, nil
}

// AddToCookbook clones a shared recipe into the caller's cookbook with every
// progress flag cleared. The existence pre-check only produces the friendly
// conflict error; the unique index settles races between concurrent adds.
func (s *cookbookService) AddToCookbook(ctx context.Context, req domain.AddToCookbookRequest) (*entities.UserRecipe, error) {
	existing, err := s.cookbookRepository.FindByUserAndOriginal(ctx, req.UserID, req.RecipeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyInCookbook
	}

	original, err := s.recipeStore.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrRecipeNotFound
	}

	userRecipe := &entities.UserRecipe{
		UserRecipeID:         uuid.NewString(),
		UserID:               req.UserID,
		OriginalRecipeID:     req.RecipeID,
		OriginalGeneratedBy:  original.GeneratedBy,
		RecipeName:           original.RecipeName,
		Ingredients:          cloneIngredients(original.Ingredients),
		Steps:                cloneInstructions(original.Steps),
		InitialPreparation:   cloneInstructions(original.InitialPreparation),
		KitchenTools:         cloneTools(original.KitchenTools),
		ExperienceLevel:      original.ExperienceLevel,
		EstimatedCookingTime: original.EstimatedCookingTime,
		Description:          original.Description,
		MealType:             original.MealType,
		Cuisine:              original.Cuisine,
		CalorieCount:         original.CalorieCount,
		Images:               datatypes.NewJSONSlice([]string(original.Images)),
		Nutrition:            cloneNutrition(original.Nutrition),
		Servings:             original.Servings,
		AddedAt:              time.Now(),
	}

	if err := s.cookbookRepository.Insert(ctx, userRecipe); err != nil {
		return nil, err
	}
	return userRecipe, nil
}

func (s *cookbookService) GetUserCookbook(ctx context.Context, userID string) ([]*entities.UserRecipe, error) {
	return s.cookbookRepository.ListByUser(ctx, userID)
}

func (s *cookbookService) GetUserRecipe(ctx context.Context, userRecipeID string) (*entities.UserRecipe, error) {
	return s.cookbookRepository.FindByID(ctx, userRecipeID)
}

func (s *cookbookService) GetUserRecipeByOriginal(ctx context.Context, userID, originalRecipeID string) (*entities.UserRecipe, error) {
	return s.cookbookRepository.FindByUserAndOriginal(ctx, userID, originalRecipeID)
}

func (s *cookbookService) IsRecipeInCookbook(ctx context.Context, userID, originalRecipeID string) (bool, error) {
	userRecipe, err := s.cookbookRepository.FindByUserAndOriginal(ctx, userID, originalRecipeID)
	if err != nil {
		return false, err
	}
	return userRecipe != nil, nil
}

// UpdateProgress replaces the checklist arrays on a cookbook entry. Only the
// four checklist fields are writable here; recipe content sent alongside
// them is dropped.
func (s *cookbookService) UpdateProgress(ctx context.Context, userRecipeID string, req domain.UpdateProgressRequest) (*entities.UserRecipe, error) {
	existing, err := s.cookbookRepository.FindByID(ctx, userRecipeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrUserRecipeNotFound
	}

	fields := map[string]any{}
	if req.Ingredients != nil {
		fields["ingredients"] = ingredientsFromPayload(req.Ingredients, false)
	}
	if req.Steps != nil {
		fields["steps"] = instructionsFromPayload(req.Steps, false)
	}
	if req.InitialPreparation != nil {
		fields["initial_preparation"] = instructionsFromPayload(req.InitialPreparation, false)
	}
	if req.KitchenTools != nil {
		fields["kitchen_tools"] = toolsFromPayload(req.KitchenTools, false)
	}
	if len(fields) == 0 {
		return existing, nil
	}

	updated, err := s.cookbookRepository.Update(ctx, userRecipeID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrUserRecipeNotFound
	}
	return updated, nil
}

// FullUpdate edits the content of the user's copy. The copy stays fully
// independent of the canonical recipe; no reconciliation is attempted even
// if the original changed since the clone.
func (s *cookbookService) FullUpdate(ctx context.Context, userRecipeID string, req domain.FullUpdateRequest) (*entities.UserRecipe, error) {
	existing, err := s.cookbookRepository.FindByID(ctx, userRecipeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrUserRecipeNotFound
	}

	fields := map[string]any{}
	if req.RecipeName != nil {
		fields["recipe_name"] = *req.RecipeName
	}
	if req.Ingredients != nil {
		fields["ingredients"] = ingredientsFromPayload(req.Ingredients, false)
	}
	if req.Steps != nil {
		fields["steps"] = instructionsFromPayload(req.Steps, false)
	}
	if req.InitialPreparation != nil {
		fields["initial_preparation"] = instructionsFromPayload(req.InitialPreparation, false)
	}
	if req.KitchenTools != nil {
		fields["kitchen_tools"] = toolsFromPayload(req.KitchenTools, false)
	}
	if req.ExperienceLevel != nil {
		fields["experience_level"] = *req.ExperienceLevel
	}
	if req.EstimatedCookingTime != nil {
		fields["estimated_cooking_time"] = *req.EstimatedCookingTime
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.MealType != nil {
		fields["meal_type"] = *req.MealType
	}
	if req.Cuisine != nil {
		fields["cuisine"] = *req.Cuisine
	}
	if req.CalorieCount != nil {
		fields["calorie_count"] = *req.CalorieCount
	}
	if req.Images != nil {
		fields["images"] = datatypes.NewJSONSlice(req.Images)
	}
	if req.Nutrition != nil {
		raw, err := json.Marshal(nutritionFromPayload(req.Nutrition))
		if err != nil {
			return nil, err
		}
		fields["nutrition"] = datatypes.JSON(raw)
	}
	if req.Servings != nil {
		fields["servings"] = *req.Servings
	}
	if len(fields) == 0 {
		return existing, nil
	}

	updated, err := s.cookbookRepository.Update(ctx, userRecipeID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrUserRecipeNotFound
	}
	return updated, nil
}

// ResetProgress clears every readiness and done flag while leaving content
// untouched. It works purely from the stored copy; the canonical recipe may
// have changed or been deleted by now and must not be consulted.
func (s *cookbookService) ResetProgress(ctx context.Context, userRecipeID string) (*entities.UserRecipe, error) {
	existing, err := s.cookbookRepository.FindByID(ctx, userRecipeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrUserRecipeNotFound
	}

	fields := map[string]any{
		"ingredients":         clearIngredients(existing.Ingredients),
		"steps":               clearInstructions(existing.Steps),
		"initial_preparation": clearInstructions(existing.InitialPreparation),
		"kitchen_tools":       clearTools(existing.KitchenTools),
	}

	updated, err := s.cookbookRepository.Update(ctx, userRecipeID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrUserRecipeNotFound
	}
	return updated, nil
}

func (s *cookbookService) RemoveFromCookbook(ctx context.Context, userRecipeID string) (bool, error) {
	return s.cookbookRepository.Remove(ctx, userRecipeID)
}

// transform helpers

func cloneIngredients(src []entities.Ingredient) datatypes.JSONSlice[entities.UserIngredient] {
	out := make([]entities.UserIngredient, 0, len(src))
	for _, ing := range src {
		out = append(out, entities.UserIngredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			ImageURL: ing.ImageURL,
			IsReady:  false,
		})
	}
	return datatypes.NewJSONSlice(out)
}

// cloneInstructions copies step content into a fresh checklist. The text is
// normalized from either the "instruction" or legacy "step" key, and the
// done flag always starts false no matter what the source carried.
func cloneInstructions(src []entities.Instruction) datatypes.JSONSlice[entities.UserInstruction] {
	out := make([]entities.UserInstruction, 0, len(src))
	for _, step := range src {
		out = append(out, entities.UserInstruction{
			ID:          step.ID,
			Instruction: step.Text(),
			IsDone:      false,
		})
	}
	return datatypes.NewJSONSlice(out)
}

func cloneTools(src []entities.KitchenTool) datatypes.JSONSlice[entities.UserKitchenTool] {
	out := make([]entities.UserKitchenTool, 0, len(src))
	for _, tool := range src {
		out = append(out, entities.UserKitchenTool{
			ID:       tool.ID,
			Name:     tool.Name,
			ImageURL: tool.ImageURL,
			IsReady:  false,
		})
	}
	return datatypes.NewJSONSlice(out)
}

func cloneNutrition(src *entities.Nutrition) *entities.Nutrition {
	if src == nil {
		return nil
	}
	n := *src
	return &n
}

func ingredientsFromPayload(src []domain.IngredientPayload, resetFlags bool) datatypes.JSONSlice[entities.UserIngredient] {
	out := make([]entities.UserIngredient, 0, len(src))
	for _, ing := range src {
		out = append(out, entities.UserIngredient{
			ID:       ing.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			ImageURL: ing.ImageURL,
			IsReady:  !resetFlags && ing.IsReady,
		})
	}
	return datatypes.NewJSONSlice(out)
}

func instructionsFromPayload(src []domain.InstructionPayload, resetFlags bool) datatypes.JSONSlice[entities.UserInstruction] {
	out := make([]entities.UserInstruction, 0, len(src))
	for _, step := range src {
		out = append(out, entities.UserInstruction{
			ID:          step.ID,
			Instruction: step.Text(),
			IsDone:      !resetFlags && step.IsDone,
		})
	}
	return datatypes.NewJSONSlice(out)
}

func toolsFromPayload(src []domain.KitchenToolPayload, resetFlags bool) datatypes.JSONSlice[entities.UserKitchenTool] {
	out := make([]entities.UserKitchenTool, 0, len(src))
	for _, tool := range src {
		out = append(out, entities.UserKitchenTool{
			ID:       tool.ID,
			Name:     tool.Name,
			ImageURL: tool.ImageURL,
			IsReady:  !resetFlags && tool.IsReady,
		})
	}
	return datatypes.NewJSONSlice(out)
}

func nutritionFromPayload(src *domain.NutritionPayload) *entities.Nutrition {
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

func clearIngredients(src []entities.UserIngredient) datatypes.JSONSlice[entities.UserIngredient] {
	out := make([]entities.UserIngredient, 0, len(src))
	for _, ing := range src {
		ing.IsReady = false
		out = append(out, ing)
	}
	return datatypes.NewJSONSlice(out)
}

func clearInstructions(src []entities.UserInstruction) datatypes.JSONSlice[entities.UserInstruction] {
	out := make([]entities.UserInstruction, 0, len(src))
	for _, step := range src {
		step.IsDone = false
		out = append(out, step)
	}
	return datatypes.NewJSONSlice(out)
}

func clearTools(src []entities.UserKitchenTool) datatypes.JSONSlice[entities.UserKitchenTool] {
	out := make([]entities.UserKitchenTool, 0, len(src))
	for _, tool := range src {
		tool.IsReady = false
		out = append(out, tool)
	}
	return datatypes.NewJSONSlice(out)
}
