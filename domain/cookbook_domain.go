package domain

import (
	"errors"
)

var (
	MessageSuccessSavePrivateRecipe  = "private recipe saved to cookbook successfully"
	MessageSuccessAddToCookbook      = "recipe added to cookbook successfully"
	MessageSuccessGetCookbook        = "success get cookbook"
	MessageSuccessGetUserRecipe      = "success get user recipe"
	MessageSuccessUpdateProgress     = "recipe progress updated successfully"
	MessageSuccessFullUpdate         = "recipe updated successfully"
	MessageSuccessResetProgress      = "recipe progress reset successfully"
	MessageSuccessRemoveFromCookbook = "recipe removed from cookbook successfully"

	MessageFailedSavePrivateRecipe  = "failed to save private recipe"
	MessageFailedAddToCookbook      = "failed to add recipe to cookbook"
	MessageFailedGetCookbook        = "failed to get cookbook"
	MessageFailedGetUserRecipe      = "failed to get user recipe"
	MessageFailedUpdateProgress     = "failed to update recipe progress"
	MessageFailedFullUpdate         = "failed to update recipe"
	MessageFailedResetProgress      = "failed to reset recipe progress"
	MessageFailedRemoveFromCookbook = "failed to remove recipe from cookbook"

	ErrAlreadyInCookbook  = errors.New("recipe is already in your cookbook")
	ErrUserRecipeNotFound = errors.New("user recipe not found")
)

type (
	AddToCookbookRequest struct {
		UserID   string `json:"userId" validate:"required"`
		RecipeID string `json:"recipeId" validate:"required"`
	}

	// IngredientPayload mirrors entities.UserIngredient on the wire.
	IngredientPayload struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
		ImageURL string `json:"imageUrl"`
		IsReady  bool   `json:"isReady"`
	}

	// InstructionPayload accepts the step text under either "instruction"
	// or the legacy "step" key.
	InstructionPayload struct {
		ID          string `json:"id"`
		Instruction string `json:"instruction"`
		Step        string `json:"step"`
		IsDone      bool   `json:"isDone"`
	}

	KitchenToolPayload struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		ImageURL string `json:"imageUrl"`
		IsReady  bool   `json:"isReady"`
	}

	// UpdateProgressRequest carries the checklist arrays. Anything else a
	// client puts in the body is ignored; progress updates never touch
	// recipe content.
	UpdateProgressRequest struct {
		Ingredients        []IngredientPayload  `json:"ingredients"`
		Steps              []InstructionPayload `json:"steps"`
		InitialPreparation []InstructionPayload `json:"initialPreparation"`
		KitchenTools       []KitchenToolPayload `json:"kitchenTools"`
	}

	// FullUpdateRequest replaces content fields on the user's copy. Nil
	// fields are left untouched.
	FullUpdateRequest struct {
		RecipeName           *string              `json:"recipeName"`
		Ingredients          []IngredientPayload  `json:"ingredients"`
		Steps                []InstructionPayload `json:"steps"`
		InitialPreparation   []InstructionPayload `json:"initialPreparation"`
		KitchenTools         []KitchenToolPayload `json:"kitchenTools"`
		ExperienceLevel      *string              `json:"experienceLevel"`
		EstimatedCookingTime *string              `json:"estimatedCookingTime"`
		Description          *string              `json:"description"`
		MealType             *string              `json:"mealType"`
		Cuisine              *string              `json:"cuisine"`
		CalorieCount         *float64             `json:"calorieCount"`
		Images               []string             `json:"images"`
		Nutrition            *NutritionPayload    `json:"nutrition"`
		Servings             *int                 `json:"servings"`
	}

	InCookbookResponse struct {
		IsInCookbook bool `json:"isInCookbook"`
	}
)

// Text returns the instruction text regardless of which key the client used.
func (p InstructionPayload) Text() string {
	if p.Instruction != "" {
		return p.Instruction
	}
	return p.Step
}
