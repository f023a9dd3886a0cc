package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessToggleLike      = "recipe like toggled successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedToggleLike      = "failed to toggle recipe like"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	NutritionPayload struct {
		Protein float64 `json:"protein"`
		Carbs   float64 `json:"carbs"`
		Fat     float64 `json:"fat"`
		Fiber   float64 `json:"fiber"`
	}

	// RecipePayload is the full recipe body sent by the generation flow.
	// Step text may arrive under "instruction" or the legacy "step" key.
	RecipePayload struct {
		RecipeID             string               `json:"recipeId" validate:"required"`
		GeneratedBy          string               `json:"generatedBy"`
		RecipeName           string               `json:"recipeName" validate:"required"`
		Ingredients          []IngredientPayload  `json:"ingredients" validate:"required,min=1"`
		Steps                []InstructionPayload `json:"steps" validate:"required,min=1"`
		InitialPreparation   []InstructionPayload `json:"initialPreparation"`
		KitchenTools         []KitchenToolPayload `json:"kitchenTools"`
		ExperienceLevel      string               `json:"experienceLevel" validate:"required,oneof=novice intermediate expert"`
		EstimatedCookingTime string               `json:"estimatedCookingTime" validate:"required"`
		Description          string               `json:"description" validate:"required"`
		MealType             string               `json:"mealType" validate:"required"`
		Cuisine              string               `json:"cuisine" validate:"required"`
		CalorieCount         float64              `json:"calorieCount" validate:"gt=0"`
		Images               []string             `json:"images"`
		Nutrition            *NutritionPayload    `json:"nutrition"`
		Servings             int                  `json:"servings" validate:"gt=0"`
		IsPublic             *bool                `json:"isPublic"`
	}

	SavePrivateRecipeRequest struct {
		UserID string `json:"userId" validate:"required"`
		RecipePayload
	}

	PublicRecipeFilter struct {
		ExperienceLevel string
		MealType        string
		MinCalorie      *float64
		MaxCalorie      *float64
	}

	ToggleLikeRequest struct {
		RecipeID string `json:"recipeId" validate:"required"`
		UserID   string `json:"userId" validate:"required"`
	}

	// CascadeDeleteResponse reports a recipe deletion together with the
	// number of cookbook clones removed with it.
	CascadeDeleteResponse struct {
		Deleted       bool  `json:"deleted"`
		CopiesDeleted int64 `json:"copiesDeleted"`
	}
)
