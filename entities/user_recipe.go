package entities

import (
	"time"

	"gorm.io/datatypes"
)

// UserIngredient is an ingredient inside a cookbook entry, carrying the
// owner's personal readiness flag.
type UserIngredient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	IsReady  bool   `json:"isReady"`
}

type UserInstruction struct {
	ID          string `json:"id"`
	Instruction string `json:"instruction"`
	IsDone      bool   `json:"isDone"`
}

type UserKitchenTool struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
	IsReady  bool   `json:"isReady"`
}

// UserRecipe is a user-owned clone of a recipe. The content fields are
// copied at clone time and evolve independently of the canonical recipe;
// progress flags belong to this copy alone. A user holds at most one clone
// per original recipe, enforced by the compound unique index.
type UserRecipe struct {
	UserRecipeID         string                               `gorm:"primary_key" json:"userRecipeId"`
	UserID               string                               `gorm:"index;uniqueIndex:idx_user_recipes_user_original" json:"userId"`
	OriginalRecipeID     string                               `gorm:"index;uniqueIndex:idx_user_recipes_user_original" json:"originalRecipeId"`
	OriginalGeneratedBy  string                               `json:"originalGeneratedBy"`
	RecipeName           string                               `json:"recipeName"`
	Ingredients          datatypes.JSONSlice[UserIngredient]  `gorm:"type:jsonb" json:"ingredients"`
	Steps                datatypes.JSONSlice[UserInstruction] `gorm:"type:jsonb" json:"steps"`
	InitialPreparation   datatypes.JSONSlice[UserInstruction] `gorm:"type:jsonb" json:"initialPreparation"`
	KitchenTools         datatypes.JSONSlice[UserKitchenTool] `gorm:"type:jsonb" json:"kitchenTools"`
	ExperienceLevel      string                               `json:"experienceLevel"`
	EstimatedCookingTime string                               `json:"estimatedCookingTime"`
	Description          string                               `gorm:"type:text" json:"description"`
	MealType             string                               `json:"mealType"`
	Cuisine              string                               `json:"cuisine"`
	CalorieCount         float64                              `json:"calorieCount"`
	Images               datatypes.JSONSlice[string]          `gorm:"type:jsonb" json:"images"`
	Nutrition            *Nutrition                           `gorm:"type:jsonb;serializer:json" json:"nutrition,omitempty"`
	Servings             int                                  `json:"servings"`
	AddedAt              time.Time                            `gorm:"type:timestamp;index" json:"addedAt"`

	Timestamp
}
