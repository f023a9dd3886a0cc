package entities

import (
	"gorm.io/datatypes"
)

const (
	ExperienceNovice       = "novice"
	ExperienceIntermediate = "intermediate"
	ExperienceExpert       = "expert"
)

type Ingredient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Instruction is one step of a recipe. Older clients sent the text under
// "step" instead of "instruction"; the legacy field is kept so stored rows
// and inbound payloads written by those clients still resolve.
type Instruction struct {
	ID          string `json:"id"`
	Instruction string `json:"instruction"`
	Step        string `json:"step,omitempty"`
	IsDone      bool   `json:"isDone"`
}

// Text returns the step text regardless of which key it arrived under.
func (i Instruction) Text() string {
	if i.Instruction != "" {
		return i.Instruction
	}
	return i.Step
}

type KitchenTool struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type Nutrition struct {
	Protein float64 `json:"protein,omitempty"`
	Carbs   float64 `json:"carbs,omitempty"`
	Fat     float64 `json:"fat,omitempty"`
	Fiber   float64 `json:"fiber,omitempty"`
}

// Recipe is the canonical, shared recipe record. RecipeID is assigned by the
// generation flow on the client side, not by the database.
type Recipe struct {
	RecipeID             string                            `gorm:"primary_key" json:"recipeId"`
	GeneratedBy          string                            `gorm:"index" json:"generatedBy"`
	RecipeName           string                            `json:"recipeName"`
	Ingredients          datatypes.JSONSlice[Ingredient]   `gorm:"type:jsonb" json:"ingredients"`
	Steps                datatypes.JSONSlice[Instruction]  `gorm:"type:jsonb" json:"steps"`
	InitialPreparation   datatypes.JSONSlice[Instruction]  `gorm:"type:jsonb" json:"initialPreparation"`
	KitchenTools         datatypes.JSONSlice[KitchenTool]  `gorm:"type:jsonb" json:"kitchenTools"`
	ExperienceLevel      string                            `json:"experienceLevel"`
	EstimatedCookingTime string                            `json:"estimatedCookingTime"`
	Description          string                            `gorm:"type:text" json:"description"`
	MealType             string                            `json:"mealType"`
	Cuisine              string                            `json:"cuisine"`
	CalorieCount         float64                           `json:"calorieCount"`
	Images               datatypes.JSONSlice[string]       `gorm:"type:jsonb" json:"images"`
	Nutrition            *Nutrition                        `gorm:"type:jsonb;serializer:json" json:"nutrition,omitempty"`
	Servings             int                               `json:"servings"`
	Likes                datatypes.JSONSlice[string]       `gorm:"type:jsonb" json:"likes"`
	IsPublic             bool                              `gorm:"index" json:"isPublic"`

	Timestamp
}
