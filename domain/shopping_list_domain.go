package domain

import (
	"errors"
)

var (
	MessageSuccessAddShoppingItem    = "shopping list item added successfully"
	MessageSuccessGetShoppingItems   = "success get shopping list"
	MessageSuccessUpdateShoppingItem = "shopping list item updated successfully"
	MessageSuccessDeleteShoppingItem = "shopping list item deleted successfully"

	MessageFailedAddShoppingItem    = "failed to add shopping list item"
	MessageFailedGetShoppingItems   = "failed to get shopping list"
	MessageFailedUpdateShoppingItem = "failed to update shopping list item"
	MessageFailedDeleteShoppingItem = "failed to delete shopping list item"

	ErrShoppingItemNotFound = errors.New("shopping list item not found")
)

type (
	AddShoppingItemRequest struct {
		Name         string `json:"name" validate:"required"`
		Quantity     string `json:"quantity" validate:"required"`
		Unit         string `json:"unit" validate:"required"`
		Category     string `json:"category"`
		IngredientID string `json:"ingredientId"`
	}

	UpdateShoppingItemRequest struct {
		Name      *string `json:"name"`
		Quantity  *string `json:"quantity"`
		Unit      *string `json:"unit"`
		Category  *string `json:"category"`
		IsChecked *bool   `json:"isChecked"`
	}
)
