package entities

type ShoppingListItem struct {
	ItemID       string `gorm:"primary_key" json:"itemId"`
	UserID       string `gorm:"index" json:"userId"`
	Name         string `json:"name"`
	Quantity     string `json:"quantity"`
	Unit         string `json:"unit"`
	Category     string `gorm:"default:none" json:"category"`
	IsChecked    bool   `json:"isChecked"`
	IngredientID string `json:"ingredientId,omitempty"`

	Timestamp
}
