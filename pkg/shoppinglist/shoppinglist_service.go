package shoppinglist

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"context"

	"github.com/google/uuid"
)

type (
	ShoppingListService interface {
		AddItem(ctx context.Context, userID string, req domain.AddShoppingItemRequest) (*entities.ShoppingListItem, error)
		GetItems(ctx context.Context, userID, category string) ([]*entities.ShoppingListItem, error)
		UpdateItem(ctx context.Context, userID, itemID string, req domain.UpdateShoppingItemRequest) (*entities.ShoppingListItem, error)
		DeleteItem(ctx context.Context, userID, itemID string) error
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository) ShoppingListService {
	return &shoppingListService{shoppingListRepository: shoppingListRepository}
}

func (s *shoppingListService) AddItem(ctx context.Context, userID string, req domain.AddShoppingItemRequest) (*entities.ShoppingListItem, error) {
	item := &entities.ShoppingListItem{
		ItemID:       uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Category:     req.Category,
		IngredientID: req.IngredientID,
	}
	if item.Category == "" {
		item.Category = "none"
	}

	if err := s.shoppingListRepository.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *shoppingListService) GetItems(ctx context.Context, userID, category string) ([]*entities.ShoppingListItem, error) {
	return s.shoppingListRepository.FindByUser(ctx, userID, category)
}

func (s *shoppingListService) UpdateItem(ctx context.Context, userID, itemID string, req domain.UpdateShoppingItemRequest) (*entities.ShoppingListItem, error) {
	existing, err := s.shoppingListRepository.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.UserID != userID {
		return nil, domain.ErrShoppingItemNotFound
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.IsChecked != nil {
		fields["is_checked"] = *req.IsChecked
	}
	if len(fields) == 0 {
		return existing, nil
	}

	updated, err := s.shoppingListRepository.UpdateItem(ctx, itemID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrShoppingItemNotFound
	}
	return updated, nil
}

func (s *shoppingListService) DeleteItem(ctx context.Context, userID, itemID string) error {
	existing, err := s.shoppingListRepository.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if existing == nil || existing.UserID != userID {
		return domain.ErrShoppingItemNotFound
	}
	return s.shoppingListRepository.DeleteItem(ctx, itemID)
}
