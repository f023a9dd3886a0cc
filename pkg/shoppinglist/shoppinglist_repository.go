package shoppinglist

import (
	"Cookly-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		CreateItem(ctx context.Context, item *entities.ShoppingListItem) error
		FindByID(ctx context.Context, itemID string) (*entities.ShoppingListItem, error)
		FindByUser(ctx context.Context, userID, category string) ([]*entities.ShoppingListItem, error)
		UpdateItem(ctx context.Context, itemID string, fields map[string]any) (*entities.ShoppingListItem, error)
		DeleteItem(ctx context.Context, itemID string) error
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) CreateItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *shoppingListRepository) FindByID(ctx context.Context, itemID string) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *shoppingListRepository) FindByUser(ctx context.Context, userID, category string) ([]*entities.ShoppingListItem, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var items []*entities.ShoppingListItem
	if err := query.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingListRepository) UpdateItem(ctx context.Context, itemID string, fields map[string]any) (*entities.ShoppingListItem, error) {
	tx := r.db.WithContext(ctx).
		Model(&entities.ShoppingListItem{}).
		Where("item_id = ?", itemID).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, itemID)
}

func (r *shoppingListRepository) DeleteItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Delete(&entities.ShoppingListItem{}).Error
}
