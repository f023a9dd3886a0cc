package shoppinglist

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShoppingListRepository struct {
	items map[string]*entities.ShoppingListItem
}

func newFakeShoppingListRepository() *fakeShoppingListRepository {
	return &fakeShoppingListRepository{items: map[string]*entities.ShoppingListItem{}}
}

func (f *fakeShoppingListRepository) CreateItem(_ context.Context, item *entities.ShoppingListItem) error {
	clone := *item
	f.items[item.ItemID] = &clone
	return nil
}

func (f *fakeShoppingListRepository) FindByID(_ context.Context, itemID string) (*entities.ShoppingListItem, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	clone := *item
	return &clone, nil
}

func (f *fakeShoppingListRepository) FindByUser(_ context.Context, userID, category string) ([]*entities.ShoppingListItem, error) {
	var out []*entities.ShoppingListItem
	for _, item := range f.items {
		if item.UserID != userID {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		clone := *item
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeShoppingListRepository) UpdateItem(_ context.Context, itemID string, fields map[string]any) (*entities.ShoppingListItem, error) {
	item, ok := f.items[itemID]
	if !ok {
		return nil, nil
	}
	for column, value := range fields {
		switch column {
		case "name":
			item.Name = value.(string)
		case "quantity":
			item.Quantity = value.(string)
		case "unit":
			item.Unit = value.(string)
		case "category":
			item.Category = value.(string)
		case "is_checked":
			item.IsChecked = value.(bool)
		}
	}
	clone := *item
	return &clone, nil
}

func (f *fakeShoppingListRepository) DeleteItem(_ context.Context, itemID string) error {
	delete(f.items, itemID)
	return nil
}

func addItem(t *testing.T, service ShoppingListService, userID, name, category string) *entities.ShoppingListItem {
	t.Helper()
	item, err := service.AddItem(context.Background(), userID, domain.AddShoppingItemRequest{
		Name:     name,
		Quantity: "1",
		Unit:     "pc",
		Category: category,
	})
	require.NoError(t, err)
	return item
}

func TestAddItem_DefaultsCategory(t *testing.T) {
	service := NewShoppingListService(newFakeShoppingListRepository())

	item := addItem(t, service, "user-1", "Garlic", "")
	assert.NotEmpty(t, item.ItemID)
	assert.Equal(t, "none", item.Category)
	assert.False(t, item.IsChecked)
}

func TestGetItems_FiltersByCategory(t *testing.T) {
	service := NewShoppingListService(newFakeShoppingListRepository())

	addItem(t, service, "user-1", "Garlic", "produce")
	addItem(t, service, "user-1", "Milk", "dairy")
	addItem(t, service, "user-2", "Onion", "produce")

	all, err := service.GetItems(context.Background(), "user-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	produce, err := service.GetItems(context.Background(), "user-1", "produce")
	require.NoError(t, err)
	require.Len(t, produce, 1)
	assert.Equal(t, "Garlic", produce[0].Name)
}

func TestUpdateItem_OwnershipEnforced(t *testing.T) {
	service := NewShoppingListService(newFakeShoppingListRepository())
	item := addItem(t, service, "user-1", "Garlic", "produce")

	checked := true
	_, err := service.UpdateItem(context.Background(), "user-2", item.ItemID, domain.UpdateShoppingItemRequest{
		IsChecked: &checked,
	})
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)

	updated, err := service.UpdateItem(context.Background(), "user-1", item.ItemID, domain.UpdateShoppingItemRequest{
		IsChecked: &checked,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsChecked)
	assert.Equal(t, "Garlic", updated.Name)
}

func TestUpdateItem_EmptyRequestReturnsExisting(t *testing.T) {
	service := NewShoppingListService(newFakeShoppingListRepository())
	item := addItem(t, service, "user-1", "Garlic", "produce")

	got, err := service.UpdateItem(context.Background(), "user-1", item.ItemID, domain.UpdateShoppingItemRequest{})
	require.NoError(t, err)
	assert.Equal(t, item.ItemID, got.ItemID)
}

func TestDeleteItem_OwnershipEnforced(t *testing.T) {
	repo := newFakeShoppingListRepository()
	service := NewShoppingListService(repo)
	item := addItem(t, service, "user-1", "Garlic", "produce")

	err := service.DeleteItem(context.Background(), "user-2", item.ItemID)
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
	assert.Len(t, repo.items, 1)

	require.NoError(t, service.DeleteItem(context.Background(), "user-1", item.ItemID))
	assert.Empty(t, repo.items)

	err = service.DeleteItem(context.Background(), "user-1", item.ItemID)
	assert.ErrorIs(t, err, domain.ErrShoppingItemNotFound)
}
