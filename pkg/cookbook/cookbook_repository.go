package cookbook

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	// CookbookRepository persists user-owned recipe clones. The compound
	// unique index on (user_id, original_recipe_id) is the authoritative
	// guard against duplicate clones; Insert surfaces a violation as
	// domain.ErrAlreadyInCookbook.
	CookbookRepository interface {
		Insert(ctx context.Context, userRecipe *entities.UserRecipe) error
		FindByID(ctx context.Context, userRecipeID string) (*entities.UserRecipe, error)
		FindByUserAndOriginal(ctx context.Context, userID, originalRecipeID string) (*entities.UserRecipe, error)
		ListByUser(ctx context.Context, userID string) ([]*entities.UserRecipe, error)
		Update(ctx context.Context, userRecipeID string, fields map[string]any) (*entities.UserRecipe, error)
		Remove(ctx context.Context, userRecipeID string) (bool, error)
		RemoveAllByOriginal(ctx context.Context, originalRecipeID string) (int64, error)
	}

	cookbookRepository struct {
		db *gorm.DB
	}
)

func NewCookbookRepository(db *gorm.DB) CookbookRepository {
	return &cookbookRepository{db: db}
}

func (r *cookbookRepository) Insert(ctx context.Context, userRecipe *entities.UserRecipe) error {
	if err := r.db.WithContext(ctx).Create(userRecipe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyInCookbook
		}
		return err
	}
	return nil
}

func (r *cookbookRepository) FindByID(ctx context.Context, userRecipeID string) (*entities.UserRecipe, error) {
	var userRecipe entities.UserRecipe
	err := r.db.WithContext(ctx).
		Where("user_recipe_id = ?", userRecipeID).
		First(&userRecipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &userRecipe, nil
}

func (r *cookbookRepository) FindByUserAndOriginal(ctx context.Context, userID, originalRecipeID string) (*entities.UserRecipe, error) {
	var userRecipe entities.UserRecipe
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND original_recipe_id = ?", userID, originalRecipeID).
		First(&userRecipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &userRecipe, nil
}

func (r *cookbookRepository) ListByUser(ctx context.Context, userID string) ([]*entities.UserRecipe, error) {
	var userRecipes []*entities.UserRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at desc").
		Find(&userRecipes).Error; err != nil {
		return nil, err
	}
	return userRecipes, nil
}

func (r *cookbookRepository) Update(ctx context.Context, userRecipeID string, fields map[string]any) (*entities.UserRecipe, error) {
	tx := r.db.WithContext(ctx).
		Model(&entities.UserRecipe{}).
		Where("user_recipe_id = ?", userRecipeID).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, userRecipeID)
}

func (r *cookbookRepository) Remove(ctx context.Context, userRecipeID string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("user_recipe_id = ?", userRecipeID).
		Delete(&entities.UserRecipe{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *cookbookRepository) RemoveAllByOriginal(ctx context.Context, originalRecipeID string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("original_recipe_id = ?", originalRecipeID).
		Delete(&entities.UserRecipe{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
