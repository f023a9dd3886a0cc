package recipe

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		SaveRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, recipeID string) (*entities.Recipe, error)
		GetPublicRecipes(ctx context.Context, page, limit int, search string, filter domain.PublicRecipeFilter) ([]*entities.Recipe, int64, error)
		GetLikedRecipes(ctx context.Context, userID string, page, limit int, search string) ([]*entities.Recipe, int64, error)
		GetTopPublicRecipes(ctx context.Context, page, limit int, search string) ([]*entities.Recipe, int64, error)
		GetUserRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		ToggleLike(ctx context.Context, recipeID, userID string) (*entities.Recipe, error)
		DeleteRecipeWithClones(ctx context.Context, recipeID string) (bool, int64, error)
		CountRecipes(ctx context.Context) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) SaveRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recipe, nil
}

func applySearch(tx *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return tx
	}
	pattern := "%" + search + "%"
	return tx.Where("recipe_name ILIKE ? OR cuisine ILIKE ?", pattern, pattern)
}

func (r *recipeRepository) GetPublicRecipes(ctx context.Context, page, limit int, search string, filter domain.PublicRecipeFilter) ([]*entities.Recipe, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("is_public = ?", true)
	query = applySearch(query, search)

	if filter.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", filter.ExperienceLevel)
	}
	if filter.MealType != "" {
		query = query.Where("meal_type ILIKE ?", "%"+filter.MealType+"%")
	}
	if filter.MinCalorie != nil {
		query = query.Where("calorie_count >= ?", *filter.MinCalorie)
	}
	if filter.MaxCalorie != nil {
		query = query.Where("calorie_count <= ?", *filter.MaxCalorie)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*entities.Recipe
	if err := query.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}

func (r *recipeRepository) GetLikedRecipes(ctx context.Context, userID string, page, limit int, search string) ([]*entities.Recipe, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where(datatypes.JSONArrayQuery("likes").Contains(userID))
	query = applySearch(query, search)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*entities.Recipe
	if err := query.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}

func (r *recipeRepository) GetTopPublicRecipes(ctx context.Context, page, limit int, search string) ([]*entities.Recipe, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("is_public = ?", true)
	query = applySearch(query, search)

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*entities.Recipe
	if err := query.
		Order("jsonb_array_length(likes) desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}

func (r *recipeRepository) GetUserRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("generated_by = ?", userID).
		Order("created_at desc").
		Limit(15).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) ToggleLike(ctx context.Context, recipeID, userID string) (*entities.Recipe, error) {
	recipe, err := r.GetRecipeByID(ctx, recipeID)
	if err != nil || recipe == nil {
		return nil, err
	}

	likes := []string(recipe.Likes)
	found := -1
	for i, uid := range likes {
		if uid == userID {
			found = i
			break
		}
	}
	if found == -1 {
		likes = append(likes, userID)
	} else {
		likes = append(likes[:found], likes[found+1:]...)
	}
	recipe.Likes = datatypes.NewJSONSlice(likes)

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("recipe_id = ?", recipeID).
		Update("likes", recipe.Likes).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (r *recipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error
	return count, err
}

// DeleteRecipeWithClones removes every cookbook clone of the recipe and the
// recipe itself in one transaction, so a mid-way failure cannot leave clones
// pointing at a deleted recipe. Calling it again after the recipe is gone is
// a no-op reporting zero clones removed.
func (r *recipeRepository) DeleteRecipeWithClones(ctx context.Context, recipeID string) (bool, int64, error) {
	var deleted bool
	var copies int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("original_recipe_id = ?", recipeID).Delete(&entities.UserRecipe{})
		if res.Error != nil {
			return res.Error
		}
		copies = res.RowsAffected

		res = tx.Where("recipe_id = ?", recipeID).Delete(&entities.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return deleted, copies, nil
}
