package user

import (
	"Cookly-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByUID(ctx context.Context, uid string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		UpdateUser(ctx context.Context, uid string, fields map[string]any) (*entities.User, error)
		GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error)
		DeleteUser(ctx context.Context, uid, reason string) (bool, error)
		GetDeletedUsers(ctx context.Context, page, limit int, search string) ([]*entities.DeletedUser, int64, error)
		GetPushyTokens(ctx context.Context, isSubscribed *bool) ([]string, error)
		CountUsers(ctx context.Context) (int64, error)
		CountActiveUsersSince(ctx context.Context, seconds int) (int64, error)
		CountUsersByMonth(ctx context.Context, months int) ([]MonthlyCount, error)
	}

	MonthlyCount struct {
		Year  int
		Month int
		Count int64
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByUID(ctx context.Context, uid string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, uid string, fields map[string]any) (*entities.User, error) {
	tx := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("uid = ?", uid).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetUserByUID(ctx, uid)
}

func (r *userRepository) GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

// DeleteUser archives the account into deleted_users before removing the
// row, inside one transaction so a failed archive keeps the account.
func (r *userRepository) DeleteUser(ctx context.Context, uid, reason string) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entities.User
		if err := tx.Where("uid = ?", uid).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		archive := entities.DeletedUser{
			ID:            uuid.NewString(),
			UID:           user.UID,
			Email:         user.Email,
			FullName:      user.FullName,
			AuthProvider:  user.AuthProvider,
			DeletedReason: reason,
			DeletedAt:     time.Now(),
		}
		if err := tx.Create(&archive).Error; err != nil {
			return err
		}
		if err := tx.Where("uid = ?", uid).Delete(&entities.User{}).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (r *userRepository) GetDeletedUsers(ctx context.Context, page, limit int, search string) ([]*entities.DeletedUser, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.DeletedUser{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var archived []*entities.DeletedUser
	if err := query.
		Order("deleted_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&archived).Error; err != nil {
		return nil, 0, err
	}
	return archived, count, nil
}

func (r *userRepository) GetPushyTokens(ctx context.Context, isSubscribed *bool) ([]string, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("pushy_token <> ''")
	if isSubscribed != nil {
		query = query.Where("is_subscribed_user = ?", *isSubscribed)
	}

	var tokens []string
	if err := query.Pluck("pushy_token", &tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) CountActiveUsersSince(ctx context.Context, seconds int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("updated_at >= now() - make_interval(secs => ?)", seconds).
		Count(&count).Error
	return count, err
}

func (r *userRepository) CountUsersByMonth(ctx context.Context, months int) ([]MonthlyCount, error) {
	var rows []MonthlyCount
	err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Select("extract(year from created_at)::int as year, extract(month from created_at)::int as month, count(*) as count").
		Where("created_at >= now() - make_interval(months => ?)", months).
		Group("year, month").
		Order("year, month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
