package subscription

import (
	"Cookly-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	SubscriptionRepository interface {
		CreateTransaction(ctx context.Context, transaction *entities.SubscriptionTransaction) error
		FindByOrderID(ctx context.Context, orderID string) (*entities.SubscriptionTransaction, error)
		UpdateStatus(ctx context.Context, orderID, status string) error
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) CreateTransaction(ctx context.Context, transaction *entities.SubscriptionTransaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *subscriptionRepository) FindByOrderID(ctx context.Context, orderID string) (*entities.SubscriptionTransaction, error) {
	var transaction entities.SubscriptionTransaction
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *subscriptionRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.SubscriptionTransaction{}).
		Where("order_id = ?", orderID).
		Update("status", status).Error
}
