package notification

import (
	"Cookly-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateLog(ctx context.Context, log *entities.NotificationLog) error
		FindLogs(ctx context.Context, limit, offset int) ([]*entities.NotificationLog, int64, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateLog(ctx context.Context, log *entities.NotificationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *notificationRepository) FindLogs(ctx context.Context, limit, offset int) ([]*entities.NotificationLog, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.NotificationLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []*entities.NotificationLog
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
