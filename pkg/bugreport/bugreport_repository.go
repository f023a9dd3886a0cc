package bugreport

import (
	"Cookly-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	BugReportRepository interface {
		CreateReport(ctx context.Context, report *entities.BugReport) error
		FindByID(ctx context.Context, reportID string) (*entities.BugReport, error)
		FindAll(ctx context.Context, onlyOpen bool) ([]*entities.BugReport, error)
		MarkResolved(ctx context.Context, reportID string) (*entities.BugReport, error)
		CountOpen(ctx context.Context) (int64, error)
	}

	bugReportRepository struct {
		db *gorm.DB
	}
)

func NewBugReportRepository(db *gorm.DB) BugReportRepository {
	return &bugReportRepository{db: db}
}

func (r *bugReportRepository) CreateReport(ctx context.Context, report *entities.BugReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *bugReportRepository) FindByID(ctx context.Context, reportID string) (*entities.BugReport, error) {
	var report entities.BugReport
	err := r.db.WithContext(ctx).Where("report_id = ?", reportID).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *bugReportRepository) FindAll(ctx context.Context, onlyOpen bool) ([]*entities.BugReport, error) {
	query := r.db.WithContext(ctx).Model(&entities.BugReport{})
	if onlyOpen {
		query = query.Where("is_resolved = ?", false)
	}

	var reports []*entities.BugReport
	if err := query.Order("created_at desc").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *bugReportRepository) MarkResolved(ctx context.Context, reportID string) (*entities.BugReport, error) {
	tx := r.db.WithContext(ctx).
		Model(&entities.BugReport{}).
		Where("report_id = ?", reportID).
		Update("is_resolved", true)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, reportID)
}

func (r *bugReportRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.BugReport{}).
		Where("is_resolved = ?", false).
		Count(&count).Error
	return count, err
}
