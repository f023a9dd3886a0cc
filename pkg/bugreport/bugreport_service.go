package bugreport

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/entities"
	"Cookly-Backend/internal/utils/storage"
	"context"

	"github.com/google/uuid"
)

type (
	BugReportService interface {
		CreateReport(ctx context.Context, userID string, req domain.CreateBugReportRequest) (*entities.BugReport, error)
		GetReports(ctx context.Context, onlyOpen bool) ([]*entities.BugReport, error)
		ResolveReport(ctx context.Context, reportID string) (*entities.BugReport, error)
	}

	bugReportService struct {
		bugReportRepository BugReportRepository
		s3                  storage.AwsS3
	}
)

func NewBugReportService(bugReportRepository BugReportRepository, s3 storage.AwsS3) BugReportService {
	return &bugReportService{bugReportRepository: bugReportRepository, s3: s3}
}

func (s *bugReportService) CreateReport(ctx context.Context, userID string, req domain.CreateBugReportRequest) (*entities.BugReport, error) {
	key, err := s.s3.UploadFile(ctx, "bug-reports", req.Screenshot)
	if err != nil {
		return nil, err
	}

	report := &entities.BugReport{
		ReportID:          uuid.NewString(),
		ReportedBy:        userID,
		ScreenshotURL:     s.s3.GetPublicLinkKey(key),
		ProblemType:       req.ProblemType,
		ReportDescription: req.ReportDescription,
	}

	if err := s.bugReportRepository.CreateReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *bugReportService) GetReports(ctx context.Context, onlyOpen bool) ([]*entities.BugReport, error) {
	return s.bugReportRepository.FindAll(ctx, onlyOpen)
}

func (s *bugReportService) ResolveReport(ctx context.Context, reportID string) (*entities.BugReport, error) {
	report, err := s.bugReportRepository.MarkResolved(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrBugReportNotFound
	}
	return report, nil
}
