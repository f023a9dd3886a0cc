package admin

import (
	"Cookly-Backend/domain"
	"Cookly-Backend/pkg/user"
	"context"
)

type (
	// RecipeCounter and BugReportCounter expose just the aggregate each
	// dashboard card reads, so the admin package does not pull in whole
	// feature services.
	RecipeCounter interface {
		CountRecipes(ctx context.Context) (int64, error)
	}

	BugReportCounter interface {
		CountOpen(ctx context.Context) (int64, error)
	}

	UserStats interface {
		CountUsers(ctx context.Context) (int64, error)
		CountActiveUsersSince(ctx context.Context, seconds int) (int64, error)
		CountUsersByMonth(ctx context.Context, months int) ([]user.MonthlyCount, error)
	}

	AdminService interface {
		GetDashboardStats(ctx context.Context) (*domain.DashboardStatsResponse, error)
		GetUserGrowth(ctx context.Context) ([]domain.UserGrowthPoint, error)
	}

	adminService struct {
		users      UserStats
		recipes    RecipeCounter
		bugReports BugReportCounter
	}
)

// an "active session" is a user row touched within the last hour
const activeSessionWindowSeconds = 3600

const growthMonths = 6

func NewAdminService(users UserStats, recipes RecipeCounter, bugReports BugReportCounter) AdminService {
	return &adminService{users: users, recipes: recipes, bugReports: bugReports}
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*domain.DashboardStatsResponse, error) {
	totalUsers, err := s.users.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	totalRecipes, err := s.recipes.CountRecipes(ctx)
	if err != nil {
		return nil, err
	}

	activeSessions, err := s.users.CountActiveUsersSince(ctx, activeSessionWindowSeconds)
	if err != nil {
		return nil, err
	}

	openBugReports, err := s.bugReports.CountOpen(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStatsResponse{
		TotalUsers:     totalUsers,
		TotalRecipes:   totalRecipes,
		ActiveSessions: activeSessions,
		OpenBugReports: openBugReports,
	}, nil
}

func (s *adminService) GetUserGrowth(ctx context.Context) ([]domain.UserGrowthPoint, error) {
	rows, err := s.users.CountUsersByMonth(ctx, growthMonths)
	if err != nil {
		return nil, err
	}

	points := make([]domain.UserGrowthPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, domain.UserGrowthPoint{
			Year:  row.Year,
			Month: row.Month,
			Count: row.Count,
		})
	}
	return points, nil
}
