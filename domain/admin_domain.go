package domain

var (
	MessageSuccessGetDashboard  = "success get dashboard stats"
	MessageSuccessGetUserGrowth = "success get user growth"
	MessageSuccessGetUsers      = "success get users"
	MessageSuccessGetDeleted    = "success get deleted users"

	MessageFailedGetDashboard  = "failed to get dashboard stats"
	MessageFailedGetUserGrowth = "failed to get user growth"
	MessageFailedGetUsers      = "failed to get users"
	MessageFailedGetDeleted    = "failed to get deleted users"
)

type (
	DashboardStatsResponse struct {
		TotalUsers     int64 `json:"totalUsers"`
		TotalRecipes   int64 `json:"totalRecipes"`
		ActiveSessions int64 `json:"activeSessions"`
		OpenBugReports int64 `json:"openBugReports"`
	}

	UserGrowthPoint struct {
		Year  int   `json:"year"`
		Month int   `json:"month"`
		Count int64 `json:"count"`
	}
)
