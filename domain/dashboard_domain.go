package domain

var (
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"
	MessageFailedGetDashboardStats  = "failed to retrieve dashboard statistics"
)

// DashboardStats serializes as a plain array: [userCount, donationCount,
// blogPostCount, donorCount]. The admin frontend consumes it positionally.
type DashboardStats [4]int64
