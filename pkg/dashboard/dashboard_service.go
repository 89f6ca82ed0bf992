package dashboard

import (
	"GiveHub-Backend/domain"
	"context"
)

type (
	DashboardService interface {
		GetStats(ctx context.Context) (domain.DashboardStats, error)
	}

	dashboardService struct {
		dashboardRepository DashboardRepository
	}
)

func NewDashboardService(dashboardRepository DashboardRepository) DashboardService {
	return &dashboardService{dashboardRepository: dashboardRepository}
}

func (s *dashboardService) GetStats(ctx context.Context) (domain.DashboardStats, error) {
	var stats domain.DashboardStats

	userCount, err := s.dashboardRepository.CountUsers(ctx)
	if err != nil {
		return stats, err
	}
	donationCount, err := s.dashboardRepository.CountDonations(ctx)
	if err != nil {
		return stats, err
	}
	blogPostCount, err := s.dashboardRepository.CountBlogPosts(ctx)
	if err != nil {
		return stats, err
	}
	donorCount, err := s.dashboardRepository.CountUsersByRole(ctx, domain.RoleDonor)
	if err != nil {
		return stats, err
	}

	stats = domain.DashboardStats{userCount, donationCount, blogPostCount, donorCount}
	return stats, nil
}
