package dashboard

import (
	"GiveHub-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DashboardRepository interface {
		CountUsers(ctx context.Context) (int64, error)
		CountUsersByRole(ctx context.Context, role string) (int64, error)
		CountDonations(ctx context.Context) (int64, error)
		CountBlogPosts(ctx context.Context) (int64, error)
	}

	dashboardRepository struct {
		db *gorm.DB
	}
)

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *dashboardRepository) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("role = ?", role).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *dashboardRepository) CountDonations(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Donation{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *dashboardRepository) CountBlogPosts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.BlogPost{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
