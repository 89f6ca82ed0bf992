package dashboard_test

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/pkg/dashboard"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDashboardRepository struct {
	mock.Mock
}

func (m *mockDashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDashboardRepository) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDashboardRepository) CountDonations(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDashboardRepository) CountBlogPosts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestGetStatsOrder(t *testing.T) {
	repo := new(mockDashboardRepository)
	repo.On("CountUsers", mock.Anything).Return(int64(120), nil)
	repo.On("CountDonations", mock.Anything).Return(int64(45), nil)
	repo.On("CountBlogPosts", mock.Anything).Return(int64(12), nil)
	repo.On("CountUsersByRole", mock.Anything, domain.RoleDonor).Return(int64(30), nil)

	svc := dashboard.NewDashboardService(repo)
	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.DashboardStats{120, 45, 12, 30}, stats)
	repo.AssertExpectations(t)
}

func TestGetStatsSerializesAsArray(t *testing.T) {
	stats := domain.DashboardStats{120, 45, 12, 30}

	raw, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.JSONEq(t, "[120,45,12,30]", string(raw))
}

func TestGetStatsPropagatesError(t *testing.T) {
	repo := new(mockDashboardRepository)
	repo.On("CountUsers", mock.Anything).Return(int64(0), errors.New("db down"))

	svc := dashboard.NewDashboardService(repo)
	_, err := svc.GetStats(context.Background())
	assert.Error(t, err)
}
