package user

import (
	"GiveHub-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetAllUsers(ctx context.Context) ([]*entities.User, error)
		UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error
		DeleteUser(ctx context.Context, id string) error

		GetUsersByFilter(ctx context.Context, filter map[string]interface{}) ([]*entities.User, error)
		GetUsersByBirthdayRange(ctx context.Context, minBirth, maxBirth time.Time) ([]*entities.User, error)
		GetUsersByJoinedRange(ctx context.Context, start, end time.Time) ([]*entities.User, error)
		GetUsersByInterest(ctx context.Context, interest string) ([]*entities.User, error)
		GetUsersRankedByXP(ctx context.Context) ([]*entities.User, error)

		AddReport(ctx context.Context, report *entities.UserReport) error
		GetReportedUsers(ctx context.Context) ([]*entities.User, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("Reports").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&entities.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) GetUsersByFilter(ctx context.Context, filter map[string]interface{}) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Where(filter).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetUsersByBirthdayRange(ctx context.Context, minBirth, maxBirth time.Time) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Where("birthday >= ? AND birthday <= ?", minBirth, maxBirth).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetUsersByJoinedRange(ctx context.Context, start, end time.Time) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetUsersByInterest(ctx context.Context, interest string) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Where("? = ANY(interests)", interest).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetUsersRankedByXP(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Order("xp_points DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) AddReport(ctx context.Context, report *entities.UserReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *userRepository) GetReportedUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Preload("Reports").
		Where("EXISTS (SELECT 1 FROM user_reports WHERE user_reports.user_id = users.id)").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
