package user

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/entities"
	"GiveHub-Backend/internal/utils/mailing"
	"GiveHub-Backend/internal/utils/storage"
	"GiveHub-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*entities.User, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)

		GetAllUsers(ctx context.Context) ([]*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		PatchProfile(ctx context.Context, id string, req domain.PatchProfileRequest) (*entities.User, error)
		DeleteUser(ctx context.Context, id string) error

		ReportUser(ctx context.Context, userID string, req domain.ReportUserRequest) (*entities.User, error)
		GetReportedUsers(ctx context.Context) ([]*entities.User, error)
		GetUserRanking(ctx context.Context) ([]*entities.User, error)
		FilterUsers(ctx context.Context, filter domain.UserFilter) ([]*entities.User, error)

		UpdateProfilePhoto(ctx context.Context, userID string, file *multipart.FileHeader) (string, error)
		DeleteProfilePhoto(ctx context.Context, userID string) error
		UpdateBackgroundImage(ctx context.Context, userID string, file *multipart.FileHeader) (string, error)
		DeleteBackgroundImage(ctx context.Context, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*entities.User, error) {
	if existing, _ := s.userRepository.GetUserByEmail(ctx, req.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &entities.User{
		ID:           uuid.New(),
		Name:         req.Name,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     string(hashed),
		Role:         role,
		Availability: true,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	// Welcome mail failures should not fail the registration.
	go func() {
		body := fmt.Sprintf("<p>Hi %s, welcome to GiveHub! Your account is ready.</p>", user.Name)
		_ = mailing.SendMail(user.Email, "Welcome to GiveHub", body)
	}()

	return user, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return &domain.LoginResponse{
		Token: token,
		User: &domain.UserBrief{
			ID:           user.ID.String(),
			Name:         user.Name,
			LastName:     user.LastName,
			Email:        user.Email,
			Role:         user.Role,
			ProfilePhoto: user.ProfilePhoto,
		},
		Role: user.Role,
	}, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepository.GetAllUsers(ctx)
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) PatchProfile(ctx context.Context, id string, req domain.PatchProfileRequest) (*entities.User, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Anonymity != nil {
		updates["anonymity"] = *req.Anonymity
	}
	if req.Availability != nil {
		updates["availability"] = *req.Availability
	}
	if req.Birthday != nil {
		birthday, err := time.Parse("2006-01-02", *req.Birthday)
		if err != nil {
			return nil, err
		}
		updates["birthday"] = birthday
	}
	if req.Country != nil {
		updates["location_country"] = *req.Country
	}
	if req.State != nil {
		updates["location_state"] = *req.State
	}
	if req.Address != nil {
		updates["location_address"] = *req.Address
	}
	if req.Interests != nil {
		updates["interests"] = pq.StringArray(*req.Interests)
	}

	if len(updates) > 0 {
		if err := s.userRepository.UpdateUser(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrUserNotFound
			}
			return nil, err
		}
	}

	return s.GetUserByID(ctx, id)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *userService) ReportUser(ctx context.Context, userID string, req domain.ReportUserRequest) (*entities.User, error) {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	reporterUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if err := s.userRepository.AddReport(ctx, &entities.UserReport{
		ID:         uuid.New(),
		UserID:     userUUID,
		ReporterID: reporterUUID,
		Reason:     req.Reason,
		Status:     domain.ReportStatusPending,
	}); err != nil {
		return nil, err
	}

	return s.GetUserByID(ctx, userID)
}

func (s *userService) GetReportedUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepository.GetReportedUsers(ctx)
}

func (s *userService) GetUserRanking(ctx context.Context) ([]*entities.User, error) {
	return s.userRepository.GetUsersRankedByXP(ctx)
}

func (s *userService) FilterUsers(ctx context.Context, filter domain.UserFilter) ([]*entities.User, error) {
	if filter.MinAge > 0 || filter.MaxAge > 0 {
		if filter.MinAge < 0 || filter.MaxAge < filter.MinAge {
			return nil, domain.ErrInvalidAgeRange
		}
		now := time.Now()
		minBirth := now.AddDate(-filter.MaxAge, 0, 0)
		maxBirth := now.AddDate(-filter.MinAge, 0, 0)
		return s.userRepository.GetUsersByBirthdayRange(ctx, minBirth, maxBirth)
	}

	if filter.JoinedAfter != nil || filter.JoinedBefore != nil {
		if filter.JoinedAfter == nil || filter.JoinedBefore == nil {
			return nil, domain.ErrInvalidDateRange
		}
		return s.userRepository.GetUsersByJoinedRange(ctx, *filter.JoinedAfter, *filter.JoinedBefore)
	}

	if filter.Interest != "" {
		return s.userRepository.GetUsersByInterest(ctx, filter.Interest)
	}

	conditions := map[string]interface{}{}
	if filter.Role != "" {
		conditions["role"] = filter.Role
	}
	if filter.Gender != "" {
		conditions["gender"] = filter.Gender
	}
	if filter.Country != "" {
		conditions["location_country"] = filter.Country
	}
	if filter.State != "" {
		conditions["location_state"] = filter.State
	}
	if filter.Availability != nil {
		conditions["availability"] = *filter.Availability
	}
	if filter.Anonymity != nil {
		conditions["anonymity"] = *filter.Anonymity
	}

	return s.userRepository.GetUsersByFilter(ctx, conditions)
}

func (s *userService) UpdateProfilePhoto(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	return s.updateUserImage(ctx, userID, file, "profile_photo", "profile-photos")
}

func (s *userService) DeleteProfilePhoto(ctx context.Context, userID string) error {
	return s.clearUserImage(ctx, userID, "profile_photo")
}

func (s *userService) UpdateBackgroundImage(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	return s.updateUserImage(ctx, userID, file, "background_image", "background-images")
}

func (s *userService) DeleteBackgroundImage(ctx context.Context, userID string) error {
	return s.clearUserImage(ctx, userID, "background_image")
}

func (s *userService) updateUserImage(ctx context.Context, userID string, file *multipart.FileHeader, column, folder string) (string, error) {
	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return "", err
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("user-%s-%s", userID, column),
		file,
		folder,
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}

	url := s.s3.GetPublicLinkKey(objectKey)
	if err := s.userRepository.UpdateUser(ctx, userID, map[string]interface{}{column: url}); err != nil {
		return "", err
	}
	return url, nil
}

func (s *userService) clearUserImage(ctx context.Context, userID string, column string) error {
	if err := s.userRepository.UpdateUser(ctx, userID, map[string]interface{}{column: ""}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}
