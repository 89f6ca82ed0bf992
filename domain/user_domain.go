package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessLogout          = "logout successful"
	MessageSuccessCreateUser      = "user created successfully"
	MessageSuccessGetUsers        = "users retrieved successfully"
	MessageSuccessUpdateUser      = "user updated successfully"
	MessageSuccessDeleteUser      = "user deleted successfully"
	MessageSuccessReportUser      = "user reported successfully"
	MessageSuccessUploadUserMedia = "user media uploaded successfully"
	MessageSuccessDeleteUserMedia = "user media deleted successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedCreateUser      = "failed to create user"
	MessageFailedGetUsers        = "failed to retrieve users"
	MessageFailedUpdateUser      = "failed to update user"
	MessageFailedDeleteUser      = "failed to delete user"
	MessageFailedReportUser      = "failed to report user"
	MessageFailedUploadUserMedia = "failed to upload user media"
	MessageFailedDeleteUserMedia = "failed to delete user media"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrInvalidAgeRange    = errors.New("invalid age range")
	ErrInvalidDateRange   = errors.New("invalid date range")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		LastName string `json:"last_name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"omitempty,oneof=user donor sponsor admin"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string     `json:"token"`
		User  *UserBrief `json:"user"`
		Role  string     `json:"role"`
	}

	// PatchProfileRequest is the single typed partial update replacing the
	// legacy one-endpoint-per-field surface. Nil pointers mean "leave as is".
	PatchProfileRequest struct {
		Name         *string   `json:"name" validate:"omitempty"`
		LastName     *string   `json:"last_name" validate:"omitempty"`
		Bio          *string   `json:"bio" validate:"omitempty"`
		Gender       *string   `json:"gender" validate:"omitempty,oneof=Male Female"`
		Anonymity    *bool     `json:"anonymity" validate:"omitempty"`
		Availability *bool     `json:"availability" validate:"omitempty"`
		Birthday     *string   `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
		Country      *string   `json:"country" validate:"omitempty"`
		State        *string   `json:"state" validate:"omitempty"`
		Address      *string   `json:"address" validate:"omitempty"`
		Interests    *[]string `json:"interests" validate:"omitempty"`
	}

	ReportUserRequest struct {
		UserID string `json:"userId" validate:"required,uuid"`
		Reason string `json:"reason" validate:"required"`
	}

	UserBrief struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		LastName     string `json:"last_name,omitempty"`
		Email        string `json:"email,omitempty"`
		Role         string `json:"role,omitempty"`
		ProfilePhoto string `json:"profile_photo,omitempty"`
	}

	UserFilter struct {
		Role         string
		Gender       string
		Country      string
		State        string
		Interest     string
		Availability *bool
		Anonymity    *bool
		MinAge       int
		MaxAge       int
		JoinedAfter  *time.Time
		JoinedBefore *time.Time
	}
)
