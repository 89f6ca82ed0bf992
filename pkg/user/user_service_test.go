package user_test

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/entities"
	"GiveHub-Backend/pkg/user"
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users   map[string]*entities.User
	reports []*entities.UserReport
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, u *entities.User) error {
	f.users[u.ID.String()] = u
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetAllUsers(_ context.Context) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, id string, updates map[string]interface{}) error {
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["name"]; ok {
		u.Name = v.(string)
	}
	if v, ok := updates["bio"]; ok {
		u.Bio = v.(string)
	}
	if v, ok := updates["location_country"]; ok {
		u.Location.Country = v.(string)
	}
	if v, ok := updates["availability"]; ok {
		u.Availability = v.(bool)
	}
	if v, ok := updates["profile_photo"]; ok {
		u.ProfilePhoto = v.(string)
	}
	if v, ok := updates["background_image"]; ok {
		u.BackgroundImage = v.(string)
	}
	return nil
}

func (f *fakeUserRepository) DeleteUser(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepository) GetUsersByFilter(_ context.Context, filter map[string]interface{}) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range f.users {
		match := true
		if v, ok := filter["role"]; ok && u.Role != v.(string) {
			match = false
		}
		if v, ok := filter["location_country"]; ok && u.Location.Country != v.(string) {
			match = false
		}
		if v, ok := filter["availability"]; ok && u.Availability != v.(bool) {
			match = false
		}
		if match {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepository) GetUsersByBirthdayRange(_ context.Context, minBirth, maxBirth time.Time) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range f.users {
		if u.Birthday != nil && !u.Birthday.Before(minBirth) && !u.Birthday.After(maxBirth) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepository) GetUsersByJoinedRange(_ context.Context, start, end time.Time) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range f.users {
		if !u.CreatedAt.Before(start) && !u.CreatedAt.After(end) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepository) GetUsersByInterest(_ context.Context, interest string) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range f.users {
		for _, i := range u.Interests {
			if i == interest {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepository) GetUsersRankedByXP(_ context.Context) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].XPPoints > out[j].XPPoints })
	return out, nil
}

func (f *fakeUserRepository) AddReport(_ context.Context, report *entities.UserReport) error {
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeUserRepository) GetReportedUsers(_ context.Context) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range f.users {
		for _, r := range f.reports {
			if r.UserID == u.ID {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

type stubJWT struct{}

func (stubJWT) GenerateTokenUser(userId string, role string) string {
	return "token-" + userId + "-" + role
}

func (stubJWT) ValidateTokenUser(string) (*gojwt.Token, error) { return nil, nil }

func (stubJWT) GetUserIDByToken(string) (string, string, error) { return "", "", nil }

type stubS3 struct{}

func (stubS3) UploadFile(prefix string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return fmt.Sprintf("%s/%s.jpg", folder, prefix), nil
}

func (stubS3) GetPublicLinkKey(key string) string {
	return "https://cdn.example.com/" + key
}

func (stubS3) DeleteFile(_ context.Context, _ string) error { return nil }

func newTestService() (user.UserService, *fakeUserRepository) {
	repo := newFakeUserRepository()
	return user.NewUserService(repo, stubJWT{}, stubS3{}), repo
}

func register(t *testing.T, svc user.UserService, email string) *entities.User {
	t.Helper()
	created, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Ada",
		LastName: "Lovelace",
		Email:    email,
		Phone:    uuid.NewString(),
		Password: "super-secret",
	})
	require.NoError(t, err)
	return created
}

func TestRegisterDefaultsRoleAndHashesPassword(t *testing.T) {
	svc, _ := newTestService()

	created := register(t, svc, "ada@example.com")
	assert.Equal(t, domain.RoleUser, created.Role)
	assert.NotEqual(t, "super-secret", created.Password)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "ada@example.com")

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Name:     "Other",
		LastName: "Person",
		Email:    "ada@example.com",
		Phone:    uuid.NewString(),
		Password: "super-secret",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	created := register(t, svc, "ada@example.com")

	res, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-"+created.ID.String()+"-user", res.Token)
	assert.Equal(t, created.ID.String(), res.User.ID)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "super-secret",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestPatchProfilePartialUpdate(t *testing.T) {
	svc, _ := newTestService()
	created := register(t, svc, "ada@example.com")

	bio := "analyst and metaphysician"
	country := "UK"
	updated, err := svc.PatchProfile(context.Background(), created.ID.String(), domain.PatchProfileRequest{
		Bio:     &bio,
		Country: &country,
	})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, country, updated.Location.Country)
	assert.Equal(t, "Ada", updated.Name) // untouched
}

func TestFilterUsersInvalidAgeRange(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.FilterUsers(context.Background(), domain.UserFilter{MinAge: 40, MaxAge: 20})
	assert.ErrorIs(t, err, domain.ErrInvalidAgeRange)
}

func TestFilterUsersJoinedRangeNeedsBothBounds(t *testing.T) {
	svc, _ := newTestService()
	after := time.Now().AddDate(0, -1, 0)

	_, err := svc.FilterUsers(context.Background(), domain.UserFilter{JoinedAfter: &after})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestReportUser(t *testing.T) {
	svc, repo := newTestService()
	created := register(t, svc, "ada@example.com")

	_, err := svc.ReportUser(context.Background(), created.ID.String(), domain.ReportUserRequest{
		UserID: uuid.NewString(),
		Reason: "harassment",
	})
	require.NoError(t, err)
	require.Len(t, repo.reports, 1)
	assert.Equal(t, domain.ReportStatusPending, repo.reports[0].Status)

	reported, err := svc.GetReportedUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, reported, 1)
}

func TestUpdateProfilePhoto(t *testing.T) {
	svc, repo := newTestService()
	created := register(t, svc, "ada@example.com")

	url, err := svc.UpdateProfilePhoto(context.Background(), created.ID.String(), &multipart.FileHeader{Filename: "me.jpg"})
	require.NoError(t, err)
	assert.Contains(t, url, "https://cdn.example.com/profile-photos/")
	assert.Equal(t, url, repo.users[created.ID.String()].ProfilePhoto)

	require.NoError(t, svc.DeleteProfilePhoto(context.Background(), created.ID.String()))
	assert.Empty(t, repo.users[created.ID.String()].ProfilePhoto)
}
