package donation_test

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/entities"
	"GiveHub-Backend/pkg/donation"
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDonationRepository struct {
	donations map[string]*entities.Donation
	requests  []*entities.DonationRequest
	reports   []*entities.DonationReport
	comments  []*entities.DonationComment
	likes     []*entities.DonationLike
	saves     []*entities.DonationSave
}

func newFakeDonationRepository() *fakeDonationRepository {
	return &fakeDonationRepository{donations: map[string]*entities.Donation{}}
}

func (f *fakeDonationRepository) CreateDonation(_ context.Context, d *entities.Donation) error {
	f.donations[d.ID.String()] = d
	return nil
}

func (f *fakeDonationRepository) GetDonationByID(_ context.Context, id string) (*entities.Donation, error) {
	d, ok := f.donations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeDonationRepository) GetAllDonations(_ context.Context) ([]*entities.Donation, error) {
	out := make([]*entities.Donation, 0, len(f.donations))
	for _, d := range f.donations {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDonationRepository) UpdateDonation(_ context.Context, id string, updates map[string]interface{}) error {
	d, ok := f.donations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := updates["item"]; ok {
		d.Item = v.(string)
	}
	if v, ok := updates["description"]; ok {
		d.Description = v.(string)
	}
	if v, ok := updates["category"]; ok {
		d.Category = v.(string)
	}
	if v, ok := updates["status"]; ok {
		d.Status = v.(string)
	}
	return nil
}

func (f *fakeDonationRepository) DeleteDonation(_ context.Context, id string) error {
	if _, ok := f.donations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.donations, id)
	return nil
}

func (f *fakeDonationRepository) GetDonationsByStatus(_ context.Context, status string) ([]*entities.Donation, error) {
	var out []*entities.Donation
	for _, d := range f.donations {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDonationRepository) GetDonationsByCategory(_ context.Context, category string) ([]*entities.Donation, error) {
	var out []*entities.Donation
	for _, d := range f.donations {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDonationRepository) GetDonationsByDonor(_ context.Context, donorID string) ([]*entities.Donation, error) {
	var out []*entities.Donation
	for _, d := range f.donations {
		if d.UserID.String() == donorID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDonationRepository) GetDonationsWithPendingReports(_ context.Context) ([]*entities.Donation, error) {
	var out []*entities.Donation
	for _, d := range f.donations {
		for _, r := range f.reports {
			if r.DonationID == d.ID && r.Status == domain.ReportStatusPending {
				copied := *d
				copied.Reports = f.reportsFor(d.ID)
				out = append(out, &copied)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeDonationRepository) reportsFor(donationID uuid.UUID) []*entities.DonationReport {
	var out []*entities.DonationReport
	for _, r := range f.reports {
		if r.DonationID == donationID {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeDonationRepository) HasActiveRequest(_ context.Context, donationID, requesterID string) (bool, error) {
	for _, r := range f.requests {
		if r.DonationID.String() == donationID &&
			r.RequesterID.String() == requesterID &&
			r.Status != domain.RequestStatusRejected {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDonationRepository) AddRequest(_ context.Context, request *entities.DonationRequest) error {
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeDonationRepository) GetRequests(_ context.Context, donationID string) ([]*entities.DonationRequest, error) {
	var out []*entities.DonationRequest
	for _, r := range f.requests {
		if r.DonationID.String() == donationID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeDonationRepository) AcceptRequest(_ context.Context, donationID, requestID string) error {
	d, ok := f.donations[donationID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if d.Status == domain.DonationStatusCompleted {
		return domain.ErrDonationAlreadyDecided
	}

	var accepted *entities.DonationRequest
	for _, r := range f.requests {
		if r.DonationID.String() == donationID && r.ID.String() == requestID {
			accepted = r
			break
		}
	}
	if accepted == nil {
		return gorm.ErrRecordNotFound
	}

	accepted.Status = domain.RequestStatusAccepted
	for _, r := range f.requests {
		if r.DonationID.String() == donationID && r.ID != accepted.ID {
			r.Status = domain.RequestStatusRejected
		}
	}
	d.Status = domain.DonationStatusCompleted
	return nil
}

func (f *fakeDonationRepository) RejectRequest(_ context.Context, donationID, requestID string) error {
	for _, r := range f.requests {
		if r.DonationID.String() == donationID && r.ID.String() == requestID {
			r.Status = domain.RequestStatusRejected
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeDonationRepository) AddReport(_ context.Context, report *entities.DonationReport) error {
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeDonationRepository) DeleteReport(_ context.Context, donationID, reportID string) error {
	for i, r := range f.reports {
		if r.DonationID.String() == donationID && r.ID.String() == reportID {
			f.reports = append(f.reports[:i], f.reports[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeDonationRepository) UpdateReportStatus(_ context.Context, donationID, reportID, status string) error {
	for _, r := range f.reports {
		if r.DonationID.String() == donationID && r.ID.String() == reportID {
			r.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeDonationRepository) RemoveLike(_ context.Context, donationID, userID string) (int64, error) {
	for i, l := range f.likes {
		if l.DonationID.String() == donationID && l.UserID.String() == userID {
			f.likes = append(f.likes[:i], f.likes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeDonationRepository) AddLike(_ context.Context, like *entities.DonationLike) error {
	f.likes = append(f.likes, like)
	return nil
}

func (f *fakeDonationRepository) GetLikes(_ context.Context, donationID string) ([]*entities.DonationLike, error) {
	out := []*entities.DonationLike{}
	for _, l := range f.likes {
		if l.DonationID.String() == donationID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeDonationRepository) RemoveSave(_ context.Context, donationID, userID string) (int64, error) {
	for i, s := range f.saves {
		if s.DonationID.String() == donationID && s.UserID.String() == userID {
			f.saves = append(f.saves[:i], f.saves[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeDonationRepository) AddSave(_ context.Context, save *entities.DonationSave) error {
	f.saves = append(f.saves, save)
	return nil
}

func (f *fakeDonationRepository) GetSaves(_ context.Context, donationID string) ([]*entities.DonationSave, error) {
	out := []*entities.DonationSave{}
	for _, s := range f.saves {
		if s.DonationID.String() == donationID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeDonationRepository) AddComment(_ context.Context, comment *entities.DonationComment) error {
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeDonationRepository) UpdateComment(_ context.Context, donationID, commentID, content string) error {
	for _, c := range f.comments {
		if c.DonationID.String() == donationID && c.ID.String() == commentID {
			c.Content = content
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeDonationRepository) DeleteComment(_ context.Context, donationID, commentID string) error {
	for i, c := range f.comments {
		if c.DonationID.String() == donationID && c.ID.String() == commentID {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeDonationRepository) SetSelectedRecipient(_ context.Context, donationID, userID string) error {
	d, ok := f.donations[donationID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return err
	}
	d.SelectedRecipientID = &id
	return nil
}

func (f *fakeDonationRepository) AppendMedia(_ context.Context, donationID string, urls []string) ([]string, error) {
	d, ok := f.donations[donationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	d.Media = append(d.Media, urls...)
	return d.Media, nil
}

func (f *fakeDonationRepository) RemoveMediaAt(_ context.Context, donationID string, index int) ([]string, error) {
	d, ok := f.donations[donationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if index < 0 || index >= len(d.Media) {
		return nil, domain.ErrInvalidMediaIndex
	}
	d.Media = append(d.Media[:index], d.Media[index+1:]...)
	return d.Media, nil
}

func (f *fakeDonationRepository) GetMedia(_ context.Context, donationID string) ([]string, error) {
	d, ok := f.donations[donationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d.Media, nil
}

type stubS3 struct{}

func (stubS3) UploadFile(prefix string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return fmt.Sprintf("%s/%s.jpg", folder, prefix), nil
}

func (stubS3) GetPublicLinkKey(key string) string {
	return "https://cdn.example.com/" + key
}

func (stubS3) DeleteFile(_ context.Context, _ string) error { return nil }

func newTestService() (donation.DonationService, *fakeDonationRepository) {
	repo := newFakeDonationRepository()
	return donation.NewDonationService(repo, stubS3{}), repo
}

func seedDonation(t *testing.T, svc donation.DonationService, category string) *entities.Donation {
	t.Helper()
	created, err := svc.CreateDonation(context.Background(), domain.CreateDonationRequest{
		Item:        "Winter jacket",
		Description: "Barely worn",
		Category:    category,
	}, uuid.NewString())
	require.NoError(t, err)
	return created
}

func TestCreateDonationRejectsUnknownCategory(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateDonation(context.Background(), domain.CreateDonationRequest{
		Item:        "Mystery box",
		Description: "???",
		Category:    "Vehicles",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidDonationCategory)
}

func TestCreateDonationStartsPending(t *testing.T) {
	svc, _ := newTestService()

	created := seedDonation(t, svc, "Clothing")
	assert.Equal(t, domain.DonationStatusPending, created.Status)
}

func TestSubmitRequestDuplicateConflicts(t *testing.T) {
	svc, _ := newTestService()
	created := seedDonation(t, svc, "Books")
	requester := uuid.NewString()

	require.NoError(t, svc.SubmitRequest(context.Background(), created.ID.String(), requester))

	err := svc.SubmitRequest(context.Background(), created.ID.String(), requester)
	assert.ErrorIs(t, err, domain.ErrAlreadyRequested)
}

func TestSubmitRequestAllowedAfterRejection(t *testing.T) {
	svc, repo := newTestService()
	created := seedDonation(t, svc, "Books")
	requester := uuid.NewString()

	require.NoError(t, svc.SubmitRequest(context.Background(), created.ID.String(), requester))
	repo.requests[0].Status = domain.RequestStatusRejected

	assert.NoError(t, svc.SubmitRequest(context.Background(), created.ID.String(), requester))
}

func TestSubmitRequestUnknownDonation(t *testing.T) {
	svc, _ := newTestService()

	err := svc.SubmitRequest(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrDonationNotFound)
}

func TestDecideRequestAcceptCascades(t *testing.T) {
	svc, repo := newTestService()
	created := seedDonation(t, svc, "Clothing")
	ctx := context.Background()

	require.NoError(t, svc.SubmitRequest(ctx, created.ID.String(), uuid.NewString()))
	require.NoError(t, svc.SubmitRequest(ctx, created.ID.String(), uuid.NewString()))
	require.NoError(t, svc.SubmitRequest(ctx, created.ID.String(), uuid.NewString()))

	winner := repo.requests[1]
	require.NoError(t, svc.DecideRequest(ctx, created.ID.String(), winner.ID.String(), "accepted"))

	assert.Equal(t, domain.RequestStatusAccepted, winner.Status)
	nonRejected := 0
	for _, r := range repo.requests {
		if r.Status != domain.RequestStatusRejected {
			nonRejected++
		}
	}
	assert.Equal(t, 1, nonRejected)

	stored, err := svc.GetDonationByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusCompleted, stored.Status)
}

func TestDecideRequestSecondAcceptConflicts(t *testing.T) {
	svc, repo := newTestService()
	created := seedDonation(t, svc, "Clothing")
	ctx := context.Background()

	require.NoError(t, svc.SubmitRequest(ctx, created.ID.String(), uuid.NewString()))
	require.NoError(t, svc.SubmitRequest(ctx, created.ID.String(), uuid.NewString()))

	first := repo.requests[0]
	second := repo.requests[1]
	require.NoError(t, svc.DecideRequest(ctx, created.ID.String(), first.ID.String(), "accepted"))

	err := svc.DecideRequest(ctx, created.ID.String(), second.ID.String(), "accepted")
	assert.ErrorIs(t, err, domain.ErrDonationAlreadyDecided)
	assert.Equal(t, domain.RequestStatusRejected, second.Status)
}

func TestDecideRequestNormalizesApprovedKeyword(t *testing.T) {
	svc, repo := newTestService()
	created := seedDonation(t, svc, "Toys")
	ctx := context.Background()

	require.NoError(t, svc.SubmitRequest(ctx, created.ID.String(), uuid.NewString()))

	req := repo.requests[0]
	require.NoError(t, svc.DecideRequest(ctx, created.ID.String(), req.ID.String(), "Approved"))
	assert.Equal(t, domain.RequestStatusAccepted, req.Status)
}

func TestDecideRequestRejectLeavesDonationOpen(t *testing.T) {
	svc, repo := newTestService()
	created := seedDonation(t, svc, "Toys")
	ctx := context.Background()

	require.NoError(t, svc.SubmitRequest(ctx, created.ID.String(), uuid.NewString()))
	require.NoError(t, svc.DecideRequest(ctx, created.ID.String(), repo.requests[0].ID.String(), "rejected"))

	stored, err := svc.GetDonationByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusPending, stored.Status)
}

func TestDecideRequestInvalidDecision(t *testing.T) {
	svc, _ := newTestService()
	created := seedDonation(t, svc, "Toys")

	err := svc.DecideRequest(context.Background(), created.ID.String(), uuid.NewString(), "maybe")
	assert.ErrorIs(t, err, domain.ErrInvalidRequestDecision)
}

func TestToggleLikeTwiceRestoresSet(t *testing.T) {
	svc, _ := newTestService()
	created := seedDonation(t, svc, "Electronics")
	ctx := context.Background()
	user := uuid.NewString()

	likes, err := svc.ToggleLike(ctx, created.ID.String(), user)
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	likes, err = svc.ToggleLike(ctx, created.ID.String(), user)
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestToggleSaveIndependentOfLike(t *testing.T) {
	svc, _ := newTestService()
	created := seedDonation(t, svc, "Electronics")
	ctx := context.Background()
	user := uuid.NewString()

	_, err := svc.ToggleLike(ctx, created.ID.String(), user)
	require.NoError(t, err)

	saves, err := svc.ToggleSave(ctx, created.ID.String(), user)
	require.NoError(t, err)
	assert.Len(t, saves, 1)

	likes, err := svc.ToggleLike(ctx, created.ID.String(), user)
	require.NoError(t, err)
	assert.Empty(t, likes)

	saves, err = svc.ToggleSave(ctx, created.ID.String(), user)
	require.NoError(t, err)
	assert.Empty(t, saves)
}

func TestAddCommentRejectsEmptyContent(t *testing.T) {
	svc, _ := newTestService()
	created := seedDonation(t, svc, "Furniture")

	err := svc.AddComment(context.Background(), created.ID.String(), uuid.NewString(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyCommentContent)
}

func TestDeleteReportLeavesSiblings(t *testing.T) {
	svc, repo := newTestService()
	created := seedDonation(t, svc, "Furniture")
	ctx := context.Background()

	require.NoError(t, svc.CreateReport(ctx, created.ID.String(), domain.CreateReportRequest{
		UserID: uuid.NewString(),
		Reason: "spam",
	}))
	require.NoError(t, svc.CreateReport(ctx, created.ID.String(), domain.CreateReportRequest{
		UserID: uuid.NewString(),
		Reason: "scam",
	}))

	require.NoError(t, svc.DeleteReport(ctx, created.ID.String(), repo.reports[0].ID.String()))
	assert.Len(t, repo.reports, 1)
	assert.Equal(t, "scam", repo.reports[0].Reason)
}

func TestReportLifecycle(t *testing.T) {
	svc, repo := newTestService()
	created := seedDonation(t, svc, "Jewelry")
	ctx := context.Background()

	require.NoError(t, svc.CreateReport(ctx, created.ID.String(), domain.CreateReportRequest{
		UserID: uuid.NewString(),
		Reason: "broken item",
	}))
	report := repo.reports[0]
	assert.Equal(t, domain.ReportStatusPending, report.Status)

	require.NoError(t, svc.ReviewReport(ctx, created.ID.String(), report.ID.String()))
	assert.Equal(t, domain.ReportStatusReviewed, report.Status)

	require.NoError(t, svc.ResolveReport(ctx, created.ID.String(), report.ID.String()))
	assert.Equal(t, domain.ReportStatusResolved, report.Status)
}

func TestReviewReportUnknownReport(t *testing.T) {
	svc, _ := newTestService()
	created := seedDonation(t, svc, "Jewelry")

	err := svc.ReviewReport(context.Background(), created.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestSelectRecipientDoesNotCheckRequests(t *testing.T) {
	svc, repo := newTestService()
	created := seedDonation(t, svc, "Tools")
	recipient := uuid.NewString()

	require.NoError(t, svc.SelectRecipient(context.Background(), created.ID.String(), recipient))

	stored := repo.donations[created.ID.String()]
	require.NotNil(t, stored.SelectedRecipientID)
	assert.Equal(t, recipient, stored.SelectedRecipientID.String())
}

func TestMediaAppendKeepsOrder(t *testing.T) {
	svc, repo := newTestService()
	created := seedDonation(t, svc, "Appliances")
	ctx := context.Background()

	_, err := repo.AppendMedia(ctx, created.ID.String(), []string{"a.jpg", "b.jpg", "c.jpg"})
	require.NoError(t, err)

	media, err := svc.ListMedia(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, media)
}

func TestRemoveMediaShiftsLeft(t *testing.T) {
	svc, repo := newTestService()
	created := seedDonation(t, svc, "Appliances")
	ctx := context.Background()

	_, err := repo.AppendMedia(ctx, created.ID.String(), []string{"a.jpg", "b.jpg", "c.jpg"})
	require.NoError(t, err)

	media, err := svc.RemoveMedia(ctx, created.ID.String(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.jpg", "c.jpg"}, media)
}

func TestRemoveMediaOutOfBounds(t *testing.T) {
	svc, repo := newTestService()
	created := seedDonation(t, svc, "Appliances")
	ctx := context.Background()

	_, err := repo.AppendMedia(ctx, created.ID.String(), []string{"a.jpg"})
	require.NoError(t, err)

	_, err = svc.RemoveMedia(ctx, created.ID.String(), 3)
	assert.ErrorIs(t, err, domain.ErrInvalidMediaIndex)

	_, err = svc.RemoveMedia(ctx, created.ID.String(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidMediaIndex)
}

func TestListDonationsByCategory(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	seedDonation(t, svc, "Clothing")
	seedDonation(t, svc, "Clothing")
	seedDonation(t, svc, "Books")

	clothing, err := svc.GetDonationsByCategory(ctx, "Clothing")
	require.NoError(t, err)
	assert.Len(t, clothing, 2)

	_, err = svc.GetDonationsByCategory(ctx, "Spaceships")
	assert.ErrorIs(t, err, domain.ErrInvalidDonationCategory)
}

// Full pass through the lifecycle: post a Clothing donation, take three
// requests, accept one, then verify the losers and the donation state.
func TestClothingDonationLifecycle(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	donor := uuid.NewString()

	created, err := svc.CreateDonation(ctx, domain.CreateDonationRequest{
		Item:        "Wool coat",
		Description: "Size M, good condition",
		Category:    "Clothing",
	}, donor)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.SubmitRequest(ctx, created.ID.String(), uuid.NewString()))
	}
	requests, err := svc.GetRequests(ctx, created.ID.String())
	require.NoError(t, err)
	require.Len(t, requests, 3)

	winner := requests[2]
	require.NoError(t, svc.DecideRequest(ctx, created.ID.String(), winner.ID.String(), "accepted"))

	for _, r := range repo.requests {
		if r.ID == winner.ID {
			assert.Equal(t, domain.RequestStatusAccepted, r.Status)
		} else {
			assert.Equal(t, domain.RequestStatusRejected, r.Status)
		}
	}

	stored, err := svc.GetDonationByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.DonationStatusCompleted, stored.Status)

	err = svc.DecideRequest(ctx, created.ID.String(), requests[0].ID.String(), "accepted")
	assert.ErrorIs(t, err, domain.ErrDonationAlreadyDecided)
}
