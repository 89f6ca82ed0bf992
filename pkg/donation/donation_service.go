package donation

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/entities"
	"GiveHub-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*entities.Donation, error)
		GetAllDonations(ctx context.Context) ([]*entities.Donation, error)
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		UpdateDonation(ctx context.Context, id string, req domain.UpdateDonationRequest) (*entities.Donation, error)
		DeleteDonation(ctx context.Context, id string) error
		GetDonationsByStatus(ctx context.Context, status string) ([]*entities.Donation, error)
		GetDonationsByCategory(ctx context.Context, category string) ([]*entities.Donation, error)
		GetDonationsByDonor(ctx context.Context, donorID string) ([]*entities.Donation, error)

		SubmitRequest(ctx context.Context, donationID, requesterID string) error
		DecideRequest(ctx context.Context, donationID, requestID, decision string) error
		GetRequests(ctx context.Context, donationID string) ([]*entities.DonationRequest, error)

		CreateReport(ctx context.Context, donationID string, req domain.CreateReportRequest) error
		DeleteReport(ctx context.Context, donationID, reportID string) error
		ReviewReport(ctx context.Context, donationID, reportID string) error
		ResolveReport(ctx context.Context, donationID, reportID string) error
		GetPendingReportDonations(ctx context.Context) ([]*domain.PendingReportDonation, error)

		ToggleLike(ctx context.Context, donationID, userID string) ([]*entities.DonationLike, error)
		ToggleSave(ctx context.Context, donationID, userID string) ([]*entities.DonationSave, error)

		AddComment(ctx context.Context, donationID, userID, content string) error
		UpdateComment(ctx context.Context, donationID, commentID, content string) error
		DeleteComment(ctx context.Context, donationID, commentID string) error

		SelectRecipient(ctx context.Context, donationID, userID string) error

		AttachMedia(ctx context.Context, donationID string, files []*multipart.FileHeader) ([]string, error)
		ListMedia(ctx context.Context, donationID string) ([]string, error)
		RemoveMedia(ctx context.Context, donationID string, index int) ([]string, error)
	}

	donationService struct {
		donationRepository DonationRepository
		s3                 storage.AwsS3
	}
)

func NewDonationService(donationRepository DonationRepository, s3 storage.AwsS3) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		s3:                 s3,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*entities.Donation, error) {
	if !domain.IsValidDonationCategory(req.Category) {
		return nil, domain.ErrInvalidDonationCategory
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	donation := &entities.Donation{
		ID:          uuid.New(),
		UserID:      userUUID,
		Item:        req.Item,
		Description: req.Description,
		Category:    req.Category,
		Status:      domain.DonationStatusPending,
		Media:       req.Media,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

func (s *donationService) GetAllDonations(ctx context.Context) ([]*entities.Donation, error) {
	return s.donationRepository.GetAllDonations(ctx)
}

func (s *donationService) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return donation, nil
}

func (s *donationService) UpdateDonation(ctx context.Context, id string, req domain.UpdateDonationRequest) (*entities.Donation, error) {
	updates := map[string]interface{}{}
	if req.Item != "" {
		updates["item"] = req.Item
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Category != "" {
		if !domain.IsValidDonationCategory(req.Category) {
			return nil, domain.ErrInvalidDonationCategory
		}
		updates["category"] = req.Category
	}
	if req.Status != "" {
		if !domain.IsValidDonationStatus(req.Status) {
			return nil, domain.ErrInvalidDonationStatus
		}
		updates["status"] = req.Status
	}

	if len(updates) > 0 {
		if err := s.donationRepository.UpdateDonation(ctx, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrDonationNotFound
			}
			return nil, err
		}
	}

	return s.GetDonationByID(ctx, id)
}

func (s *donationService) DeleteDonation(ctx context.Context, id string) error {
	if err := s.donationRepository.DeleteDonation(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}
	return nil
}

func (s *donationService) GetDonationsByStatus(ctx context.Context, status string) ([]*entities.Donation, error) {
	if !domain.IsValidDonationStatus(status) {
		return nil, domain.ErrInvalidDonationStatus
	}
	return s.donationRepository.GetDonationsByStatus(ctx, status)
}

func (s *donationService) GetDonationsByCategory(ctx context.Context, category string) ([]*entities.Donation, error) {
	if !domain.IsValidDonationCategory(category) {
		return nil, domain.ErrInvalidDonationCategory
	}
	return s.donationRepository.GetDonationsByCategory(ctx, category)
}

func (s *donationService) GetDonationsByDonor(ctx context.Context, donorID string) ([]*entities.Donation, error) {
	return s.donationRepository.GetDonationsByDonor(ctx, donorID)
}

// SubmitRequest appends a pending request unless the requester already has a
// live (pending or accepted) one on this donation. The donation status is
// untouched.
func (s *donationService) SubmitRequest(ctx context.Context, donationID, requesterID string) error {
	if _, err := s.GetDonationByID(ctx, donationID); err != nil {
		return err
	}

	requesterUUID, err := uuid.Parse(requesterID)
	if err != nil {
		return domain.ErrParseUUID
	}

	exists, err := s.donationRepository.HasActiveRequest(ctx, donationID, requesterID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadyRequested
	}

	donationUUID, err := uuid.Parse(donationID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.donationRepository.AddRequest(ctx, &entities.DonationRequest{
		ID:          uuid.New(),
		DonationID:  donationUUID,
		RequesterID: requesterUUID,
		Status:      domain.RequestStatusPending,
	})
}

// DecideRequest resolves one request. Accepting cascades: siblings are
// rejected and the donation completes, all inside one transaction. The legacy
// "approved" decision keyword is normalized to accepted.
func (s *donationService) DecideRequest(ctx context.Context, donationID, requestID, decision string) error {
	switch strings.ToLower(decision) {
	case domain.RequestStatusAccepted, "approved":
		if err := s.donationRepository.AcceptRequest(ctx, donationID, requestID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRequestNotFound
			}
			return err
		}
		return nil
	case domain.RequestStatusRejected:
		if err := s.donationRepository.RejectRequest(ctx, donationID, requestID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRequestNotFound
			}
			return err
		}
		return nil
	default:
		return domain.ErrInvalidRequestDecision
	}
}

func (s *donationService) GetRequests(ctx context.Context, donationID string) ([]*entities.DonationRequest, error) {
	if _, err := s.GetDonationByID(ctx, donationID); err != nil {
		return nil, err
	}
	return s.donationRepository.GetRequests(ctx, donationID)
}

func (s *donationService) CreateReport(ctx context.Context, donationID string, req domain.CreateReportRequest) error {
	if _, err := s.GetDonationByID(ctx, donationID); err != nil {
		return err
	}

	donationUUID, err := uuid.Parse(donationID)
	if err != nil {
		return domain.ErrParseUUID
	}
	reporterUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.donationRepository.AddReport(ctx, &entities.DonationReport{
		ID:         uuid.New(),
		DonationID: donationUUID,
		ReporterID: reporterUUID,
		Reason:     req.Reason,
		Status:     domain.ReportStatusPending,
	})
}

func (s *donationService) DeleteReport(ctx context.Context, donationID, reportID string) error {
	if err := s.donationRepository.DeleteReport(ctx, donationID, reportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReportNotFound
		}
		return err
	}
	return nil
}

func (s *donationService) ReviewReport(ctx context.Context, donationID, reportID string) error {
	return s.updateReportStatus(ctx, donationID, reportID, domain.ReportStatusReviewed)
}

func (s *donationService) ResolveReport(ctx context.Context, donationID, reportID string) error {
	return s.updateReportStatus(ctx, donationID, reportID, domain.ReportStatusResolved)
}

func (s *donationService) updateReportStatus(ctx context.Context, donationID, reportID, status string) error {
	if err := s.donationRepository.UpdateReportStatus(ctx, donationID, reportID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReportNotFound
		}
		return err
	}
	return nil
}

func (s *donationService) GetPendingReportDonations(ctx context.Context) ([]*domain.PendingReportDonation, error) {
	donations, err := s.donationRepository.GetDonationsWithPendingReports(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.PendingReportDonation, 0, len(donations))
	for _, donation := range donations {
		reports := make([]*domain.DonationReportItem, 0, len(donation.Reports))
		for _, report := range donation.Reports {
			item := &domain.DonationReportItem{
				ID:        report.ID.String(),
				Reason:    report.Reason,
				Status:    report.Status,
				CreatedAt: report.CreatedAt,
			}
			if report.Reporter != nil {
				item.Reporter = &domain.UserBrief{
					ID:    report.Reporter.ID.String(),
					Name:  report.Reporter.Name,
					Email: report.Reporter.Email,
				}
			}
			reports = append(reports, item)
		}

		entry := &domain.PendingReportDonation{
			ID:      donation.ID.String(),
			Item:    donation.Item,
			Reports: reports,
		}
		if donation.User != nil {
			entry.Donor = &domain.UserBrief{
				ID:    donation.User.ID.String(),
				Name:  donation.User.Name,
				Email: donation.User.Email,
			}
		}
		result = append(result, entry)
	}

	return result, nil
}

// ToggleLike removes the user's like when present, otherwise adds one, and
// returns the resulting like set. Two toggles with the same pair restore the
// original set.
func (s *donationService) ToggleLike(ctx context.Context, donationID, userID string) ([]*entities.DonationLike, error) {
	if _, err := s.GetDonationByID(ctx, donationID); err != nil {
		return nil, err
	}

	donationUUID, err := uuid.Parse(donationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	removed, err := s.donationRepository.RemoveLike(ctx, donationID, userID)
	if err != nil {
		return nil, err
	}
	if removed == 0 {
		if err := s.donationRepository.AddLike(ctx, &entities.DonationLike{
			ID:         uuid.New(),
			DonationID: donationUUID,
			UserID:     userUUID,
		}); err != nil {
			return nil, err
		}
	}

	return s.donationRepository.GetLikes(ctx, donationID)
}

func (s *donationService) ToggleSave(ctx context.Context, donationID, userID string) ([]*entities.DonationSave, error) {
	if _, err := s.GetDonationByID(ctx, donationID); err != nil {
		return nil, err
	}

	donationUUID, err := uuid.Parse(donationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	removed, err := s.donationRepository.RemoveSave(ctx, donationID, userID)
	if err != nil {
		return nil, err
	}
	if removed == 0 {
		if err := s.donationRepository.AddSave(ctx, &entities.DonationSave{
			ID:         uuid.New(),
			DonationID: donationUUID,
			UserID:     userUUID,
		}); err != nil {
			return nil, err
		}
	}

	return s.donationRepository.GetSaves(ctx, donationID)
}

func (s *donationService) AddComment(ctx context.Context, donationID, userID, content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.ErrEmptyCommentContent
	}

	if _, err := s.GetDonationByID(ctx, donationID); err != nil {
		return err
	}

	donationUUID, err := uuid.Parse(donationID)
	if err != nil {
		return domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.donationRepository.AddComment(ctx, &entities.DonationComment{
		ID:         uuid.New(),
		DonationID: donationUUID,
		UserID:     userUUID,
		Content:    content,
	})
}

func (s *donationService) UpdateComment(ctx context.Context, donationID, commentID, content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.ErrEmptyCommentContent
	}

	if err := s.donationRepository.UpdateComment(ctx, donationID, commentID, content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}
	return nil
}

func (s *donationService) DeleteComment(ctx context.Context, donationID, commentID string) error {
	if err := s.donationRepository.DeleteComment(ctx, donationID, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}
	return nil
}

// SelectRecipient sets the chosen recipient without checking the requests
// array, matching the established endpoint contract.
func (s *donationService) SelectRecipient(ctx context.Context, donationID, userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return domain.ErrParseUUID
	}

	if err := s.donationRepository.SetSelectedRecipient(ctx, donationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}
	return nil
}

func (s *donationService) AttachMedia(ctx context.Context, donationID string, files []*multipart.FileHeader) ([]string, error) {
	if _, err := s.GetDonationByID(ctx, donationID); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for i, file := range files {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s-%d", donationID, i),
			file,
			"donations",
			storage.AllowMedia...,
		)
		if err != nil {
			return nil, err
		}
		urls = append(urls, s.s3.GetPublicLinkKey(objectKey))
	}

	media, err := s.donationRepository.AppendMedia(ctx, donationID, urls)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return media, nil
}

func (s *donationService) ListMedia(ctx context.Context, donationID string) ([]string, error) {
	media, err := s.donationRepository.GetMedia(ctx, donationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return media, nil
}

func (s *donationService) RemoveMedia(ctx context.Context, donationID string, index int) ([]string, error) {
	media, err := s.donationRepository.RemoveMediaAt(ctx, donationID, index)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return media, nil
}
