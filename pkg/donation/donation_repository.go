package donation

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetAllDonations(ctx context.Context) ([]*entities.Donation, error)
		UpdateDonation(ctx context.Context, id string, updates map[string]interface{}) error
		DeleteDonation(ctx context.Context, id string) error
		GetDonationsByStatus(ctx context.Context, status string) ([]*entities.Donation, error)
		GetDonationsByCategory(ctx context.Context, category string) ([]*entities.Donation, error)
		GetDonationsByDonor(ctx context.Context, donorID string) ([]*entities.Donation, error)
		GetDonationsWithPendingReports(ctx context.Context) ([]*entities.Donation, error)

		HasActiveRequest(ctx context.Context, donationID, requesterID string) (bool, error)
		AddRequest(ctx context.Context, request *entities.DonationRequest) error
		GetRequests(ctx context.Context, donationID string) ([]*entities.DonationRequest, error)
		AcceptRequest(ctx context.Context, donationID, requestID string) error
		RejectRequest(ctx context.Context, donationID, requestID string) error

		AddReport(ctx context.Context, report *entities.DonationReport) error
		DeleteReport(ctx context.Context, donationID, reportID string) error
		UpdateReportStatus(ctx context.Context, donationID, reportID, status string) error

		RemoveLike(ctx context.Context, donationID, userID string) (int64, error)
		AddLike(ctx context.Context, like *entities.DonationLike) error
		GetLikes(ctx context.Context, donationID string) ([]*entities.DonationLike, error)
		RemoveSave(ctx context.Context, donationID, userID string) (int64, error)
		AddSave(ctx context.Context, save *entities.DonationSave) error
		GetSaves(ctx context.Context, donationID string) ([]*entities.DonationSave, error)

		AddComment(ctx context.Context, comment *entities.DonationComment) error
		UpdateComment(ctx context.Context, donationID, commentID, content string) error
		DeleteComment(ctx context.Context, donationID, commentID string) error

		SetSelectedRecipient(ctx context.Context, donationID, userID string) error

		AppendMedia(ctx context.Context, donationID string, urls []string) ([]string, error)
		RemoveMediaAt(ctx context.Context, donationID string, index int) ([]string, error)
		GetMedia(ctx context.Context, donationID string) ([]string, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Requests").
		Preload("Reports").
		Preload("Comments").
		Preload("Likes").
		Preload("Saves").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetAllDonations(ctx context.Context) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) UpdateDonation(ctx context.Context, id string, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
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

func (r *donationRepository) DeleteDonation(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&entities.Donation{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *donationRepository) GetDonationsByStatus(ctx context.Context, status string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetDonationsByCategory(ctx context.Context, category string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetDonationsByDonor(ctx context.Context, donorID string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", donorID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetDonationsWithPendingReports(ctx context.Context) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Reports").
		Preload("Reports.Reporter").
		Where("EXISTS (SELECT 1 FROM donation_reports WHERE donation_reports.donation_id = donations.id AND donation_reports.status = ?)", domain.ReportStatusPending).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) HasActiveRequest(ctx context.Context, donationID, requesterID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.DonationRequest{}).
		Where("donation_id = ? AND requester_id = ? AND status != ?", donationID, requesterID, domain.RequestStatusRejected).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *donationRepository) AddRequest(ctx context.Context, request *entities.DonationRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *donationRepository) GetRequests(ctx context.Context, donationID string) ([]*entities.DonationRequest, error) {
	var requests []*entities.DonationRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Where("donation_id = ?", donationID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// AcceptRequest runs the accept cascade in one transaction: the donation row
// is locked, the target request becomes accepted, every sibling becomes
// rejected, and the donation moves to completed. A donation that is already
// completed fails with ErrDonationAlreadyDecided, so of two concurrent
// accepts only the first one wins.
func (r *donationRepository) AcceptRequest(ctx context.Context, donationID, requestID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var donation entities.Donation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", donationID).
			First(&donation).Error; err != nil {
			return err
		}

		if donation.Status == domain.DonationStatusCompleted {
			return domain.ErrDonationAlreadyDecided
		}

		res := tx.Model(&entities.DonationRequest{}).
			Where("id = ? AND donation_id = ?", requestID, donationID).
			Update("status", domain.RequestStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Model(&entities.DonationRequest{}).
			Where("donation_id = ? AND id != ?", donationID, requestID).
			Update("status", domain.RequestStatusRejected).Error; err != nil {
			return err
		}

		return tx.Model(&entities.Donation{}).
			Where("id = ?", donationID).
			Update("status", domain.DonationStatusCompleted).Error
	})
}

func (r *donationRepository) RejectRequest(ctx context.Context, donationID, requestID string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.DonationRequest{}).
		Where("id = ? AND donation_id = ?", requestID, donationID).
		Update("status", domain.RequestStatusRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *donationRepository) AddReport(ctx context.Context, report *entities.DonationReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *donationRepository) DeleteReport(ctx context.Context, donationID, reportID string) error {
	res := r.db.WithContext(ctx).
		Delete(&entities.DonationReport{}, "id = ? AND donation_id = ?", reportID, donationID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *donationRepository) UpdateReportStatus(ctx context.Context, donationID, reportID, status string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.DonationReport{}).
		Where("id = ? AND donation_id = ?", reportID, donationID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *donationRepository) RemoveLike(ctx context.Context, donationID, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Delete(&entities.DonationLike{}, "donation_id = ? AND user_id = ?", donationID, userID)
	return res.RowsAffected, res.Error
}

func (r *donationRepository) AddLike(ctx context.Context, like *entities.DonationLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *donationRepository) GetLikes(ctx context.Context, donationID string) ([]*entities.DonationLike, error) {
	var likes []*entities.DonationLike
	if err := r.db.WithContext(ctx).
		Where("donation_id = ?", donationID).
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *donationRepository) RemoveSave(ctx context.Context, donationID, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Delete(&entities.DonationSave{}, "donation_id = ? AND user_id = ?", donationID, userID)
	return res.RowsAffected, res.Error
}

func (r *donationRepository) AddSave(ctx context.Context, save *entities.DonationSave) error {
	return r.db.WithContext(ctx).Create(save).Error
}

func (r *donationRepository) GetSaves(ctx context.Context, donationID string) ([]*entities.DonationSave, error) {
	var saves []*entities.DonationSave
	if err := r.db.WithContext(ctx).
		Where("donation_id = ?", donationID).
		Find(&saves).Error; err != nil {
		return nil, err
	}
	return saves, nil
}

func (r *donationRepository) AddComment(ctx context.Context, comment *entities.DonationComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *donationRepository) UpdateComment(ctx context.Context, donationID, commentID, content string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.DonationComment{}).
		Where("id = ? AND donation_id = ?", commentID, donationID).
		Update("content", content)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *donationRepository) DeleteComment(ctx context.Context, donationID, commentID string) error {
	res := r.db.WithContext(ctx).
		Delete(&entities.DonationComment{}, "id = ? AND donation_id = ?", commentID, donationID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *donationRepository) SetSelectedRecipient(ctx context.Context, donationID, userID string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ?", donationID).
		Update("selected_recipient_id", userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *donationRepository) AppendMedia(ctx context.Context, donationID string, urls []string) ([]string, error) {
	var media []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var donation entities.Donation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", donationID).
			First(&donation).Error; err != nil {
			return err
		}

		donation.Media = append(donation.Media, urls...)
		if err := tx.Model(&entities.Donation{}).
			Where("id = ?", donationID).
			Update("media", donation.Media).Error; err != nil {
			return err
		}

		media = donation.Media
		return nil
	})
	return media, err
}

func (r *donationRepository) RemoveMediaAt(ctx context.Context, donationID string, index int) ([]string, error) {
	var media []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var donation entities.Donation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", donationID).
			First(&donation).Error; err != nil {
			return err
		}

		if index < 0 || index >= len(donation.Media) {
			return domain.ErrInvalidMediaIndex
		}

		donation.Media = append(donation.Media[:index], donation.Media[index+1:]...)
		if err := tx.Model(&entities.Donation{}).
			Where("id = ?", donationID).
			Update("media", donation.Media).Error; err != nil {
			return err
		}

		media = donation.Media
		return nil
	})
	return media, err
}

func (r *donationRepository) GetMedia(ctx context.Context, donationID string) ([]string, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Select("id", "media").
		Where("id = ?", donationID).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return donation.Media, nil
}
