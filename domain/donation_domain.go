package domain

import (
	"errors"
	"time"
)

const (
	DonationStatusPending   = "pending"
	DonationStatusApproved  = "approved"
	DonationStatusRejected  = "rejected"
	DonationStatusCompleted = "completed"
	DonationStatusShutDown  = "shut_down"

	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"

	ReportStatusPending  = "pending"
	ReportStatusReviewed = "reviewed"
	ReportStatusResolved = "resolved"
)

var (
	MessageSuccessCreateDonation  = "donation created successfully"
	MessageSuccessGetDonations    = "donations retrieved successfully"
	MessageSuccessUpdateDonation  = "donation updated successfully"
	MessageSuccessDeleteDonation  = "donation deleted successfully"
	MessageSuccessSubmitRequest   = "request submitted successfully"
	MessageSuccessDecideRequest   = "request status updated successfully"
	MessageSuccessGetRequests     = "requests retrieved successfully"
	MessageSuccessCreateReport    = "report created successfully"
	MessageSuccessDeleteReport    = "report deleted successfully"
	MessageSuccessUpdateReport    = "report status updated successfully"
	MessageSuccessToggleLike      = "donation like toggled successfully"
	MessageSuccessToggleSave      = "donation save toggled successfully"
	MessageSuccessAddComment      = "comment added successfully"
	MessageSuccessUpdateComment   = "comment updated successfully"
	MessageSuccessDeleteComment   = "comment deleted successfully"
	MessageSuccessSelectRecipient = "recipient selected successfully"
	MessageSuccessAttachMedia     = "media uploaded successfully"
	MessageSuccessGetMedia        = "media retrieved successfully"
	MessageSuccessRemoveMedia     = "media deleted successfully"

	MessageFailedCreateDonation  = "failed to create donation"
	MessageFailedGetDonations    = "failed to retrieve donations"
	MessageFailedUpdateDonation  = "failed to update donation"
	MessageFailedDeleteDonation  = "failed to delete donation"
	MessageFailedSubmitRequest   = "failed to submit request"
	MessageFailedDecideRequest   = "failed to update request status"
	MessageFailedGetRequests     = "failed to retrieve requests"
	MessageFailedCreateReport    = "failed to create report"
	MessageFailedDeleteReport    = "failed to delete report"
	MessageFailedUpdateReport    = "failed to update report status"
	MessageFailedToggleLike      = "failed to toggle donation like"
	MessageFailedToggleSave      = "failed to toggle donation save"
	MessageFailedAddComment      = "failed to add comment"
	MessageFailedUpdateComment   = "failed to update comment"
	MessageFailedDeleteComment   = "failed to delete comment"
	MessageFailedSelectRecipient = "failed to select recipient"
	MessageFailedAttachMedia     = "failed to upload media"
	MessageFailedGetMedia        = "failed to retrieve media"
	MessageFailedRemoveMedia     = "failed to delete media"

	ErrDonationNotFound        = errors.New("donation not found")
	ErrRequestNotFound         = errors.New("request not found")
	ErrReportNotFound          = errors.New("report not found")
	ErrCommentNotFound         = errors.New("comment not found")
	ErrAlreadyRequested        = errors.New("user already requested this donation")
	ErrDonationAlreadyDecided  = errors.New("donation already has an accepted request")
	ErrInvalidDonationCategory = errors.New("invalid donation category")
	ErrInvalidDonationStatus   = errors.New("invalid donation status")
	ErrInvalidRequestDecision  = errors.New("invalid request decision")
	ErrEmptyCommentContent     = errors.New("comment content must not be empty")
	ErrInvalidMediaIndex       = errors.New("invalid media index")
	ErrNoMediaProvided         = errors.New("no media files provided")
)

// DonationCategories is the fixed category set; writes with any other value
// are rejected before touching the database.
var DonationCategories = []string{
	"Clothing",
	"Electronics",
	"Furniture",
	"Books",
	"Toys",
	"Household Items",
	"Sports Equipment",
	"Jewelry",
	"Tools",
	"Appliances",
	"Other",
}

func IsValidDonationCategory(category string) bool {
	for _, c := range DonationCategories {
		if c == category {
			return true
		}
	}
	return false
}

func IsValidDonationStatus(status string) bool {
	switch status {
	case DonationStatusPending, DonationStatusApproved, DonationStatusRejected,
		DonationStatusCompleted, DonationStatusShutDown:
		return true
	}
	return false
}

type (
	CreateDonationRequest struct {
		Item        string   `json:"item" validate:"required"`
		Description string   `json:"description" validate:"required"`
		Category    string   `json:"category" validate:"required"`
		Media       []string `json:"media" validate:"omitempty,dive,url"`
	}

	UpdateDonationRequest struct {
		Item        string `json:"item" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
		Category    string `json:"category" validate:"omitempty"`
		Status      string `json:"status" validate:"omitempty"`
	}

	SubmitDonationRequest struct {
		UserID string `json:"userId" validate:"required,uuid"`
	}

	DecideRequestStatus struct {
		Status string `json:"status" validate:"required"`
	}

	ApproveRequest struct {
		RequestID string `json:"requestId" validate:"required,uuid"`
	}

	CreateReportRequest struct {
		UserID string `json:"userId" validate:"required,uuid"`
		Reason string `json:"reason" validate:"required"`
	}

	ToggleRequest struct {
		UserID string `json:"userId" validate:"required,uuid"`
	}

	AddCommentRequest struct {
		UserID  string `json:"userId" validate:"required,uuid"`
		Content string `json:"content" validate:"required"`
	}

	UpdateCommentRequest struct {
		Content string `json:"content" validate:"required"`
	}

	SelectRecipientRequest struct {
		UserID string `json:"userId" validate:"required,uuid"`
	}

	PendingReportDonation struct {
		ID      string                `json:"id"`
		Item    string                `json:"item"`
		Donor   *UserBrief            `json:"donor,omitempty"`
		Reports []*DonationReportItem `json:"reports"`
	}

	DonationReportItem struct {
		ID        string     `json:"id"`
		Reason    string     `json:"reason"`
		Status    string     `json:"status"`
		Reporter  *UserBrief `json:"reporter,omitempty"`
		CreatedAt time.Time  `json:"created_at"`
	}
)
