package domain

import "errors"

var (
	MessageSuccessCreateMessage = "message created successfully"
	MessageSuccessGetMessages   = "messages retrieved successfully"
	MessageSuccessDeleteMessage = "message deleted successfully"

	MessageFailedCreateMessage = "failed to create message"
	MessageFailedGetMessages   = "failed to retrieve messages"
	MessageFailedDeleteMessage = "failed to delete message"

	ErrMessageNotFound = errors.New("message not found")
)

type (
	CreateMessageRequest struct {
		SenderID    string   `json:"sender_id" validate:"required,uuid"`
		RecipientID string   `json:"recipient_id" validate:"required,uuid"`
		Content     string   `json:"content" validate:"required"`
		Media       []string `json:"media" validate:"omitempty,dive,url"`
	}
)
