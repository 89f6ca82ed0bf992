package entities

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Donation struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID              uuid.UUID      `json:"user_id"`
	Item                string         `json:"item"`
	Description         string         `json:"description"`
	Category            string         `json:"category"`                      // Clothing, Electronics, Furniture, ...
	Status              string         `gorm:"default:pending" json:"status"` // pending, approved, rejected, completed, shut_down
	Media               pq.StringArray `gorm:"type:text[]" json:"media"`
	SelectedRecipientID *uuid.UUID     `json:"selected_recipient_id,omitempty"`

	User              *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SelectedRecipient *User              `gorm:"foreignKey:SelectedRecipientID" json:"selected_recipient,omitempty"`
	Requests          []*DonationRequest `gorm:"foreignKey:DonationID" json:"requests,omitempty"`
	Reports           []*DonationReport  `gorm:"foreignKey:DonationID" json:"reports,omitempty"`
	Comments          []*DonationComment `gorm:"foreignKey:DonationID" json:"comments,omitempty"`
	Likes             []*DonationLike    `gorm:"foreignKey:DonationID" json:"likes,omitempty"`
	Saves             []*DonationSave    `gorm:"foreignKey:DonationID" json:"saves,omitempty"`
	Timestamp
}

type DonationRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID  uuid.UUID `json:"donation_id"`
	RequesterID uuid.UUID `json:"requester_id"`
	Status      string    `gorm:"default:pending" json:"status"` // pending, accepted, rejected

	Requester *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Timestamp
}

type DonationReport struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID uuid.UUID `json:"donation_id"`
	ReporterID uuid.UUID `json:"reporter_id"`
	Reason     string    `json:"reason"`
	Status     string    `gorm:"default:pending" json:"status"` // pending, reviewed, resolved

	Reporter *User `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
	Timestamp
}

type DonationComment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID uuid.UUID `json:"donation_id"`
	UserID     uuid.UUID `json:"user_id"`
	Content    string    `json:"content"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Timestamp
}

type DonationLike struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID uuid.UUID `gorm:"uniqueIndex:idx_donation_like" json:"donation_id"`
	UserID     uuid.UUID `gorm:"uniqueIndex:idx_donation_like" json:"user_id"`

	Timestamp
}

type DonationSave struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID uuid.UUID `gorm:"uniqueIndex:idx_donation_save" json:"donation_id"`
	UserID     uuid.UUID `gorm:"uniqueIndex:idx_donation_save" json:"user_id"`

	Timestamp
}
