package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Timestamp struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Location struct {
	Country string `json:"country,omitempty"`
	State   string `json:"state,omitempty"`
	Address string `json:"address,omitempty"`
}

type User struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string         `json:"name"`
	LastName        string         `json:"last_name"`
	Email           string         `gorm:"uniqueIndex" json:"email"`
	Phone           string         `gorm:"uniqueIndex" json:"phone"`
	Password        string         `json:"-"`
	Role            string         `gorm:"default:user" json:"role"` // user, donor, sponsor, admin
	ProfilePhoto    string         `json:"profile_photo,omitempty"`
	BackgroundImage string         `json:"background_image,omitempty"`
	XPPoints        int            `json:"xp_points"`
	Birthday        *time.Time     `json:"birthday,omitempty"`
	Location        Location       `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Bio             string         `json:"bio,omitempty"`
	Availability    bool           `gorm:"default:true" json:"availability"`
	Gender          string         `json:"gender,omitempty"` // Male, Female
	Anonymity       bool           `json:"anonymity"`
	Interests       pq.StringArray `gorm:"type:text[]" json:"interests"`

	Reports []*UserReport `gorm:"foreignKey:UserID" json:"reports,omitempty"`
	Timestamp
}

type UserReport struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	ReporterID uuid.UUID `json:"reporter_id"`
	Reason     string    `json:"reason"`
	Status     string    `gorm:"default:pending" json:"status"` // pending, reviewed, resolved

	Reporter *User `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
	Timestamp
}
