package entities

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Message struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SenderID    uuid.UUID      `json:"sender_id"`
	RecipientID uuid.UUID      `json:"recipient_id"`
	ChatID      *uuid.UUID     `json:"chat_id,omitempty"`
	Content     string         `json:"content"`
	Media       pq.StringArray `gorm:"type:text[]" json:"media"`

	Sender    *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipient *User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Timestamp
}

type Chat struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MemberA  uuid.UUID  `json:"member_a"`
	MemberB  uuid.UUID  `json:"member_b"`
	Messages []*Message `gorm:"foreignKey:ChatID" json:"messages,omitempty"`

	Timestamp
}
