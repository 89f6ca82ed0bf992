package message

import (
	"GiveHub-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MessageRepository interface {
		CreateMessage(ctx context.Context, message *entities.Message) error
		GetMessageByID(ctx context.Context, id string) (*entities.Message, error)
		GetMessagesForUser(ctx context.Context, userID string) ([]*entities.Message, error)
		GetMessagesBetween(ctx context.Context, userA, userB string) ([]*entities.Message, error)
		DeleteMessage(ctx context.Context, id string) error

		GetOrCreateChat(ctx context.Context, memberA, memberB uuid.UUID) (*entities.Chat, error)
		GetChatsForUser(ctx context.Context, userID string) ([]*entities.Chat, error)
	}

	messageRepository struct {
		db *gorm.DB
	}
)

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) CreateMessage(ctx context.Context, message *entities.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) GetMessageByID(ctx context.Context, id string) (*entities.Message, error) {
	var message entities.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		Where("id = ?", id).
		First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) GetMessagesForUser(ctx context.Context, userID string) ([]*entities.Message, error) {
	var messages []*entities.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) GetMessagesBetween(ctx context.Context, userA, userB string) ([]*entities.Message, error) {
	var messages []*entities.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Recipient").
		Where(
			"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA,
		).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) DeleteMessage(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Message{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *messageRepository) GetOrCreateChat(ctx context.Context, memberA, memberB uuid.UUID) (*entities.Chat, error) {
	var chat entities.Chat
	err := r.db.WithContext(ctx).
		Where(
			"(member_a = ? AND member_b = ?) OR (member_a = ? AND member_b = ?)",
			memberA, memberB, memberB, memberA,
		).
		First(&chat).Error
	if err == nil {
		return &chat, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	chat = entities.Chat{
		ID:      uuid.New(),
		MemberA: memberA,
		MemberB: memberB,
	}
	if err := r.db.WithContext(ctx).Create(&chat).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}

func (r *messageRepository) GetChatsForUser(ctx context.Context, userID string) ([]*entities.Chat, error) {
	var chats []*entities.Chat
	if err := r.db.WithContext(ctx).
		Preload("Messages").
		Where("member_a = ? OR member_b = ?", userID, userID).
		Order("updated_at DESC").
		Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}
