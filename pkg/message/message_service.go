package message

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MessageService interface {
		CreateMessage(ctx context.Context, req domain.CreateMessageRequest) (*entities.Message, error)
		GetMessageByID(ctx context.Context, id string) (*entities.Message, error)
		GetMessagesForUser(ctx context.Context, userID string) ([]*entities.Message, error)
		GetConversation(ctx context.Context, userA, userB string) ([]*entities.Message, error)
		DeleteMessage(ctx context.Context, id string) error
		GetChatsForUser(ctx context.Context, userID string) ([]*entities.Chat, error)
	}

	messageService struct {
		messageRepository MessageRepository
	}
)

func NewMessageService(messageRepository MessageRepository) MessageService {
	return &messageService{messageRepository: messageRepository}
}

func (s *messageService) CreateMessage(ctx context.Context, req domain.CreateMessageRequest) (*entities.Message, error) {
	senderUUID, err := uuid.Parse(req.SenderID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	recipientUUID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	chat, err := s.messageRepository.GetOrCreateChat(ctx, senderUUID, recipientUUID)
	if err != nil {
		return nil, err
	}

	message := &entities.Message{
		ID:          uuid.New(),
		SenderID:    senderUUID,
		RecipientID: recipientUUID,
		ChatID:      &chat.ID,
		Content:     req.Content,
		Media:       req.Media,
	}
	if err := s.messageRepository.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *messageService) GetMessageByID(ctx context.Context, id string) (*entities.Message, error) {
	message, err := s.messageRepository.GetMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return message, nil
}

func (s *messageService) GetMessagesForUser(ctx context.Context, userID string) ([]*entities.Message, error) {
	return s.messageRepository.GetMessagesForUser(ctx, userID)
}

func (s *messageService) GetConversation(ctx context.Context, userA, userB string) ([]*entities.Message, error) {
	return s.messageRepository.GetMessagesBetween(ctx, userA, userB)
}

func (s *messageService) DeleteMessage(ctx context.Context, id string) error {
	if err := s.messageRepository.DeleteMessage(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMessageNotFound
		}
		return err
	}
	return nil
}

func (s *messageService) GetChatsForUser(ctx context.Context, userID string) ([]*entities.Chat, error) {
	return s.messageRepository.GetChatsForUser(ctx, userID)
}
