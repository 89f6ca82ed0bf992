package message_test

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/entities"
	"GiveHub-Backend/pkg/message"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockMessageRepository struct {
	mock.Mock
}

func (m *mockMessageRepository) CreateMessage(ctx context.Context, msg *entities.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockMessageRepository) GetMessageByID(ctx context.Context, id string) (*entities.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Message), args.Error(1)
}

func (m *mockMessageRepository) GetMessagesForUser(ctx context.Context, userID string) ([]*entities.Message, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.Message), args.Error(1)
}

func (m *mockMessageRepository) GetMessagesBetween(ctx context.Context, userA, userB string) ([]*entities.Message, error) {
	args := m.Called(ctx, userA, userB)
	return args.Get(0).([]*entities.Message), args.Error(1)
}

func (m *mockMessageRepository) DeleteMessage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockMessageRepository) GetOrCreateChat(ctx context.Context, memberA, memberB uuid.UUID) (*entities.Chat, error) {
	args := m.Called(ctx, memberA, memberB)
	return args.Get(0).(*entities.Chat), args.Error(1)
}

func (m *mockMessageRepository) GetChatsForUser(ctx context.Context, userID string) ([]*entities.Chat, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entities.Chat), args.Error(1)
}

func TestCreateMessageAttachesChat(t *testing.T) {
	repo := new(mockMessageRepository)
	sender := uuid.New()
	recipient := uuid.New()
	chat := &entities.Chat{ID: uuid.New(), MemberA: sender, MemberB: recipient}

	repo.On("GetOrCreateChat", mock.Anything, sender, recipient).Return(chat, nil)
	repo.On("CreateMessage", mock.Anything, mock.MatchedBy(func(msg *entities.Message) bool {
		return msg.SenderID == sender &&
			msg.RecipientID == recipient &&
			msg.ChatID != nil && *msg.ChatID == chat.ID &&
			msg.Content == "hello"
	})).Return(nil)

	svc := message.NewMessageService(repo)
	created, err := svc.CreateMessage(context.Background(), domain.CreateMessageRequest{
		SenderID:    sender.String(),
		RecipientID: recipient.String(),
		Content:     "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", created.Content)
	repo.AssertExpectations(t)
}

func TestCreateMessageBadSenderID(t *testing.T) {
	svc := message.NewMessageService(new(mockMessageRepository))

	_, err := svc.CreateMessage(context.Background(), domain.CreateMessageRequest{
		SenderID:    "nope",
		RecipientID: uuid.NewString(),
		Content:     "hello",
	})
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestDeleteMessageNotFound(t *testing.T) {
	repo := new(mockMessageRepository)
	repo.On("DeleteMessage", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)

	svc := message.NewMessageService(repo)
	err := svc.DeleteMessage(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrMessageNotFound)
}

func TestGetMessageByIDNotFound(t *testing.T) {
	repo := new(mockMessageRepository)
	repo.On("GetMessageByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := message.NewMessageService(repo)
	_, err := svc.GetMessageByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrMessageNotFound)
}
