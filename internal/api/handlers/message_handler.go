package handlers

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/internal/api/presenters"
	"GiveHub-Backend/pkg/message"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MessageHandler interface {
		CreateMessage(c *fiber.Ctx) error
		GetMyMessages(c *fiber.Ctx) error
		GetConversation(c *fiber.Ctx) error
		GetMessageByID(c *fiber.Ctx) error
		DeleteMessage(c *fiber.Ctx) error
		GetMyChats(c *fiber.Ctx) error
	}

	messageHandler struct {
		messageService message.MessageService
		validator      *validator.Validate
	}
)

func NewMessageHandler(messageService message.MessageService, validator *validator.Validate) MessageHandler {
	return &messageHandler{
		messageService: messageService,
		validator:      validator,
	}
}

func (h *messageHandler) CreateMessage(c *fiber.Ctx) error {
	req := new(domain.CreateMessageRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if req.SenderID == "" {
		req.SenderID = c.Locals("user_id").(string)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMessage, err)
	}

	created, err := h.messageService.CreateMessage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedCreateMessage, err)
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessCreateMessage)
}

func (h *messageHandler) GetMyMessages(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	messages, err := h.messageService.GetMessagesForUser(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetMessages, err)
	}
	return presenters.SuccessResponse(c, messages, fiber.StatusOK, domain.MessageSuccessGetMessages)
}

func (h *messageHandler) GetConversation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	messages, err := h.messageService.GetConversation(c.Context(), userID, c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetMessages, err)
	}
	return presenters.SuccessResponse(c, messages, fiber.StatusOK, domain.MessageSuccessGetMessages)
}

func (h *messageHandler) GetMessageByID(c *fiber.Ctx) error {
	found, err := h.messageService.GetMessageByID(c.Context(), c.Params("messageId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetMessages, err)
	}
	return presenters.SuccessResponse(c, found, fiber.StatusOK, domain.MessageSuccessGetMessages)
}

func (h *messageHandler) DeleteMessage(c *fiber.Ctx) error {
	if err := h.messageService.DeleteMessage(c.Context(), c.Params("messageId")); err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedDeleteMessage, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMessage)
}

func (h *messageHandler) GetMyChats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	chats, err := h.messageService.GetChatsForUser(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetMessages, err)
	}
	return presenters.SuccessResponse(c, chats, fiber.StatusOK, domain.MessageSuccessGetMessages)
}
