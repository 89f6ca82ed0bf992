package handlers

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/internal/api/presenters"
	"GiveHub-Backend/pkg/user"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error

		GetUsers(c *fiber.Ctx) error
		GetUserByID(c *fiber.Ctx) error
		PatchProfile(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error

		ReportUser(c *fiber.Ctx) error
		GetReportedUsers(c *fiber.Ctx) error
		GetUserRanking(c *fiber.Ctx) error

		UploadProfilePhoto(c *fiber.Ctx) error
		DeleteProfilePhoto(c *fiber.Ctx) error
		UploadBackgroundImage(c *fiber.Ctx) error
		DeleteBackgroundImage(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	created, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedRegister, err)
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedLogin, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

// Logout acknowledges the logout. Tokens are stateless, so the client
// discards its token and the server has nothing to invalidate.
func (h *userHandler) Logout(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	found, err := h.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetUsers, err)
	}
	return presenters.SuccessResponse(c, found, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *userHandler) GetUsers(c *fiber.Ctx) error {
	filter := domain.UserFilter{
		Role:     c.Query("role"),
		Gender:   c.Query("gender"),
		Country:  c.Query("country"),
		State:    c.Query("state"),
		Interest: c.Query("interest"),
	}

	if v := c.Query("availability"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			filter.Availability = &b
		}
	}
	if v := c.Query("anonymity"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			filter.Anonymity = &b
		}
	}
	if v := c.Query("min_age"); v != "" {
		filter.MinAge, _ = strconv.Atoi(v)
	}
	if v := c.Query("max_age"); v != "" {
		filter.MaxAge, _ = strconv.Atoi(v)
	}
	if v := c.Query("joined_after"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUsers, domain.ErrInvalidDateRange)
		}
		filter.JoinedAfter = &t
	}
	if v := c.Query("joined_before"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUsers, domain.ErrInvalidDateRange)
		}
		filter.JoinedBefore = &t
	}

	users, err := h.userService.FilterUsers(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetUsers, err)
	}
	return presenters.SuccessResponse(c, users, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *userHandler) GetUserByID(c *fiber.Ctx) error {
	found, err := h.userService.GetUserByID(c.Context(), c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetUsers, err)
	}
	return presenters.SuccessResponse(c, found, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *userHandler) PatchProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.PatchProfileRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUser, err)
	}

	updated, err := h.userService.PatchProfile(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedUpdateUser, err)
	}
	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessUpdateUser)
}

func (h *userHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.Context(), c.Params("userId")); err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedDeleteUser, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUser)
}

func (h *userHandler) ReportUser(c *fiber.Ctx) error {
	req := new(domain.ReportUserRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if req.UserID == "" {
		req.UserID = c.Locals("user_id").(string)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReportUser, err)
	}

	reported, err := h.userService.ReportUser(c.Context(), c.Params("userId"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedReportUser, err)
	}
	return presenters.SuccessResponse(c, reported, fiber.StatusCreated, domain.MessageSuccessReportUser)
}

func (h *userHandler) GetReportedUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetReportedUsers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetUsers, err)
	}
	return presenters.SuccessResponse(c, users, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *userHandler) GetUserRanking(c *fiber.Ctx) error {
	users, err := h.userService.GetUserRanking(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetUsers, err)
	}
	return presenters.SuccessResponse(c, users, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *userHandler) UploadProfilePhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadUserMedia, err)
	}

	url, err := h.userService.UpdateProfilePhoto(c.Context(), userID, file)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedUploadUserMedia, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"url": url}, fiber.StatusOK, domain.MessageSuccessUploadUserMedia)
}

func (h *userHandler) DeleteProfilePhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.userService.DeleteProfilePhoto(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedDeleteUserMedia, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUserMedia)
}

func (h *userHandler) UploadBackgroundImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadUserMedia, err)
	}

	url, err := h.userService.UpdateBackgroundImage(c.Context(), userID, file)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedUploadUserMedia, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"url": url}, fiber.StatusOK, domain.MessageSuccessUploadUserMedia)
}

func (h *userHandler) DeleteBackgroundImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.userService.DeleteBackgroundImage(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedDeleteUserMedia, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUserMedia)
}
