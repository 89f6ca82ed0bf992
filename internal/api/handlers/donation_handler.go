package handlers

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/internal/api/presenters"
	"GiveHub-Backend/pkg/donation"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		GetDonations(c *fiber.Ctx) error
		GetDonationByID(c *fiber.Ctx) error
		UpdateDonation(c *fiber.Ctx) error
		DeleteDonation(c *fiber.Ctx) error

		SubmitRequest(c *fiber.Ctx) error
		GetRequests(c *fiber.Ctx) error
		DecideRequest(c *fiber.Ctx) error
		ApproveRequest(c *fiber.Ctx) error

		CreateReport(c *fiber.Ctx) error
		DeleteReport(c *fiber.Ctx) error
		ReviewReport(c *fiber.Ctx) error
		ResolveReport(c *fiber.Ctx) error
		GetPendingReports(c *fiber.Ctx) error

		ToggleLike(c *fiber.Ctx) error
		ToggleSave(c *fiber.Ctx) error

		AddComment(c *fiber.Ctx) error
		UpdateComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error

		SelectRecipient(c *fiber.Ctx) error

		AttachMedia(c *fiber.Ctx) error
		ListMedia(c *fiber.Ctx) error
		RemoveMedia(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	created, err := h.donationService.CreateDonation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) GetDonations(c *fiber.Ctx) error {
	ctx := c.Context()

	var err error
	var donations interface{}
	switch {
	case c.Query("category") != "":
		donations, err = h.donationService.GetDonationsByCategory(ctx, c.Query("category"))
	case c.Query("status") != "":
		donations, err = h.donationService.GetDonationsByStatus(ctx, c.Query("status"))
	case c.Query("donor") != "":
		donations, err = h.donationService.GetDonationsByDonor(ctx, c.Query("donor"))
	default:
		donations, err = h.donationService.GetAllDonations(ctx)
	}
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetDonationByID(c *fiber.Ctx) error {
	found, err := h.donationService.GetDonationByID(c.Context(), c.Params("donationId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetDonations, err)
	}
	return presenters.SuccessResponse(c, found, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) UpdateDonation(c *fiber.Ctx) error {
	req := new(domain.UpdateDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonation, err)
	}

	updated, err := h.donationService.UpdateDonation(c.Context(), c.Params("donationId"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedUpdateDonation, err)
	}
	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessUpdateDonation)
}

func (h *donationHandler) DeleteDonation(c *fiber.Ctx) error {
	if err := h.donationService.DeleteDonation(c.Context(), c.Params("donationId")); err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedDeleteDonation, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDonation)
}

func (h *donationHandler) SubmitRequest(c *fiber.Ctx) error {
	req := new(domain.SubmitDonationRequest)
	_ = c.BodyParser(req)

	requesterID := req.UserID
	if requesterID == "" {
		requesterID = c.Locals("user_id").(string)
	}

	if err := h.donationService.SubmitRequest(c.Context(), c.Params("donationId"), requesterID); err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedSubmitRequest, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSubmitRequest)
}

func (h *donationHandler) GetRequests(c *fiber.Ctx) error {
	requests, err := h.donationService.GetRequests(c.Context(), c.Params("donationId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetRequests, err)
	}
	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetRequests)
}

func (h *donationHandler) DecideRequest(c *fiber.Ctx) error {
	req := new(domain.DecideRequestStatus)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDecideRequest, err)
	}

	err := h.donationService.DecideRequest(
		c.Context(),
		c.Params("donationId"),
		c.Params("requestId"),
		req.Status,
	)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedDecideRequest, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDecideRequest)
}

// ApproveRequest is the admin shortcut; it runs the same accept path as
// DecideRequest so siblings reject and the donation completes in one
// transaction.
func (h *donationHandler) ApproveRequest(c *fiber.Ctx) error {
	req := new(domain.ApproveRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDecideRequest, err)
	}

	err := h.donationService.DecideRequest(
		c.Context(),
		c.Params("donationId"),
		req.RequestID,
		domain.RequestStatusAccepted,
	)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedDecideRequest, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDecideRequest)
}

func (h *donationHandler) CreateReport(c *fiber.Ctx) error {
	req := new(domain.CreateReportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if req.UserID == "" {
		req.UserID = c.Locals("user_id").(string)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReport, err)
	}

	if err := h.donationService.CreateReport(c.Context(), c.Params("donationId"), *req); err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedCreateReport, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessCreateReport)
}

func (h *donationHandler) DeleteReport(c *fiber.Ctx) error {
	err := h.donationService.DeleteReport(c.Context(), c.Params("donationId"), c.Params("reportId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedDeleteReport, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReport)
}

func (h *donationHandler) ReviewReport(c *fiber.Ctx) error {
	err := h.donationService.ReviewReport(c.Context(), c.Params("donationId"), c.Params("reportId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedUpdateReport, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateReport)
}

func (h *donationHandler) ResolveReport(c *fiber.Ctx) error {
	err := h.donationService.ResolveReport(c.Context(), c.Params("donationId"), c.Params("reportId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedUpdateReport, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateReport)
}

func (h *donationHandler) GetPendingReports(c *fiber.Ctx) error {
	donations, err := h.donationService.GetPendingReportDonations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetDonations, err)
	}
	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) ToggleLike(c *fiber.Ctx) error {
	req := new(domain.ToggleRequest)
	_ = c.BodyParser(req)

	userID := req.UserID
	if userID == "" {
		userID = c.Locals("user_id").(string)
	}

	likes, err := h.donationService.ToggleLike(c.Context(), c.Params("donationId"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedToggleLike, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"likes": likes}, fiber.StatusOK, domain.MessageSuccessToggleLike)
}

func (h *donationHandler) ToggleSave(c *fiber.Ctx) error {
	req := new(domain.ToggleRequest)
	_ = c.BodyParser(req)

	userID := req.UserID
	if userID == "" {
		userID = c.Locals("user_id").(string)
	}

	saves, err := h.donationService.ToggleSave(c.Context(), c.Params("donationId"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedToggleSave, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"saves": saves}, fiber.StatusOK, domain.MessageSuccessToggleSave)
}

func (h *donationHandler) AddComment(c *fiber.Ctx) error {
	req := new(domain.AddCommentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if req.UserID == "" {
		req.UserID = c.Locals("user_id").(string)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddComment, err)
	}

	err := h.donationService.AddComment(c.Context(), c.Params("donationId"), req.UserID, req.Content)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedAddComment, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddComment)
}

func (h *donationHandler) UpdateComment(c *fiber.Ctx) error {
	req := new(domain.UpdateCommentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateComment, err)
	}

	err := h.donationService.UpdateComment(c.Context(), c.Params("donationId"), c.Params("commentId"), req.Content)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedUpdateComment, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateComment)
}

func (h *donationHandler) DeleteComment(c *fiber.Ctx) error {
	err := h.donationService.DeleteComment(c.Context(), c.Params("donationId"), c.Params("commentId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedDeleteComment, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}

func (h *donationHandler) SelectRecipient(c *fiber.Ctx) error {
	req := new(domain.SelectRecipientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSelectRecipient, err)
	}

	if err := h.donationService.SelectRecipient(c.Context(), c.Params("donationId"), req.UserID); err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedSelectRecipient, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSelectRecipient)
}

func (h *donationHandler) AttachMedia(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	files := form.File["media"]
	if len(files) == 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAttachMedia, domain.ErrNoMediaProvided)
	}

	media, err := h.donationService.AttachMedia(c.Context(), c.Params("donationId"), files)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedAttachMedia, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"media": media}, fiber.StatusCreated, domain.MessageSuccessAttachMedia)
}

func (h *donationHandler) ListMedia(c *fiber.Ctx) error {
	media, err := h.donationService.ListMedia(c.Context(), c.Params("donationId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetMedia, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"media": media}, fiber.StatusOK, domain.MessageSuccessGetMedia)
}

func (h *donationHandler) RemoveMedia(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveMedia, domain.ErrInvalidMediaIndex)
	}

	media, err := h.donationService.RemoveMedia(c.Context(), c.Params("donationId"), index)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedRemoveMedia, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"media": media}, fiber.StatusOK, domain.MessageSuccessRemoveMedia)
}
