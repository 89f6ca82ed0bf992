package handlers

import (
	"GiveHub-Backend/domain"
	"GiveHub-Backend/internal/api/presenters"
	"GiveHub-Backend/pkg/blog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BlogHandler interface {
		CreateBlogPost(c *fiber.Ctx) error
		GetBlogPosts(c *fiber.Ctx) error
		GetBlogPostByID(c *fiber.Ctx) error
		UpdateBlogPost(c *fiber.Ctx) error
		UpdateBlogPostStatus(c *fiber.Ctx) error
		DeleteBlogPost(c *fiber.Ctx) error

		CreateReport(c *fiber.Ctx) error
		DeleteReport(c *fiber.Ctx) error
		ReviewReport(c *fiber.Ctx) error
		ResolveReport(c *fiber.Ctx) error
		GetPendingReports(c *fiber.Ctx) error

		ToggleLike(c *fiber.Ctx) error
		ToggleSave(c *fiber.Ctx) error

		AddComment(c *fiber.Ctx) error
		GetComments(c *fiber.Ctx) error
		UpdateComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error

		AttachMedia(c *fiber.Ctx) error
		ListMedia(c *fiber.Ctx) error
		RemoveMedia(c *fiber.Ctx) error
	}

	blogHandler struct {
		blogService blog.BlogService
		validator   *validator.Validate
	}
)

func NewBlogHandler(blogService blog.BlogService, validator *validator.Validate) BlogHandler {
	return &blogHandler{
		blogService: blogService,
		validator:   validator,
	}
}

func (h *blogHandler) CreateBlogPost(c *fiber.Ctx) error {
	req := new(domain.CreateBlogPostRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if req.AuthorID == "" {
		req.AuthorID = c.Locals("user_id").(string)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBlogPost, err)
	}

	created, err := h.blogService.CreateBlogPost(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedCreateBlogPost, err)
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessCreateBlogPost)
}

func (h *blogHandler) GetBlogPosts(c *fiber.Ctx) error {
	ctx := c.Context()

	var err error
	var posts interface{}
	switch {
	case c.Query("category") != "":
		posts, err = h.blogService.GetBlogPostsByCategory(ctx, c.Query("category"))
	case c.Query("status") != "":
		posts, err = h.blogService.GetBlogPostsByStatus(ctx, c.Query("status"))
	case c.Query("author") != "":
		posts, err = h.blogService.GetBlogPostsByAuthor(ctx, c.Query("author"))
	default:
		posts, err = h.blogService.GetAllBlogPosts(ctx)
	}
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetBlogPosts, err)
	}
	return presenters.SuccessResponse(c, posts, fiber.StatusOK, domain.MessageSuccessGetBlogPosts)
}

func (h *blogHandler) GetBlogPostByID(c *fiber.Ctx) error {
	found, err := h.blogService.GetBlogPostByID(c.Context(), c.Params("postId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetBlogPosts, err)
	}
	return presenters.SuccessResponse(c, found, fiber.StatusOK, domain.MessageSuccessGetBlogPosts)
}

func (h *blogHandler) UpdateBlogPost(c *fiber.Ctx) error {
	req := new(domain.UpdateBlogPostRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBlogPost, err)
	}

	updated, err := h.blogService.UpdateBlogPost(c.Context(), c.Params("postId"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedUpdateBlogPost, err)
	}
	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessUpdateBlogPost)
}

func (h *blogHandler) UpdateBlogPostStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateBlogStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBlogPost, err)
	}

	if err := h.blogService.UpdateBlogPostStatus(c.Context(), c.Params("postId"), req.Status); err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedUpdateBlogPost, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateBlogPost)
}

func (h *blogHandler) DeleteBlogPost(c *fiber.Ctx) error {
	if err := h.blogService.DeleteBlogPost(c.Context(), c.Params("postId")); err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedDeleteBlogPost, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBlogPost)
}

func (h *blogHandler) CreateReport(c *fiber.Ctx) error {
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

	if err := h.blogService.CreateReport(c.Context(), c.Params("postId"), *req); err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedCreateReport, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessCreateReport)
}

func (h *blogHandler) DeleteReport(c *fiber.Ctx) error {
	err := h.blogService.DeleteReport(c.Context(), c.Params("postId"), c.Params("reportId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedDeleteReport, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReport)
}

func (h *blogHandler) ReviewReport(c *fiber.Ctx) error {
	err := h.blogService.ReviewReport(c.Context(), c.Params("postId"), c.Params("reportId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedUpdateReport, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateReport)
}

func (h *blogHandler) ResolveReport(c *fiber.Ctx) error {
	err := h.blogService.ResolveReport(c.Context(), c.Params("postId"), c.Params("reportId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedUpdateReport, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateReport)
}

func (h *blogHandler) GetPendingReports(c *fiber.Ctx) error {
	posts, err := h.blogService.GetPendingReportBlogPosts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetBlogPosts, err)
	}
	return presenters.SuccessResponse(c, posts, fiber.StatusOK, domain.MessageSuccessGetBlogPosts)
}

func (h *blogHandler) ToggleLike(c *fiber.Ctx) error {
	req := new(domain.ToggleRequest)
	_ = c.BodyParser(req)

	userID := req.UserID
	if userID == "" {
		userID = c.Locals("user_id").(string)
	}

	likes, err := h.blogService.ToggleLike(c.Context(), c.Params("postId"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedToggleBlogLike, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"likes": likes}, fiber.StatusOK, domain.MessageSuccessToggleBlogLike)
}

func (h *blogHandler) ToggleSave(c *fiber.Ctx) error {
	req := new(domain.ToggleRequest)
	_ = c.BodyParser(req)

	userID := req.UserID
	if userID == "" {
		userID = c.Locals("user_id").(string)
	}

	saves, err := h.blogService.ToggleSave(c.Context(), c.Params("postId"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedToggleBlogSave, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"saves": saves}, fiber.StatusOK, domain.MessageSuccessToggleBlogSave)
}

func (h *blogHandler) AddComment(c *fiber.Ctx) error {
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

	err := h.blogService.AddComment(c.Context(), c.Params("postId"), req.UserID, req.Content)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedAddComment, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddComment)
}

func (h *blogHandler) GetComments(c *fiber.Ctx) error {
	comments, err := h.blogService.GetComments(c.Context(), c.Params("postId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetBlogPosts, err)
	}
	return presenters.SuccessResponse(c, comments, fiber.StatusOK, domain.MessageSuccessGetBlogPosts)
}

func (h *blogHandler) UpdateComment(c *fiber.Ctx) error {
	req := new(domain.UpdateCommentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateComment, err)
	}

	err := h.blogService.UpdateComment(c.Context(), c.Params("postId"), c.Params("commentId"), req.Content)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedUpdateComment, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateComment)
}

func (h *blogHandler) DeleteComment(c *fiber.Ctx) error {
	err := h.blogService.DeleteComment(c.Context(), c.Params("postId"), c.Params("commentId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedDeleteComment, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}

func (h *blogHandler) AttachMedia(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	files := form.File["media"]
	if len(files) == 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAttachMedia, domain.ErrNoMediaProvided)
	}

	media, err := h.blogService.AttachMedia(c.Context(), c.Params("postId"), files)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedAttachMedia, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"media": media}, fiber.StatusCreated, domain.MessageSuccessAttachMedia)
}

func (h *blogHandler) ListMedia(c *fiber.Ctx) error {
	media, err := h.blogService.ListMedia(c.Context(), c.Params("postId"))
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedGetMedia, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"media": media}, fiber.StatusOK, domain.MessageSuccessGetMedia)
}

func (h *blogHandler) RemoveMedia(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveMedia, domain.ErrInvalidMediaIndex)
	}

	media, err := h.blogService.RemoveMedia(c.Context(), c.Params("postId"), index)
	if err != nil {
		return presenters.ErrorResponse(c, errStatus(err), domain.MessageFailedRemoveMedia, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"media": media}, fiber.StatusOK, domain.MessageSuccessRemoveMedia)
}
