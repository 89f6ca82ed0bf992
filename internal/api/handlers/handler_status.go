package handlers

import (
	"GiveHub-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// errStatus maps domain sentinels onto HTTP status codes so every handler
// reports missing resources as 404 and duplicate state as 409 instead of a
// blanket 400.
func errStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrDonationNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrReportNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrBlogPostNotFound),
		errors.Is(err, domain.ErrMessageNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyRequested),
		errors.Is(err, domain.ErrDonationAlreadyDecided),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidDonationCategory),
		errors.Is(err, domain.ErrInvalidDonationStatus),
		errors.Is(err, domain.ErrInvalidBlogCategory),
		errors.Is(err, domain.ErrInvalidBlogStatus),
		errors.Is(err, domain.ErrInvalidRequestDecision),
		errors.Is(err, domain.ErrEmptyCommentContent),
		errors.Is(err, domain.ErrInvalidMediaIndex),
		errors.Is(err, domain.ErrInvalidAgeRange),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrCredentialsInvalid):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
