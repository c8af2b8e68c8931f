package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/kolink/internal/models"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func statusFor(code string) int {
	switch code {
	case models.CodeValidation:
		return fiber.StatusBadRequest
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeInsufficientCredits:
		return fiber.StatusPaymentRequired
	case models.CodeAIUnavailable:
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

// RespondWithError writes err as an ErrorResponse with the status its code maps
// to. Internal details are logged, never returned.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		appErr = models.NewInternalError(err)
	}

	status := statusFor(appErr.Code)
	response := ErrorResponse{Error: appErr.Message, Code: appErr.Code}
	if status == fiber.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "request failed", "path", c.Path(), "error", err)
	} else if appErr.Err != nil {
		response.Details = appErr.Err.Error()
	}

	return c.Status(status).JSON(response)
}

// ErrorHandler answers errors that escape a handler, such as fiber's own 404
// and body limit errors, in the same shape as RespondWithError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return RespondWithError(c, err)
	}

	code := models.CodeInternal
	switch {
	case fe.Code == fiber.StatusNotFound:
		code = models.CodeNotFound
	case fe.Code < fiber.StatusInternalServerError:
		code = models.CodeValidation
	}
	return c.Status(fe.Code).JSON(ErrorResponse{Error: fe.Message, Code: code})
}

func badRequest(c *fiber.Ctx, message string) error {
	return RespondWithError(c, models.NewValidationError(message))
}

// parseBody decodes the JSON body into v, answering 400 when it cannot.
func parseBody(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return models.NewValidationError("Unable to parse json")
	}
	return nil
}
