package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/i-nap/lekhsewa/internal/apperrors"
	"github.com/i-nap/lekhsewa/internal/service"
)

// MessageHandler handles contact message endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// CreateMessageRequest is a contact form submission.
type CreateMessageRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Message  string `json:"message" validate:"required"`
}

// CreateMessage godoc
// @Summary Submit a contact message
// @Tags messages
// @Accept json
// @Produce plain
// @Param message body CreateMessageRequest true "Message payload"
// @Success 201 {string} string
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /message [post]
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	var req CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "INVALID_INPUT", Message: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "VALIDATION_ERROR", Message: "All fields are required",
		})
	}

	if _, err := h.messageService.CreateMessage(c.Request().Context(), req.FullName, req.Email, req.Message); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.String(http.StatusCreated, "Message received")
}
