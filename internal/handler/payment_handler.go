package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/i-nap/lekhsewa/internal/apperrors"
	"github.com/i-nap/lekhsewa/internal/service"
)

// PaymentHandler handles eSewa plan payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// InitiatePaymentRequest is the payload for initiating a plan payment.
type InitiatePaymentRequest struct {
	Sub    string `json:"sub" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

// InitiatePayment godoc
// @Summary Initiate an eSewa plan upgrade payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body InitiatePaymentRequest true "Payment data"
// @Success 200 {object} service.InitiateResult
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /esewa/initiate [post]
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	var req InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "INVALID_INPUT", Message: "invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "VALIDATION_ERROR", Message: err.Error(),
		})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "INVALID_INPUT", Message: "invalid amount",
		})
	}

	result, err := h.paymentService.Initiate(c.Request().Context(), req.Sub, amount)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// VerifyPayment godoc
// @Summary Verify an eSewa redirect and upgrade the payer's plan
// @Tags payments
// @Produce json
// @Param data query string true "Base64 redirect payload"
// @Success 200 {object} service.VerifyResult
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /esewa/verify [get]
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	result, err := h.paymentService.Verify(c.Request().Context(), c.QueryParam("data"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}
