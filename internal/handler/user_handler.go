package handler

import (
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/i-nap/lekhsewa/internal/apperrors"
	"github.com/i-nap/lekhsewa/internal/auth"
	"github.com/i-nap/lekhsewa/internal/service"
)

// UserHandler handles user plan, quota and sync endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUserPlan godoc
// @Summary Get the caller's plan tier
// @Tags users
// @Produce plain
// @Param sub query string true "Caller subject"
// @Success 200 {string} string
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /getuserplan [get]
func (h *UserHandler) GetUserPlan(c echo.Context) error {
	plan, err := h.userService.LookupPlan(c.Request().Context(), c.QueryParam("sub"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.String(http.StatusOK, plan)
}

// ChangePlanToPro godoc
// @Summary Upgrade the caller's plan to paid
// @Tags users
// @Produce plain
// @Param sub query string true "Caller subject"
// @Success 200 {string} string
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /changeplantopro [get]
func (h *UserHandler) ChangePlanToPro(c echo.Context) error {
	if err := h.userService.UpgradeToPro(c.Request().Context(), c.QueryParam("sub")); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.String(http.StatusOK, "Plan upgraded to PRO")
}

// GetUserQuota godoc
// @Summary Get the caller's consumed quota
// @Tags users
// @Produce plain
// @Param sub query string true "Caller subject"
// @Success 200 {string} string
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /getuserquota [get]
func (h *UserHandler) GetUserQuota(c echo.Context) error {
	quota, err := h.userService.LookupQuota(c.Request().Context(), c.QueryParam("sub"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.String(http.StatusOK, strconv.Itoa(quota))
}

// SyncMe godoc
// @Summary Upsert the caller identity from validated token claims
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /me/sync [post]
func (h *UserHandler) SyncMe(c echo.Context) error {
	token, _ := c.Get("user").(*jwt.Token)
	claims, err := auth.ClaimsFromToken(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "UNAUTHORIZED", Message: "invalid token",
		})
	}

	user, err := h.userService.SyncUser(c.Request().Context(), claims)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}
