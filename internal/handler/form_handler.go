package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/i-nap/lekhsewa/internal/apperrors"
	"github.com/i-nap/lekhsewa/internal/model"
	"github.com/i-nap/lekhsewa/internal/service"
)

// FormHandler handles form search and retrieval endpoints.
type FormHandler struct {
	formService service.FormService
}

// NewFormHandler creates a new form handler.
func NewFormHandler(formService service.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// CreateFormRequest is the payload for creating a form with its graph.
type CreateFormRequest struct {
	Name        string               `json:"name" validate:"required"`
	Description string               `json:"description"`
	Fields      []CreateFieldRequest `json:"fields" validate:"dive"`
}

// CreateFieldRequest is one field of a form creation payload.
type CreateFieldRequest struct {
	Label      string                `json:"label" validate:"required"`
	FieldName  string                `json:"field_name" validate:"required"`
	Type       string                `json:"type" validate:"required"`
	Required   bool                  `json:"required"`
	NepaliText bool                  `json:"nepali_text"`
	Options    []CreateOptionRequest `json:"options" validate:"dive"`
}

// CreateOptionRequest is one option of a field creation payload.
type CreateOptionRequest struct {
	Value string `json:"value" validate:"required"`
	Label string `json:"label" validate:"required"`
}

// Search godoc
// @Summary Search forms by name substring
// @Tags forms
// @Produce json
// @Param q query string false "Query"
// @Param page query int false "Page (0-based)"
// @Param size query int false "Page size (1-100)"
// @Success 200 {object} service.FormSummaryPage
// @Router /search [get]
func (h *FormHandler) Search(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size := 10
	if raw := c.QueryParam("size"); raw != "" {
		size, _ = strconv.Atoi(raw)
	}

	result, err := h.formService.Search(c.Request().Context(), c.QueryParam("q"), page, size)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// Suggest godoc
// @Summary Suggest forms by name prefix
// @Tags forms
// @Produce json
// @Param q query string false "Query"
// @Param limit query int false "Limit (1-20)"
// @Success 200 {object} service.FormSummaryPage
// @Router /suggest [get]
func (h *FormHandler) Suggest(c echo.Context) error {
	limit := 8
	if raw := c.QueryParam("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	result, err := h.formService.Suggest(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// GetFormData godoc
// @Summary Get a form with its fields and options
// @Tags forms
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} service.FormData
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /getformdata/{id} [get]
func (h *FormHandler) GetFormData(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "INVALID_INPUT", Message: "invalid form id",
		})
	}

	form, err := h.formService.GetForm(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, form)
}

// CreateForm godoc
// @Summary Create a form with its fields and options
// @Tags forms
// @Accept json
// @Produce json
// @Param form body CreateFormRequest true "Form payload"
// @Success 201 {object} model.Form
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /form [post]
func (h *FormHandler) CreateForm(c echo.Context) error {
	var req CreateFormRequest
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

	form := &model.Form{Name: req.Name, Description: req.Description}
	for _, f := range req.Fields {
		field := model.FormField{
			Label:      f.Label,
			FieldName:  f.FieldName,
			Type:       f.Type,
			Required:   f.Required,
			NepaliText: f.NepaliText,
		}
		for _, o := range f.Options {
			field.Options = append(field.Options, model.FieldOption{Value: o.Value, Label: o.Label})
		}
		form.Fields = append(form.Fields, field)
	}

	created, err := h.formService.CreateForm(c.Request().Context(), form)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// DeleteForm godoc
// @Summary Delete a form and its fields and options
// @Tags forms
// @Param id path int true "Form ID"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /form/{id} [delete]
func (h *FormHandler) DeleteForm(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "INVALID_INPUT", Message: "invalid form id",
		})
	}

	if err := h.formService.DeleteForm(c.Request().Context(), uint(id)); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
