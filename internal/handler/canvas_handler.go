package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/i-nap/lekhsewa/internal/apperrors"
	"github.com/i-nap/lekhsewa/internal/service"
)

// CanvasHandler handles canvas image endpoints.
type CanvasHandler struct {
	canvasService service.CanvasService
}

// NewCanvasHandler creates a new canvas handler.
func NewCanvasHandler(canvasService service.CanvasService) *CanvasHandler {
	return &CanvasHandler{canvasService: canvasService}
}

// SendCanvasImage godoc
// @Summary Upload a canvas image for transcription
// @Tags canvas
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PNG canvas image"
// @Param sub query string true "Caller subject"
// @Success 201 {object} service.ProcessResult
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 429 {object} apperrors.ErrorResponse
// @Failure 502 {object} apperrors.ErrorResponse
// @Failure 503 {object} apperrors.ErrorResponse
// @Router /sendcanvasimage [post]
func (h *CanvasHandler) SendCanvasImage(c echo.Context) error {
	sub := c.QueryParam("sub")
	if sub == "" {
		sub = c.FormValue("sub")
	}
	if sub == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "INVALID_INPUT", Message: "sub is required",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "INVALID_INPUT", Message: "multipart field 'file' is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "INVALID_INPUT", Message: "cannot read uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "INVALID_INPUT", Message: "cannot read uploaded file",
		})
	}

	result, err := h.canvasService.ProcessCanvas(
		c.Request().Context(),
		sub,
		data,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, result)
}
