package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no user matches the given subject.
	ErrUserNotFound = errors.New("user not found")
	// ErrFormNotFound is returned when no form matches the given id.
	ErrFormNotFound = errors.New("form not found")
	// ErrImageNotFound is returned when no canvas image matches the given identifier.
	ErrImageNotFound = errors.New("image not found")
	// ErrPaymentNotFound is returned when no payment matches the transaction uuid.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrEmptyImage is returned when an uploaded or stored image has no bytes.
	ErrEmptyImage = errors.New("image is empty")
	// ErrUnsupportedImageType is returned for any content type other than image/png.
	ErrUnsupportedImageType = errors.New("only PNG allowed")
	// ErrQuotaExceeded is returned when a free user has used up the daily quota.
	ErrQuotaExceeded = errors.New("daily image processing quota exceeded")
	// ErrRecognizerUnavailable is returned on recognizer timeouts, 429 and 5xx.
	ErrRecognizerUnavailable = errors.New("recognizer unavailable")
	// ErrRecognizerRejected is returned when the recognizer rejects the request.
	ErrRecognizerRejected = errors.New("recognizer rejected request")
	// ErrDuplicateFieldName is returned when a form declares the same field name twice.
	ErrDuplicateFieldName = errors.New("duplicate field name in form")
	// ErrBlankFormName is returned when a form is created without a name.
	ErrBlankFormName = errors.New("form name is required")
	// ErrBlankMessageFields is returned when a contact message misses required fields.
	ErrBlankMessageFields = errors.New("all fields are required")
	// ErrInvalidAmount is returned when a payment amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidSignature is returned when an eSewa payload signature does not match.
	ErrInvalidSignature = errors.New("invalid payment signature")
	// ErrInvalidPaymentData is returned when an eSewa redirect payload cannot be decoded.
	ErrInvalidPaymentData = errors.New("invalid payment data")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HTTPError carries a status code alongside a coded error body.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, code, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: code, Message: message}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Code, Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrFormNotFound),
		errors.Is(err, ErrImageNotFound),
		errors.Is(err, ErrPaymentNotFound):
		return NewHTTPError(http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrEmptyImage),
		errors.Is(err, ErrUnsupportedImageType),
		errors.Is(err, ErrDuplicateFieldName),
		errors.Is(err, ErrBlankFormName),
		errors.Is(err, ErrBlankMessageFields),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidPaymentData):
		return NewHTTPError(http.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, ErrInvalidSignature):
		return NewHTTPError(http.StatusBadRequest, "INVALID_SIGNATURE", err.Error())
	case errors.Is(err, ErrQuotaExceeded):
		return NewHTTPError(http.StatusTooManyRequests, "QUOTA_EXCEEDED",
			"You have exceeded your daily image processing quota")
	case errors.Is(err, ErrRecognizerUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, "SERVER_ISSUE", "Server issue, try again")
	case errors.Is(err, ErrRecognizerRejected):
		return NewHTTPError(http.StatusBadGateway, "UPSTREAM_REJECTED", err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
