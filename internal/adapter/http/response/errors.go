package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skytrack/flight-tracker/internal/domain"
)

// kindStatus maps each fetch failure kind to its HTTP status.
var kindStatus = map[domain.FetchErrorKind]int{
	domain.KindAPIKeyMissing:       http.StatusServiceUnavailable,
	domain.KindNetwork:             http.StatusBadGateway,
	domain.KindParsing:             http.StatusBadGateway,
	domain.KindIncompleteData:      http.StatusUnprocessableEntity,
	domain.KindFlightAlreadyExists: http.StatusConflict,
	domain.KindFlightNotFound:      http.StatusNotFound,
	domain.KindUnknown:             http.StatusInternalServerError,
}

var kindMessage = map[domain.FetchErrorKind]string{
	domain.KindAPIKeyMissing:       "Flight API is not configured",
	domain.KindNetwork:             "Flight API returned an error",
	domain.KindParsing:             "Flight API response could not be read",
	domain.KindIncompleteData:      "Flight data is incomplete",
	domain.KindFlightAlreadyExists: "Flight is already tracked",
	domain.KindFlightNotFound:      "Flight not found",
	domain.KindUnknown:             MsgInternalError,
}

// StatusForKind returns the HTTP status used for a fetch failure kind.
func StatusForKind(kind domain.FetchErrorKind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: MsgInvalidRequestBody,
	})
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
	})
}

// NotFound writes a 404 Not Found response for an unknown tracked flight.
func NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:    CodeRecordNotFound,
		Message: MsgRecordNotFound,
	})
}

// FetchFailure writes the response of a failed flight fetch.
// The code is the kind name; the cause is exposed except for unknown failures.
func FetchFailure(c echo.Context, kind domain.FetchErrorKind, cause error) error {
	detail := &ErrorDetail{
		Code:    kind.String(),
		Message: kindMessage[kind],
	}
	if detail.Message == "" {
		detail.Message = MsgInternalError
	}
	if cause != nil && kind != domain.KindUnknown {
		detail.Details = map[string]string{"reason": cause.Error()}
	}
	return c.JSON(StatusForKind(kind), detail)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgTimeout,
	})
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgRequestCancelled,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
