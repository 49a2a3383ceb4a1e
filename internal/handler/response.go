package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dualpay/market-backend/internal/apperr"
)

type errorPayload struct {
	Code    uint32 `json:"code,omitempty"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(key, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Key:     key,
			Message: message,
		},
	}
}

// domainStatus maps the retained numeric taxonomy onto HTTP statuses.
var domainStatus = map[uint32]int{
	101: http.StatusBadRequest,
	102: http.StatusNotFound,
	103: http.StatusConflict,
	104: http.StatusConflict,
	105: http.StatusBadRequest,
}

// errorJSON renders err as the client-facing payload. Domain errors keep
// their numeric code verbatim; anything else becomes an opaque 500.
func errorJSON(c echo.Context, err error) error {
	if e, ok := apperr.From(err); ok {
		status, found := domainStatus[e.Code]
		if !found {
			status = http.StatusBadRequest
		}
		return c.JSON(status, ErrorResponse{
			Error: errorPayload{Code: e.Code, Key: e.Key, Message: e.Message},
		})
	}
	return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "internal error"))
}
