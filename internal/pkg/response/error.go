package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/hotel-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error sends a JSON error response.
// Client errors are reported with their own status code and message.
// Server errors hide their message, and the cause is attached to the context for the request logger.
func Error(c *gin.Context, err error) {
	code := apperror.StatusCode(err)
	if code >= http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(code, ErrorResponse{Error: "internal server error"})
		return
	}

	var appErr *apperror.AppError
	errors.As(err, &appErr)
	c.JSON(code, ErrorResponse{Error: appErr.Message})
}

// BadRequest sends a 400 for malformed input, e.g. a failed bind.
func BadRequest(c *gin.Context, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}
