package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps sentinel service errors to HTTP responses.
// Anything unrecognized is logged and surfaced as a generic 500 so
// internal detail never reaches the caller.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyMessage), errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidRating), errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrImageMismatch), errors.Is(err, ErrInvalidResetToken):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrNotOwner), errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrEstablishmentNotFound), errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrTypeNotFound), errors.Is(err, ErrLocationNotFound),
		errors.Is(err, ErrScheduleNotFound), errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrPromotionNotFound), errors.Is(err, ErrNotificationNotFound),
		errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrUsernameTaken):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrDatabaseError), errors.Is(err, ErrEmbeddingUnavailable):
		log.Printf("dependency error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
