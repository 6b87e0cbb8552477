// Package httpx renders errors in the service-wide JSON error format.
package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/team_recruitment/pkg/apperr"
)

// Error codes that are not tied to a single module.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeInternal       = "INTERNAL_ERROR"
)

// ErrorResponse represents the error body returned by every endpoint.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable code and a human message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorJSON aborts the request with the given status and error body.
func ErrorJSON(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// BadRequest responds with 400 INVALID_REQUEST.
func BadRequest(c *gin.Context, message string) {
	ErrorJSON(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// Unauthorized responds with 401 UNAUTHORIZED.
func Unauthorized(c *gin.Context, message string) {
	ErrorJSON(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

// InternalError responds with 500 INTERNAL_ERROR without exposing the cause.
func InternalError(c *gin.Context) {
	ErrorJSON(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error renders err. Classified errors keep their code and message;
// anything else is logged and reported as an internal error.
func Error(c *gin.Context, logger *zap.SugaredLogger, err error) {
	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind == apperr.KindInternal {
		logger.Errorw("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		InternalError(c)
		return
	}
	ErrorJSON(c, StatusFor(appErr.Kind), appErr.Code, appErr.Message)
}
