package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/team_recruitment/pkg/apperr"
)

func serve(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/test", handler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestError(t *testing.T) {
	logger := zap.NewNop().Sugar()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        apperr.New(apperr.KindNotFound, "TEAM_NOT_FOUND", "team not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "TEAM_NOT_FOUND",
		},
		{
			name:       "forbidden",
			err:        apperr.New(apperr.KindForbidden, "NOT_CAPTAIN", "only the captain can do this"),
			wantStatus: http.StatusForbidden,
			wantCode:   "NOT_CAPTAIN",
		},
		{
			name:       "wrapped conflict",
			err:        fmt.Errorf("accept: %w", apperr.New(apperr.KindConflict, "NO_SLOTS_AVAILABLE", "no slots")),
			wantStatus: http.StatusConflict,
			wantCode:   "NO_SLOTS_AVAILABLE",
		},
		{
			name:       "invalid",
			err:        apperr.New(apperr.KindInvalid, "NOT_RECRUITING", "team is not recruiting"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "NOT_RECRUITING",
		},
		{
			name:       "unclassified",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serve(t, func(c *gin.Context) { Error(c, logger, tt.err) })
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestError_HidesInternalCause(t *testing.T) {
	_, body := serve(t, func(c *gin.Context) {
		Error(c, zap.NewNop().Sugar(), errors.New("pq: password authentication failed"))
	})
	assert.Equal(t, "internal server error", body.Error.Message)
}

func TestHelpers(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) { BadRequest(c, "team_id is required") })
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidRequest, body.Error.Code)
	assert.Equal(t, "team_id is required", body.Error.Message)

	w, body = serve(t, func(c *gin.Context) { Unauthorized(c, "missing identity") })
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, CodeUnauthorized, body.Error.Code)
}
