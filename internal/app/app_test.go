package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/team_recruitment/internal/config"
	"github.com/festy23/team_recruitment/internal/database/dbtest"
	"github.com/festy23/team_recruitment/internal/identity"
	"github.com/festy23/team_recruitment/internal/middleware"
	recruitmentModel "github.com/festy23/team_recruitment/internal/recruitment/model"
	teamModel "github.com/festy23/team_recruitment/internal/team/model"
)

func testConfig() config.Config {
	return config.Config{
		Auth:           config.AuthConfig{Mode: config.AuthModeHeader},
		Recruitment:    config.DefaultRecruitmentConfig(),
		GinMode:        gin.TestMode,
		MetricsEnabled: true,
	}
}

func do(h http.Handler, method, path, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(identity.HeaderUserID, userID)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestApp_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := dbtest.New(t)
	a := New(testConfig(), db, nil, zap.NewNop().Sugar())
	competitionID := dbtest.SeedCompetition(t, db, "olympiad")

	t.Run("health without identity", func(t *testing.T) {
		w := do(a.Router, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("api requires identity", func(t *testing.T) {
		w := do(a.Router, http.MethodGet, "/requests/mine", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invitation flow is counted", func(t *testing.T) {
		w := do(a.Router, http.MethodPost, "/teams", "alice",
			`{"name":"Rockets","competition_id":"`+competitionID+`","looking_for_members":true,"available_slots":1}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var team teamModel.TeamResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))

		w = do(a.Router, http.MethodPost, "/teams/"+team.Team.ID+"/invitations", "alice", `{"user_id":"bob"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var req recruitmentModel.Request
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &req))

		w = do(a.Router, http.MethodPost, "/invitations/"+req.ID+"/respond", "bob", `{"status":"accepted"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = do(a.Router, http.MethodGet, "/teams/"+team.Team.ID+"/members", "bob", "")
		require.Equal(t, http.StatusOK, w.Code)
		var members teamModel.MembersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
		assert.Len(t, members.Members, 2)

		w = do(a.Router, http.MethodGet, "/metrics", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `team_requests_created_total{kind="invite"} 1`)
		assert.Contains(t, body, `team_requests_resolved_total{kind="invite",status="accepted"} 1`)
		assert.Contains(t, body, "go_goroutines")
		assert.Contains(t, body, `go_sql_max_open_connections{db_name="recruitment"}`)
	})
}

func TestApp_MetricsDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.MetricsEnabled = false
	a := New(cfg, dbtest.New(t), nil, zap.NewNop().Sugar())

	w := do(a.Router, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
