package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	infraauth "teamtrack/internal/infrastructure/auth"
	"teamtrack/internal/infrastructure/config"
	"teamtrack/internal/infrastructure/persistence/models"
	"teamtrack/internal/infrastructure/persistence/seeds"
	sharedConfig "teamtrack/internal/shared/config"
	"teamtrack/internal/shared/logger"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A shared-cache DSN keeps every pooled connection on the same
	// in-memory database; a plain :memory: DSN gives each connection
	// its own empty one.
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.RoleModel{},
		&models.UserModel{},
		&models.ProjectModel{},
		&models.TicketModel{},
		&models.TicketCommentModel{},
		&models.ActivityLogModel{},
	))

	hasher := infraauth.NewBcryptPasswordHasher(4)
	require.NoError(t, seeds.Run(db, hasher))

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{Mode: "test"},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT: sharedConfig.JWTConfig{
				Secret:        "integration-test-secret",
				Issuer:        "teamtrack",
				Audience:      "teamtrack-api",
				ExpiryMinutes: 5,
			},
		},
	}

	router, err := BuildRouter(db, cfg, logger.NewLogger())
	require.NoError(t, err)

	return router.Engine()
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, engine *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestHealthEndpoints(t *testing.T) {
	engine := setupTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/health/detailed", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "database")
}

func TestLoginAndTokenGating(t *testing.T) {
	engine := setupTestServer(t)

	t.Run("seeded admin can log in", func(t *testing.T) {
		token := login(t, engine, "admin", "Admin@123")
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password is rejected without detail", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "admin",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid username or password")
	})

	t.Run("unknown user gets the same message", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
			"username": "nobody",
			"password": "whatever",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid username or password")
	})

	t.Run("protected route without token", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/tickets", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("protected route with malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleAuthorization(t *testing.T) {
	engine := setupTestServer(t)
	adminToken := login(t, engine, "admin", "Admin@123")

	// Admin creates a developer account. Role IDs follow seed order.
	w := doJSON(t, engine, http.MethodPost, "/api/users", adminToken, gin.H{
		"username":   "devuser",
		"email":      "dev@teamtrack.local",
		"first_name": "Dev",
		"last_name":  "User",
		"password":   "Developer@123",
		"role_id":    3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	devToken := login(t, engine, "devuser", "Developer@123")

	t.Run("developer cannot create users", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/users", devToken, gin.H{
			"username":   "sneaky",
			"email":      "sneaky@teamtrack.local",
			"first_name": "S",
			"last_name":  "N",
			"password":   "Sneaky@123",
			"role_id":    1,
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("developer cannot create projects", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/projects", devToken, gin.H{
			"name":       "Shadow project",
			"start_date": "2026-08-01T00:00:00Z",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("developer cannot read the activity log", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/activity", devToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin can read the activity log", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/activity", adminToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestTicketLifecycleOverHTTP(t *testing.T) {
	engine := setupTestServer(t)
	adminToken := login(t, engine, "admin", "Admin@123")

	w := doJSON(t, engine, http.MethodPost, "/api/projects", adminToken, gin.H{
		"name":        "Rollout",
		"description": "Q3 rollout",
		"start_date":  "2026-08-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var projectResp struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projectResp))

	w = doJSON(t, engine, http.MethodPost, "/api/tickets", adminToken, gin.H{
		"title":       "Broken link on docs page",
		"description": "404 on the install guide",
		"project_id":  projectResp.Data.ID,
		"priority":    "high",
		"type":        "bug",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ticketResp struct {
		Data struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticketResp))
	assert.Equal(t, "new", ticketResp.Data.Status)

	ticketPath := fmt.Sprintf("/api/tickets/%d", ticketResp.Data.ID)

	w = doJSON(t, engine, http.MethodPut, ticketPath+"/status", adminToken, gin.H{
		"status":     "in_progress",
		"time_spent": 1.5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodPut, ticketPath+"/status", adminToken, gin.H{
		"status":     "resolved",
		"time_spent": 2.0,
		"comment":    "Fixed the redirect",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var statusResp struct {
		Data struct {
			Status    string  `json:"status"`
			TimeSpent float64 `json:"time_spent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &statusResp))
	assert.Equal(t, "resolved", statusResp.Data.Status)
	assert.InDelta(t, 3.5, statusResp.Data.TimeSpent, 0.001)

	w = doJSON(t, engine, http.MethodGet, ticketPath+"/comments", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fixed the redirect")
}
