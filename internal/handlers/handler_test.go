package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keeperbase/keeperbase/internal/config"
	"github.com/keeperbase/keeperbase/internal/database"
	"github.com/keeperbase/keeperbase/internal/handlers"
	"github.com/keeperbase/keeperbase/internal/models"
	"github.com/keeperbase/keeperbase/internal/routes"
	"github.com/keeperbase/keeperbase/internal/services"
)

const testSecret = "handler-test-secret"

type testApp struct {
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
}

// newTestApp wires the full router against an in-memory database, the same
// way main does, minus the outer observability middleware.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	cfg := &config.Config{
		JWTSecret:     testSecret,
		JWTExpiry:     time.Hour,
		EmailTokenTTL: time.Hour,
		ResetTokenTTL: time.Hour,
		UploadDir:     t.TempDir(),
	}

	images, err := services.NewImageStore(cfg.UploadDir)
	require.NoError(t, err)

	tokens := services.NewTokenService(db)
	mailer := services.NewMailer(cfg)
	authService := services.NewAuthService(db, cfg, tokens, mailer)

	h := routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		Health:     handlers.NewHealthHandler(),
		Team:       handlers.NewTeamHandler(services.NewTeamService(db)),
		Goalkeeper: handlers.NewGoalkeeperHandler(services.NewGoalkeeperService(db)),
		Session:    handlers.NewSessionHandler(services.NewSessionService(db)),
		Task:       handlers.NewTaskHandler(services.NewTaskService(db)),
		Analysis:   handlers.NewAnalysisHandler(services.NewAnalysisService(db)),
		Penalty:    handlers.NewPenaltyHandler(services.NewPenaltyService(db)),
		Statistic:  handlers.NewStatisticHandler(services.NewStatisticService(db)),
		Design:     handlers.NewDesignHandler(services.NewDesignService(db, images)),
		Admin:      handlers.NewAdminHandler(db),
	}

	app := fiber.New()
	routes.Setup(app, cfg, db, h)

	return &testApp{app: app, db: db, cfg: cfg}
}

// seedUser inserts a user directly and returns a signed bearer token for it,
// bypassing the HTTP register flow.
func (ta *testApp) seedUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "not-a-real-hash",
		Name:     "Coach " + email,
		Role:     role,
	}
	require.NoError(t, ta.db.Create(&user).Error)

	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return user, token
}

func (ta *testApp) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return data
}
