package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keeperbase/keeperbase/internal/authz"
	"github.com/keeperbase/keeperbase/internal/config"
	"github.com/keeperbase/keeperbase/internal/database"
	"github.com/keeperbase/keeperbase/internal/models"
)

// testDB opens an isolated in-memory database with the full schema. The
// single-connection pool keeps every query on the same in-memory instance.
func testDB(t *testing.T) *gorm.DB {
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
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     time.Hour,
		EmailTokenTTL: time.Hour,
		ResetTokenTTL: time.Hour,
	}
}

func seedCoach(t *testing.T, db *gorm.DB, email string) authz.Identity {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "not-a-real-hash",
		Name:     "Coach " + email,
		Role:     models.RoleCoach,
	}
	require.NoError(t, db.Create(&user).Error)

	return authz.Identity{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role}
}

func seedGoalkeeper(t *testing.T, db *gorm.DB, owner authz.Identity, name string) models.Goalkeeper {
	t.Helper()

	gk := models.Goalkeeper{
		ID:      uuid.New(),
		OwnerID: owner.ID,
		Name:    name,
	}
	require.NoError(t, db.Create(&gk).Error)
	return gk
}

func seedSession(t *testing.T, db *gorm.DB, owner authz.Identity, title string) models.TrainingSession {
	t.Helper()

	session := models.TrainingSession{
		ID:          uuid.New(),
		OwnerID:     owner.ID,
		Title:       title,
		SessionDate: "2026-03-14",
	}
	require.NoError(t, db.Create(&session).Error)
	return session
}

// captureMailer records raw tokens instead of sending anything, so flows
// that normally continue over email can be driven end to end.
type captureMailer struct {
	welcomeTokens []string
	resetTokens   []string
	failNext      error
}

func (m *captureMailer) SendWelcome(email, name, token string) error {
	if err := m.failNext; err != nil {
		m.failNext = nil
		return err
	}
	m.welcomeTokens = append(m.welcomeTokens, token)
	return nil
}

func (m *captureMailer) SendPasswordReset(email, name, token string) error {
	if err := m.failNext; err != nil {
		m.failNext = nil
		return err
	}
	m.resetTokens = append(m.resetTokens, token)
	return nil
}
