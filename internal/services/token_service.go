package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/models"
)

// TokenService manages single-use verification tokens for email verification
// and password reset. Raw tokens leave the process exactly once, in the
// email they were issued for; only SHA-256 hashes are stored.
type TokenService struct {
	db *gorm.DB
}

func NewTokenService(db *gorm.DB) *TokenService {
	return &TokenService{db: db}
}

// Create invalidates any outstanding tokens of the same type for the user,
// then issues a fresh one and returns the raw token.
func (s *TokenService) Create(userID uuid.UUID, tokenType string, ttl time.Duration) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.VerificationToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(rawToken),
		Type:      tokenType,
		ExpiresAt: time.Now().Add(ttl),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&models.VerificationToken{}).
			Where("user_id = ? AND type = ? AND used_at IS NULL", userID, tokenType).
			Update("used_at", now).Error; err != nil {
			return err
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return "", fmt.Errorf("failed to store verification token: %w", err)
	}

	return rawToken, nil
}

// VerifyAndUse consumes a token. The check and the mark run as a single
// conditional UPDATE so two concurrent requests cannot both succeed.
func (s *TokenService) VerifyAndUse(rawToken, tokenType string) (uuid.UUID, error) {
	now := time.Now()
	res := s.db.Model(&models.VerificationToken{}).
		Where("token_hash = ? AND type = ? AND used_at IS NULL AND expires_at > ?",
			hashToken(rawToken), tokenType, now).
		Update("used_at", now)
	if res.Error != nil {
		return uuid.Nil, res.Error
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, ErrInvalidToken
	}

	var record models.VerificationToken
	if err := s.db.Where("token_hash = ?", hashToken(rawToken)).First(&record).Error; err != nil {
		return uuid.Nil, err
	}
	return record.UserID, nil
}

// InvalidateAll marks every outstanding token for the user as used,
// regardless of type. Called after a successful password change.
func (s *TokenService) InvalidateAll(userID uuid.UUID) error {
	return s.db.Model(&models.VerificationToken{}).
		Where("user_id = ? AND used_at IS NULL", userID).
		Update("used_at", time.Now()).Error
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
