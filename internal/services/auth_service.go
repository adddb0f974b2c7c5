package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/config"
	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	tokens *TokenService
	mailer Mailer
}

func NewAuthService(db *gorm.DB, cfg *config.Config, tokens *TokenService, mailer Mailer) *AuthService {
	return &AuthService{db: db, cfg: cfg, tokens: tokens, mailer: mailer}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
		Role:     models.RoleCoach,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Registration succeeds even when the welcome email cannot be sent.
	if token, err := s.tokens.Create(user.ID, models.TokenTypeEmailVerification, s.cfg.EmailTokenTTL); err != nil {
		slog.Error("failed to issue verification token", "error", err, "user_id", user.ID.String())
	} else if err := s.mailer.SendWelcome(user.Email, user.Name, token); err != nil {
		slog.Error("failed to send welcome email", "error", err, "user_id", user.ID.String())
	}

	return s.authResponse(&user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(&user)
}

func (s *AuthService) VerifyEmail(rawToken string) error {
	userID, err := s.tokens.VerifyAndUse(rawToken, models.TokenTypeEmailVerification)
	if err != nil {
		return err
	}
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("email_verified", true).Error
}

// ForgotPassword responds identically whether or not the email exists so the
// endpoint cannot be used to enumerate accounts. A send failure for a real
// account does propagate: the email is the operation.
func (s *AuthService) ForgotPassword(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	token, err := s.tokens.Create(user.ID, models.TokenTypePasswordReset, s.cfg.ResetTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	return s.mailer.SendPasswordReset(user.Email, user.Name, token)
}

func (s *AuthService) ResetPassword(rawToken, newPassword string) error {
	userID, err := s.tokens.VerifyAndUse(rawToken, models.TokenTypePasswordReset)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("password", string(hash)).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// Stale reset links must not stay usable after a successful change.
	if err := s.tokens.InvalidateAll(userID); err != nil {
		slog.Error("failed to invalidate tokens after password reset", "error", err, "user_id", userID.String())
	}
	return nil
}

func (s *AuthService) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:            user.ID,
			Email:         user.Email,
			Name:          user.Name,
			Role:          user.Role,
			EmailVerified: user.EmailVerified,
		},
	}, nil
}

func (s *AuthService) signToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
