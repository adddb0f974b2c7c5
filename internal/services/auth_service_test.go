package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/keeperbase/keeperbase/internal/dto"
	"github.com/keeperbase/keeperbase/internal/models"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB, *captureMailer) {
	t.Helper()
	db := testDB(t)
	mailer := &captureMailer{}
	svc := NewAuthService(db, testConfig(), NewTokenService(db), mailer)
	return svc, db, mailer
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, mailer := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "coach@example.com",
		Password: "correct-horse",
		Name:     "Anna",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, models.RoleCoach, resp.User.Role)
	require.False(t, resp.User.EmailVerified)
	require.Len(t, mailer.welcomeTokens, 1)

	login, err := svc.Login(&dto.LoginRequest{Email: "coach@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(&dto.LoginRequest{Email: "coach@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)

	req := dto.RegisterRequest{Email: "coach@example.com", Password: "correct-horse", Name: "Anna"}
	_, err := svc.Register(&req)
	require.NoError(t, err)

	_, err = svc.Register(&req)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterSurvivesMailFailure(t *testing.T) {
	svc, _, mailer := newAuthService(t)
	mailer.failNext = errors.New("smtp down")

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "coach@example.com",
		Password: "correct-horse",
		Name:     "Anna",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Empty(t, mailer.welcomeTokens)
}

func TestVerifyEmailFlow(t *testing.T) {
	svc, db, mailer := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "coach@example.com",
		Password: "correct-horse",
		Name:     "Anna",
	})
	require.NoError(t, err)
	require.Len(t, mailer.welcomeTokens, 1)

	require.NoError(t, svc.VerifyEmail(mailer.welcomeTokens[0]))

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", resp.User.ID).Error)
	require.True(t, user.EmailVerified)

	// Verification links are single use.
	require.ErrorIs(t, svc.VerifyEmail(mailer.welcomeTokens[0]), ErrInvalidToken)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	svc, _, mailer := newAuthService(t)

	require.NoError(t, svc.ForgotPassword("nobody@example.com"))
	require.Empty(t, mailer.resetTokens)
}

func TestResetPasswordFlow(t *testing.T) {
	svc, _, mailer := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "coach@example.com",
		Password: "old-password",
		Name:     "Anna",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword("coach@example.com"))
	require.Len(t, mailer.resetTokens, 1)

	require.NoError(t, svc.ResetPassword(mailer.resetTokens[0], "new-password"))

	_, err = svc.Login(&dto.LoginRequest{Email: "coach@example.com", Password: "old-password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "coach@example.com", Password: "new-password"})
	require.NoError(t, err)

	// The consumed link stays dead.
	require.ErrorIs(t, svc.ResetPassword(mailer.resetTokens[0], "another-password"), ErrInvalidToken)
}

func TestResetPasswordInvalidatesOutstandingTokens(t *testing.T) {
	svc, _, mailer := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "coach@example.com",
		Password: "old-password",
		Name:     "Anna",
	})
	require.NoError(t, err)
	require.Len(t, mailer.welcomeTokens, 1)

	require.NoError(t, svc.ForgotPassword("coach@example.com"))
	require.NoError(t, svc.ResetPassword(mailer.resetTokens[0], "new-password"))

	// The pre-reset verification link is gone too.
	require.ErrorIs(t, svc.VerifyEmail(mailer.welcomeTokens[0]), ErrInvalidToken)
}
