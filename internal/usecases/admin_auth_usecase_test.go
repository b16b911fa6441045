package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/jwt"
)

func newAdminAuth(t *testing.T, password string) (*usecases.AdminAuthUsecase, *jwt.JWTService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	svc := jwt.NewJWTService("test-secret", time.Minute, time.Hour)
	return usecases.NewAdminAuthUsecase(string(hash), svc), svc
}

func TestAdminAuthUsecase_Login(t *testing.T) {
	uc, svc := newAdminAuth(t, "correct horse")

	pair, err := uc.Login(context.Background(), "correct horse")
	require.NoError(t, err)
	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
	assert.Equal(t, usecases.AdminSubject, claims.Subject)

	_, err = uc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminAuthUsecase_LoginWithoutConfiguredHash(t *testing.T) {
	uc := usecases.NewAdminAuthUsecase("", jwt.NewJWTService("s", time.Minute, time.Hour))

	_, err := uc.Login(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAdminAuthUsecase_Refresh(t *testing.T) {
	uc, _ := newAdminAuth(t, "pw")
	pair, err := uc.Login(context.Background(), "pw")
	require.NoError(t, err)

	next, err := uc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, next.AccessToken)

	_, err = uc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
