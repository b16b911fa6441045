package usecases

import (
	"context"
	"errors"

	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/pkg/crypto"
	"portfolio.backend/pkg/jwt"
	"portfolio.backend/pkg/logger"
)

// AdminSubject is the JWT subject of the single administrator
const AdminSubject = "admin"

// AdminAuthUsecase authenticates the administrator against a configured bcrypt hash
type AdminAuthUsecase struct {
	passwordHash string
	jwtService   *jwt.JWTService
}

func NewAdminAuthUsecase(passwordHash string, jwtService *jwt.JWTService) *AdminAuthUsecase {
	return &AdminAuthUsecase{
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

// Login issues a token pair when the password matches. With no hash configured nobody can log in.
func (u *AdminAuthUsecase) Login(ctx context.Context, password string) (*jwt.TokenPair, error) {
	if !crypto.CheckPassword(password, u.passwordHash) {
		logger.Warn(ctx, "Admin login failed")
		return nil, domainerrors.ErrInvalidCredentials
	}
	return u.jwtService.GenerateTokenPair(AdminSubject, jwt.RoleAdmin)
}

// Refresh exchanges a valid refresh token for a new pair
func (u *AdminAuthUsecase) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrUnauthorized
	}
	if claims.Role != jwt.RoleAdmin {
		return nil, domainerrors.ErrForbidden
	}
	return u.jwtService.GenerateTokenPair(claims.Subject, claims.Role)
}
