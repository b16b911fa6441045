package usecases

import (
	"context"

	"go.uber.org/zap"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/crypto"
	"portfolio.backend/pkg/logger"
)

// Seeder populates reference data
type Seeder interface {
	SeedReferenceData(ctx context.Context) (*entities.SeedReport, error)
}

// BootstrapUsecase seeds an empty database once, behind a shared secret
type BootstrapUsecase struct {
	profileRepo repositories.ProfileRepository
	seeder      Seeder
	secretKey   string
}

func NewBootstrapUsecase(profileRepo repositories.ProfileRepository, seeder Seeder, secretKey string) *BootstrapUsecase {
	return &BootstrapUsecase{
		profileRepo: profileRepo,
		seeder:      seeder,
		secretKey:   secretKey,
	}
}

// BootstrapIfEmpty seeds the reference data when the key matches and no profile exists yet.
// A wrong key (or no configured key) yields BootstrapRejected with ErrForbidden and touches nothing.
func (u *BootstrapUsecase) BootstrapIfEmpty(ctx context.Context, key string) (entities.BootstrapOutcome, *entities.SeedReport, error) {
	if !crypto.SecretMatches(key, u.secretKey) {
		logger.Warn(ctx, "Bootstrap rejected")
		return entities.BootstrapRejected, nil, domainerrors.Forbidden("invalid setup key")
	}

	n, err := u.profileRepo.Count(ctx)
	if err != nil {
		return "", nil, err
	}
	if n > 0 {
		logger.Info(ctx, "Bootstrap skipped, data already exists", zap.Int64("profiles", n))
		return entities.BootstrapAlreadySeeded, nil, nil
	}

	report, err := u.seeder.SeedReferenceData(ctx)
	if err != nil {
		return "", report, err
	}
	return entities.BootstrapSeeded, report, nil
}
