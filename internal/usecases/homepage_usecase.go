package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/logger"
	"portfolio.backend/pkg/metrics"
)

// HomepageUsecase assembles the public page aggregate
type HomepageUsecase struct {
	profileRepo       repositories.ProfileRepository
	educationRepo     repositories.EducationRepository
	projectRepo       repositories.ProjectRepository
	skillCategoryRepo repositories.SkillCategoryRepository
	certificationRepo repositories.CertificationRepository
	cache             repositories.HomepageCache
}

func NewHomepageUsecase(
	profileRepo repositories.ProfileRepository,
	educationRepo repositories.EducationRepository,
	projectRepo repositories.ProjectRepository,
	skillCategoryRepo repositories.SkillCategoryRepository,
	certificationRepo repositories.CertificationRepository,
	cache repositories.HomepageCache,
) *HomepageUsecase {
	return &HomepageUsecase{
		profileRepo:       profileRepo,
		educationRepo:     educationRepo,
		projectRepo:       projectRepo,
		skillCategoryRepo: skillCategoryRepo,
		certificationRepo: certificationRepo,
		cache:             cache,
	}
}

// BuildHomepageView returns the active profile and every list in its default order.
// A missing profile is not an error. Cache failures fall through to the database.
func (u *HomepageUsecase) BuildHomepageView(ctx context.Context) (*entities.HomepageView, error) {
	if u.cache == nil {
		return u.load(ctx)
	}

	view, ok, err := u.cache.Get(ctx)
	switch {
	case err != nil:
		metrics.IncCacheLookup(metrics.CacheError)
		logger.Warn(ctx, "Homepage cache read failed", zap.Error(err))
	case ok:
		metrics.IncCacheLookup(metrics.CacheHit)
		return view, nil
	default:
		metrics.IncCacheLookup(metrics.CacheMiss)
	}

	// read before loading so a concurrent invalidation makes this view uncacheable
	generation, genErr := u.cache.Generation(ctx)

	view, err = u.load(ctx)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		logger.Warn(ctx, "Homepage cache generation read failed", zap.Error(genErr))
		return view, nil
	}
	if err := u.cache.Set(ctx, view, generation); err != nil {
		logger.Warn(ctx, "Homepage cache write failed", zap.Error(err))
	}
	return view, nil
}

func (u *HomepageUsecase) load(ctx context.Context) (*entities.HomepageView, error) {
	view := &entities.HomepageView{}

	profile, err := u.profileRepo.GetActive(ctx)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	view.Profile = profile

	if view.Educations, err = u.educationRepo.List(ctx); err != nil {
		return nil, err
	}
	if view.Projects, err = u.projectRepo.List(ctx); err != nil {
		return nil, err
	}
	if view.SkillCategories, err = u.skillCategoryRepo.ListWithSkills(ctx); err != nil {
		return nil, err
	}
	if view.Certifications, err = u.certificationRepo.List(ctx); err != nil {
		return nil, err
	}
	return view, nil
}

// Invalidate drops the cached page after content changes
func (u *HomepageUsecase) Invalidate(ctx context.Context) {
	invalidateHomepage(ctx, u.cache)
}

func invalidateHomepage(ctx context.Context, cache repositories.HomepageCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		logger.Warn(ctx, "Homepage cache invalidation failed", zap.Error(err))
	}
}
