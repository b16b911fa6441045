package usecases

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/logger"
	"portfolio.backend/pkg/metrics"
)

// SeedUsecase inserts the reference portfolio content without ever modifying existing rows
type SeedUsecase struct {
	profileRepo       repositories.ProfileRepository
	educationRepo     repositories.EducationRepository
	skillCategoryRepo repositories.SkillCategoryRepository
	skillRepo         repositories.SkillRepository
	projectRepo       repositories.ProjectRepository
	certificationRepo repositories.CertificationRepository
	uow               repositories.UnitOfWork
	cache             repositories.HomepageCache
	data              func() *ReferenceData
}

func NewSeedUsecase(
	profileRepo repositories.ProfileRepository,
	educationRepo repositories.EducationRepository,
	skillCategoryRepo repositories.SkillCategoryRepository,
	skillRepo repositories.SkillRepository,
	projectRepo repositories.ProjectRepository,
	certificationRepo repositories.CertificationRepository,
	uow repositories.UnitOfWork,
	cache repositories.HomepageCache,
) *SeedUsecase {
	return &SeedUsecase{
		profileRepo:       profileRepo,
		educationRepo:     educationRepo,
		skillCategoryRepo: skillCategoryRepo,
		skillRepo:         skillRepo,
		projectRepo:       projectRepo,
		certificationRepo: certificationRepo,
		uow:               uow,
		cache:             cache,
		data:              DefaultReferenceData,
	}
}

// WithReferenceData replaces the fixture source
func (u *SeedUsecase) WithReferenceData(data func() *ReferenceData) *SeedUsecase {
	u.data = data
	return u
}

// SeedReferenceData ensures every reference record exists. Running it twice creates nothing the second time.
func (u *SeedUsecase) SeedReferenceData(ctx context.Context) (*entities.SeedReport, error) {
	data := u.data()
	report := &entities.SeedReport{}
	defer u.finish(ctx, report)

	if data.Profile != nil {
		created, err := u.profileRepo.GetOrCreate(ctx, data.Profile)
		if err != nil {
			return report, fmt.Errorf("seed profile %q: %w", data.Profile.Name, err)
		}
		u.record(ctx, report, entities.SeedKindProfile, data.Profile.Name, created)
	}

	for _, e := range data.Educations {
		created, err := u.educationRepo.GetOrCreate(ctx, e)
		if err != nil {
			return report, fmt.Errorf("seed education %q: %w", e.Degree, err)
		}
		u.record(ctx, report, entities.SeedKindEducation, e.Degree+" @ "+e.Institution, created)
	}

	for _, c := range data.SkillCategories {
		if err := u.seedCategory(ctx, report, c); err != nil {
			return report, err
		}
	}

	for _, p := range data.Projects {
		created, err := u.projectRepo.GetOrCreate(ctx, p)
		if err != nil {
			return report, fmt.Errorf("seed project %q: %w", p.Title, err)
		}
		u.record(ctx, report, entities.SeedKindProject, p.Title, created)
	}

	for _, c := range data.Certifications {
		created, err := u.certificationRepo.GetOrCreate(ctx, c)
		if err != nil {
			return report, fmt.Errorf("seed certification %q: %w", c.Title, err)
		}
		u.record(ctx, report, entities.SeedKindCertification, c.Title, created)
	}

	return report, nil
}

// seedCategory writes a category and its skills atomically
func (u *SeedUsecase) seedCategory(ctx context.Context, report *entities.SeedReport, c *entities.SkillCategory) error {
	skills := c.Skills
	var items []entities.SeedItem

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		items = items[:0]
		created, err := u.skillCategoryRepo.GetOrCreate(txCtx, c)
		if err != nil {
			return fmt.Errorf("seed skill category %q: %w", c.Name, err)
		}
		items = append(items, entities.SeedItem{Kind: entities.SeedKindSkillCategory, Key: c.Name, Created: created})

		for _, s := range skills {
			s.CategoryID = c.ID
			created, err := u.skillRepo.GetOrCreate(txCtx, s)
			if err != nil {
				return fmt.Errorf("seed skill %q in %q: %w", s.Name, c.Name, err)
			}
			items = append(items, entities.SeedItem{Kind: entities.SeedKindSkill, Key: c.Name + "/" + s.Name, Created: created})
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.Skills = skills
	for _, item := range items {
		u.record(ctx, report, item.Kind, item.Key, item.Created)
	}
	return nil
}

func (u *SeedUsecase) record(ctx context.Context, report *entities.SeedReport, kind entities.SeedKind, key string, created bool) {
	report.Record(kind, key, created)
	if created {
		logger.Info(ctx, "Seed record created", zap.String("kind", string(kind)), zap.String("key", key))
		return
	}
	logger.Debug(ctx, "Seed record already present", zap.String("kind", string(kind)), zap.String("key", key))
}

func (u *SeedUsecase) finish(ctx context.Context, report *entities.SeedReport) {
	perKind := map[entities.SeedKind][2]int{}
	for _, item := range report.Items {
		counts := perKind[item.Kind]
		if item.Created {
			counts[0]++
		} else {
			counts[1]++
		}
		perKind[item.Kind] = counts
	}
	for kind, counts := range perKind {
		metrics.AddSeed(string(kind), counts[0], counts[1])
	}

	if report.CreatedCount() > 0 {
		invalidateHomepage(ctx, u.cache)
	}
	logger.Info(ctx, "Reference data seeded",
		zap.Int("created", report.CreatedCount()),
		zap.Int("existing", report.ExistingCount()),
	)
}
