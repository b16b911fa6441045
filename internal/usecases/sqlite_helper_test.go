package usecases_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/internal/infrastructure/models"
	repoimpl "portfolio.backend/internal/infrastructure/repositories"
	"portfolio.backend/internal/usecases"
)

// store bundles the gorm-backed repositories over one in-memory database
type store struct {
	db             *gorm.DB
	profiles       *repoimpl.ProfileRepository
	educations     *repoimpl.EducationRepository
	projects       *repoimpl.ProjectRepository
	categories     *repoimpl.SkillCategoryRepository
	skills         *repoimpl.SkillRepository
	certifications *repoimpl.CertificationRepository
	messages       *repoimpl.ContactMessageRepository
	uow            repositories.UnitOfWork
}

func newStore(t *testing.T) *store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	return &store{
		db:             db,
		profiles:       repoimpl.NewProfileRepository(db),
		educations:     repoimpl.NewEducationRepository(db),
		projects:       repoimpl.NewProjectRepository(db),
		categories:     repoimpl.NewSkillCategoryRepository(db),
		skills:         repoimpl.NewSkillRepository(db),
		certifications: repoimpl.NewCertificationRepository(db),
		messages:       repoimpl.NewContactMessageRepository(db),
		uow:            repoimpl.NewUnitOfWork(db),
	}
}

func (s *store) seeder(cache repositories.HomepageCache) *usecases.SeedUsecase {
	return usecases.NewSeedUsecase(s.profiles, s.educations, s.categories, s.skills, s.projects, s.certifications, s.uow, cache)
}

func (s *store) media(root string, cache repositories.HomepageCache) *usecases.MediaUsecase {
	return usecases.NewMediaUsecase(s.profiles, s.projects, s.categories, s.skills, s.certifications, newLocalStore(root), cache)
}

func (s *store) homepage(cache repositories.HomepageCache) *usecases.HomepageUsecase {
	return usecases.NewHomepageUsecase(s.profiles, s.educations, s.projects, s.categories, s.certifications, cache)
}

func (s *store) content(cache repositories.HomepageCache) *usecases.ContentUsecase {
	return usecases.NewContentUsecase(s.profiles, s.educations, s.projects, s.categories, s.skills, s.certifications, cache)
}

func (s *store) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(model).Count(&n).Error)
	return n
}
