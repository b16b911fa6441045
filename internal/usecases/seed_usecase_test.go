package usecases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/infrastructure/models"
	"portfolio.backend/internal/usecases"
)

func TestSeedUsecase_SeedReferenceData_CreatesEverything(t *testing.T) {
	s := newStore(t)
	cache := new(MockHomepageCache)
	cache.On("Invalidate", mock.Anything).Return(nil).Once()

	report, err := s.seeder(cache).SeedReferenceData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), s.count(t, &models.Profile{}))
	assert.Equal(t, int64(3), s.count(t, &models.Education{}))
	assert.Equal(t, int64(6), s.count(t, &models.SkillCategory{}))
	assert.Equal(t, int64(23), s.count(t, &models.Skill{}))
	assert.Equal(t, int64(3), s.count(t, &models.Project{}))
	assert.Equal(t, int64(5), s.count(t, &models.Certification{}))

	assert.Equal(t, 41, report.CreatedCount())
	assert.Equal(t, 0, report.ExistingCount())
	assert.Equal(t, []string{"Habib Nidal"}, report.CreatedKeys(entities.SeedKindProfile))
	cache.AssertExpectations(t)
}

func TestSeedUsecase_SeedReferenceData_Idempotent(t *testing.T) {
	s := newStore(t)
	uc := s.seeder(nil)
	ctx := context.Background()

	_, err := uc.SeedReferenceData(ctx)
	require.NoError(t, err)

	second, err := uc.SeedReferenceData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.CreatedCount())
	assert.Equal(t, 41, second.ExistingCount())

	assert.Equal(t, int64(1), s.count(t, &models.Profile{}))
	assert.Equal(t, int64(23), s.count(t, &models.Skill{}))
	assert.Equal(t, int64(5), s.count(t, &models.Certification{}))
}

func TestSeedUsecase_SeedReferenceData_DoesNotOverwrite(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	edited := &entities.Project{Title: "Wearable Emergency Alert System", Description: "edited by hand", Order: 9}
	require.NoError(t, s.projects.Create(ctx, edited))

	report, err := s.seeder(nil).SeedReferenceData(ctx)
	require.NoError(t, err)
	assert.NotContains(t, report.CreatedKeys(entities.SeedKindProject), "Wearable Emergency Alert System")

	got, err := s.projects.GetByTitle(ctx, "Wearable Emergency Alert System")
	require.NoError(t, err)
	assert.Equal(t, "edited by hand", got.Description)
	assert.Equal(t, 9, got.Order)
	assert.Equal(t, int64(3), s.count(t, &models.Project{}))
}

func TestSeedUsecase_SeedReferenceData_SharedSkillNames(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.seeder(nil).SeedReferenceData(ctx)
	require.NoError(t, err)

	var n int64
	require.NoError(t, s.db.Model(&models.Skill{}).Where("name = ?", "JavaScript").Count(&n).Error)
	assert.Equal(t, int64(2), n)
}

func TestSeedUsecase_SeedReferenceData_UsesUnitOfWorkPerCategory(t *testing.T) {
	s := newStore(t)
	uow := new(MockUnitOfWork)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)

	uc := usecases.NewSeedUsecase(s.profiles, s.educations, s.categories, s.skills, s.projects, s.certifications, uow, nil).
		WithReferenceData(func() *usecases.ReferenceData {
			return &usecases.ReferenceData{
				SkillCategories: []*entities.SkillCategory{
					{Name: "Languages", Order: 1, Skills: []*entities.Skill{{Name: "Go"}, {Name: "Python"}}},
					{Name: "Tools", Order: 2},
				},
			}
		})

	report, err := uc.SeedReferenceData(context.Background())
	require.NoError(t, err)
	uow.AssertNumberOfCalls(t, "Do", 2)
	assert.ElementsMatch(t, []string{"Languages/Go", "Languages/Python"}, report.CreatedKeys(entities.SeedKindSkill))
}
