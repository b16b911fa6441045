package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/domain/repositories"
)

const issueDateLayout = "2006-01-02"

// ContentUsecase backs the admin API for the six page record types.
// Every successful write drops the cached homepage.
type ContentUsecase struct {
	profileRepo       repositories.ProfileRepository
	educationRepo     repositories.EducationRepository
	projectRepo       repositories.ProjectRepository
	skillCategoryRepo repositories.SkillCategoryRepository
	skillRepo         repositories.SkillRepository
	certificationRepo repositories.CertificationRepository
	cache             repositories.HomepageCache
}

func NewContentUsecase(
	profileRepo repositories.ProfileRepository,
	educationRepo repositories.EducationRepository,
	projectRepo repositories.ProjectRepository,
	skillCategoryRepo repositories.SkillCategoryRepository,
	skillRepo repositories.SkillRepository,
	certificationRepo repositories.CertificationRepository,
	cache repositories.HomepageCache,
) *ContentUsecase {
	return &ContentUsecase{
		profileRepo:       profileRepo,
		educationRepo:     educationRepo,
		projectRepo:       projectRepo,
		skillCategoryRepo: skillCategoryRepo,
		skillRepo:         skillRepo,
		certificationRepo: certificationRepo,
		cache:             cache,
	}
}

// written invalidates the homepage cache after a successful write and passes err through
func (u *ContentUsecase) written(ctx context.Context, err error) error {
	if err == nil {
		invalidateHomepage(ctx, u.cache)
	}
	return err
}

// Profiles

func (u *ContentUsecase) ListProfiles(ctx context.Context) ([]*entities.Profile, error) {
	return u.profileRepo.List(ctx)
}

func (u *ContentUsecase) GetProfile(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	return u.profileRepo.GetByID(ctx, id)
}

func (u *ContentUsecase) CreateProfile(ctx context.Context, input *entities.ProfileInput) (*entities.Profile, error) {
	p := &entities.Profile{}
	applyProfileInput(p, input)
	if err := u.written(ctx, u.profileRepo.Create(ctx, p)); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *ContentUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, input *entities.ProfileInput) (*entities.Profile, error) {
	p, err := u.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyProfileInput(p, input)
	if err := u.written(ctx, u.profileRepo.Update(ctx, p)); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *ContentUsecase) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	return u.written(ctx, u.profileRepo.Delete(ctx, id))
}

func applyProfileInput(p *entities.Profile, input *entities.ProfileInput) {
	p.Name = input.Name
	p.Title = input.Title
	p.Bio = input.Bio
	p.Email = input.Email
	p.Phone = input.Phone
	p.LinkedInURL = input.LinkedInURL
	p.GithubURL = input.GithubURL
}

// Education

func (u *ContentUsecase) ListEducations(ctx context.Context) ([]*entities.Education, error) {
	return u.educationRepo.List(ctx)
}

func (u *ContentUsecase) GetEducation(ctx context.Context, id uuid.UUID) (*entities.Education, error) {
	return u.educationRepo.GetByID(ctx, id)
}

func (u *ContentUsecase) CreateEducation(ctx context.Context, input *entities.EducationInput) (*entities.Education, error) {
	e := &entities.Education{}
	if err := applyEducationInput(e, input); err != nil {
		return nil, err
	}
	if err := u.written(ctx, u.educationRepo.Create(ctx, e)); err != nil {
		return nil, err
	}
	return e, nil
}

func (u *ContentUsecase) UpdateEducation(ctx context.Context, id uuid.UUID, input *entities.EducationInput) (*entities.Education, error) {
	e, err := u.educationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyEducationInput(e, input); err != nil {
		return nil, err
	}
	if err := u.written(ctx, u.educationRepo.Update(ctx, e)); err != nil {
		return nil, err
	}
	return e, nil
}

func (u *ContentUsecase) ReorderEducation(ctx context.Context, id uuid.UUID, order int) error {
	return u.written(ctx, u.educationRepo.UpdateOrder(ctx, id, order))
}

func (u *ContentUsecase) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	return u.written(ctx, u.educationRepo.Delete(ctx, id))
}

func applyEducationInput(e *entities.Education, input *entities.EducationInput) error {
	if input.EndYear != nil && *input.EndYear < input.StartYear {
		return domainerrors.BadRequest("end year must not be before start year")
	}
	e.Degree = input.Degree
	e.Institution = input.Institution
	e.StartYear = input.StartYear
	e.EndYear = null.IntFromPtr(input.EndYear)
	e.Description = input.Description
	e.Order = input.Order
	return nil
}

// Projects

func (u *ContentUsecase) ListProjects(ctx context.Context) ([]*entities.Project, error) {
	return u.projectRepo.List(ctx)
}

func (u *ContentUsecase) GetProject(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	return u.projectRepo.GetByID(ctx, id)
}

func (u *ContentUsecase) CreateProject(ctx context.Context, input *entities.ProjectInput) (*entities.Project, error) {
	p := &entities.Project{}
	applyProjectInput(p, input)
	if err := u.written(ctx, u.projectRepo.Create(ctx, p)); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *ContentUsecase) UpdateProject(ctx context.Context, id uuid.UUID, input *entities.ProjectInput) (*entities.Project, error) {
	p, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyProjectInput(p, input)
	if err := u.written(ctx, u.projectRepo.Update(ctx, p)); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *ContentUsecase) ReorderProject(ctx context.Context, id uuid.UUID, order int) error {
	return u.written(ctx, u.projectRepo.UpdateOrder(ctx, id, order))
}

func (u *ContentUsecase) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return u.written(ctx, u.projectRepo.Delete(ctx, id))
}

func applyProjectInput(p *entities.Project, input *entities.ProjectInput) {
	p.Title = input.Title
	p.Description = input.Description
	p.Technologies = input.Technologies
	p.GithubLink = input.GithubLink
	p.LiveLink = input.LiveLink
	p.Order = input.Order
}

// Skill categories

func (u *ContentUsecase) ListSkillCategories(ctx context.Context) ([]*entities.SkillCategory, error) {
	return u.skillCategoryRepo.ListWithSkills(ctx)
}

func (u *ContentUsecase) GetSkillCategory(ctx context.Context, id uuid.UUID) (*entities.SkillCategory, error) {
	return u.skillCategoryRepo.GetByID(ctx, id)
}

func (u *ContentUsecase) CreateSkillCategory(ctx context.Context, input *entities.SkillCategoryInput) (*entities.SkillCategory, error) {
	c := &entities.SkillCategory{Name: input.Name, Order: input.Order}
	if err := u.written(ctx, u.skillCategoryRepo.Create(ctx, c)); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *ContentUsecase) UpdateSkillCategory(ctx context.Context, id uuid.UUID, input *entities.SkillCategoryInput) (*entities.SkillCategory, error) {
	c, err := u.skillCategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = input.Name
	c.Order = input.Order
	if err := u.written(ctx, u.skillCategoryRepo.Update(ctx, c)); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *ContentUsecase) ReorderSkillCategory(ctx context.Context, id uuid.UUID, order int) error {
	return u.written(ctx, u.skillCategoryRepo.UpdateOrder(ctx, id, order))
}

// DeleteSkillCategory removes the category and every skill in it
func (u *ContentUsecase) DeleteSkillCategory(ctx context.Context, id uuid.UUID) error {
	return u.written(ctx, u.skillCategoryRepo.Delete(ctx, id))
}

// Skills

func (u *ContentUsecase) ListSkills(ctx context.Context) ([]*entities.Skill, error) {
	return u.skillRepo.List(ctx)
}

func (u *ContentUsecase) GetSkill(ctx context.Context, id uuid.UUID) (*entities.Skill, error) {
	return u.skillRepo.GetByID(ctx, id)
}

func (u *ContentUsecase) CreateSkill(ctx context.Context, input *entities.SkillInput) (*entities.Skill, error) {
	s := &entities.Skill{CategoryID: input.CategoryID, Name: input.Name, Order: input.Order}
	if err := u.written(ctx, u.skillRepo.Create(ctx, s)); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *ContentUsecase) UpdateSkill(ctx context.Context, id uuid.UUID, input *entities.SkillInput) (*entities.Skill, error) {
	s, err := u.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.CategoryID = input.CategoryID
	s.Name = input.Name
	s.Order = input.Order
	if err := u.written(ctx, u.skillRepo.Update(ctx, s)); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *ContentUsecase) ReorderSkill(ctx context.Context, id uuid.UUID, order int) error {
	return u.written(ctx, u.skillRepo.UpdateOrder(ctx, id, order))
}

func (u *ContentUsecase) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	return u.written(ctx, u.skillRepo.Delete(ctx, id))
}

// Certifications

func (u *ContentUsecase) ListCertifications(ctx context.Context) ([]*entities.Certification, error) {
	return u.certificationRepo.List(ctx)
}

func (u *ContentUsecase) GetCertification(ctx context.Context, id uuid.UUID) (*entities.Certification, error) {
	return u.certificationRepo.GetByID(ctx, id)
}

func (u *ContentUsecase) CreateCertification(ctx context.Context, input *entities.CertificationInput) (*entities.Certification, error) {
	c := &entities.Certification{}
	if err := applyCertificationInput(c, input); err != nil {
		return nil, err
	}
	if err := u.written(ctx, u.certificationRepo.Create(ctx, c)); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *ContentUsecase) UpdateCertification(ctx context.Context, id uuid.UUID, input *entities.CertificationInput) (*entities.Certification, error) {
	c, err := u.certificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyCertificationInput(c, input); err != nil {
		return nil, err
	}
	if err := u.written(ctx, u.certificationRepo.Update(ctx, c)); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *ContentUsecase) ReorderCertification(ctx context.Context, id uuid.UUID, order int) error {
	return u.written(ctx, u.certificationRepo.UpdateOrder(ctx, id, order))
}

func (u *ContentUsecase) DeleteCertification(ctx context.Context, id uuid.UUID) error {
	return u.written(ctx, u.certificationRepo.Delete(ctx, id))
}

func applyCertificationInput(c *entities.Certification, input *entities.CertificationInput) error {
	c.IssueDate = null.Time{}
	if input.IssueDate != "" {
		d, err := time.Parse(issueDateLayout, input.IssueDate)
		if err != nil {
			return domainerrors.BadRequest("issue date must use YYYY-MM-DD")
		}
		c.IssueDate = null.TimeFrom(d)
	}
	c.Title = input.Title
	c.Issuer = input.Issuer
	c.Order = input.Order
	return nil
}

// ContentCounts is the number of records of each page type
type ContentCounts struct {
	Profiles        int `json:"profiles"`
	Educations      int `json:"educations"`
	Projects        int `json:"projects"`
	SkillCategories int `json:"skillCategories"`
	Skills          int `json:"skills"`
	Certifications  int `json:"certifications"`
}

func (u *ContentUsecase) Counts(ctx context.Context) (*ContentCounts, error) {
	profiles, err := u.profileRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	counts := &ContentCounts{Profiles: int(profiles)}

	educations, err := u.educationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts.Educations = len(educations)

	projects, err := u.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts.Projects = len(projects)

	categories, err := u.skillCategoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts.SkillCategories = len(categories)

	skills, err := u.skillRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts.Skills = len(skills)

	certifications, err := u.certificationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts.Certifications = len(certifications)
	return counts, nil
}
