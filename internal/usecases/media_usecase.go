package usecases

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/domain/repositories"
	"portfolio.backend/pkg/logger"
	"portfolio.backend/pkg/metrics"
)

// MediaUsecase copies bundled static files into media storage and links them to records
type MediaUsecase struct {
	profileRepo       repositories.ProfileRepository
	projectRepo       repositories.ProjectRepository
	skillCategoryRepo repositories.SkillCategoryRepository
	skillRepo         repositories.SkillRepository
	certificationRepo repositories.CertificationRepository
	store             repositories.MediaStore
	cache             repositories.HomepageCache
}

func NewMediaUsecase(
	profileRepo repositories.ProfileRepository,
	projectRepo repositories.ProjectRepository,
	skillCategoryRepo repositories.SkillCategoryRepository,
	skillRepo repositories.SkillRepository,
	certificationRepo repositories.CertificationRepository,
	store repositories.MediaStore,
	cache repositories.HomepageCache,
) *MediaUsecase {
	return &MediaUsecase{
		profileRepo:       profileRepo,
		projectRepo:       projectRepo,
		skillCategoryRepo: skillCategoryRepo,
		skillRepo:         skillRepo,
		certificationRepo: certificationRepo,
		store:             store,
		cache:             cache,
	}
}

// mediaRecord is the resolved owner of one attachment
type mediaRecord struct {
	id      uuid.UUID
	current null.String
	repo    repositories.AttachmentRepository
}

// AttachMedia processes every assignment of the plan. Attachments that are already set are
// never overwritten and missing source files are reported, not fatal. The returned error
// aggregates the assignments that failed outright.
func (u *MediaUsecase) AttachMedia(ctx context.Context, plan entities.MediaPlan, importDir string) (*entities.MediaReport, error) {
	report := &entities.MediaReport{}
	var result *multierror.Error

	for _, a := range plan {
		res, err := u.attach(ctx, a, importDir)
		if err != nil {
			res.Status = entities.MediaFailed
			res.Error = err.Error()
			result = multierror.Append(result, fmt.Errorf("%s %q %s: %w", a.Target, a.Key, a.Field, err))
			logger.Error(ctx, "Media attachment failed",
				zap.String("target", string(a.Target)),
				zap.String("key", a.Key),
				zap.String("field", string(a.Field)),
				zap.Error(err),
			)
		} else {
			logger.Info(ctx, "Media attachment processed",
				zap.String("target", string(a.Target)),
				zap.String("key", a.Key),
				zap.String("field", string(a.Field)),
				zap.String("status", string(res.Status)),
			)
		}
		metrics.IncMedia(string(res.Status))
		report.Results = append(report.Results, res)
	}

	if report.Count(entities.MediaAttached) > 0 {
		invalidateHomepage(ctx, u.cache)
	}
	return report, result.ErrorOrNil()
}

func (u *MediaUsecase) attach(ctx context.Context, a entities.MediaAssignment, importDir string) (entities.MediaResult, error) {
	res := entities.MediaResult{Assignment: a}
	if !a.Target.Supports(a.Field) {
		return res, fmt.Errorf("%w: %s has no %s attachment", domainerrors.ErrInvalidInput, a.Target, a.Field)
	}

	rec, err := u.resolve(ctx, a)
	if errors.Is(err, domainerrors.ErrNotFound) {
		res.Status = entities.MediaRecordMissing
		return res, nil
	}
	if err != nil {
		return res, err
	}
	if rec.current.Valid && rec.current.String != "" {
		res.Status = entities.MediaAlreadySet
		res.Path = rec.current.String
		return res, nil
	}

	src := filepath.Join(importDir, filepath.Base(a.Filename))
	f, err := os.Open(src)
	if errors.Is(err, os.ErrNotExist) {
		res.Status = entities.MediaSourceMissing
		return res, nil
	}
	if err != nil {
		return res, err
	}
	defer f.Close()

	key := a.Field.StorageKey(a.Filename)
	exists, err := u.store.Exists(ctx, key)
	if err != nil {
		return res, err
	}
	if !exists {
		if err := u.store.Save(ctx, key, f); err != nil {
			return res, err
		}
	}

	set, err := rec.repo.SetAttachment(ctx, rec.id, a.Field, key)
	if err != nil {
		return res, err
	}
	res.Path = key
	if !set {
		res.Status = entities.MediaAlreadySet
		return res, nil
	}
	res.Status = entities.MediaAttached
	return res, nil
}

// resolve finds the record an assignment points at by its natural key
func (u *MediaUsecase) resolve(ctx context.Context, a entities.MediaAssignment) (*mediaRecord, error) {
	switch a.Target {
	case entities.MediaTargetProfile:
		p, err := u.profileRepo.GetActive(ctx)
		if err != nil {
			return nil, err
		}
		return &mediaRecord{id: p.ID, current: profileAttachment(p, a.Field), repo: u.profileRepo}, nil

	case entities.MediaTargetProject:
		p, err := u.projectRepo.GetByTitle(ctx, a.Key)
		if err != nil {
			return nil, err
		}
		current := p.Video
		if a.Field == entities.FieldImage {
			current = p.Image
		}
		return &mediaRecord{id: p.ID, current: current, repo: u.projectRepo}, nil

	case entities.MediaTargetCertification:
		c, err := u.certificationRepo.GetByTitle(ctx, a.Key)
		if err != nil {
			return nil, err
		}
		current := c.CertificateImage
		if a.Field == entities.FieldCertificateFile {
			current = c.CertificateFile
		}
		return &mediaRecord{id: c.ID, current: current, repo: u.certificationRepo}, nil

	case entities.MediaTargetSkillCategory:
		c, err := u.skillCategoryRepo.GetByName(ctx, a.Key)
		if err != nil {
			return nil, err
		}
		return &mediaRecord{id: c.ID, current: c.Icon, repo: u.skillCategoryRepo}, nil

	case entities.MediaTargetSkill:
		categoryName, skillName, ok := strings.Cut(a.Key, "/")
		if !ok {
			return nil, fmt.Errorf("%w: skill key %q must be Category/Skill", domainerrors.ErrInvalidInput, a.Key)
		}
		c, err := u.skillCategoryRepo.GetByName(ctx, categoryName)
		if err != nil {
			return nil, err
		}
		s, err := u.skillRepo.GetByName(ctx, c.ID, skillName)
		if err != nil {
			return nil, err
		}
		return &mediaRecord{id: s.ID, current: s.Icon, repo: u.skillRepo}, nil
	}
	return nil, fmt.Errorf("%w: unknown media target %q", domainerrors.ErrInvalidInput, a.Target)
}

func profileAttachment(p *entities.Profile, field entities.AttachmentField) null.String {
	switch field {
	case entities.FieldBackgroundImage:
		return p.BackgroundImage
	case entities.FieldResume:
		return p.Resume
	}
	return p.ProfileImage
}
