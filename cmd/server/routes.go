package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio.backend/internal/config"
	domainrepos "portfolio.backend/internal/domain/repositories"
	"portfolio.backend/internal/infrastructure/repositories"
	"portfolio.backend/internal/infrastructure/storage"
	"portfolio.backend/internal/interfaces/http/handlers"
	"portfolio.backend/internal/interfaces/http/middleware"
	"portfolio.backend/internal/interfaces/http/views"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/jwt"
	"portfolio.backend/pkg/metrics"
)

const (
	serviceName    = "portfolio-backend"
	serviceVersion = "1.0.0"
)

type routeDeps struct {
	homeHandler    *handlers.HomeHandler
	contactHandler *handlers.ContactHandler
	setupHandler   *handlers.SetupHandler
	authHandler    *handlers.AuthHandler
	contentHandler *handlers.ContentHandler
	adminHandler   *handlers.AdminHandler
	authMiddleware gin.HandlerFunc
	mediaURL       func(key string) string
}

// newRouteDeps wires repositories, usecases and handlers over one database handle
func newRouteDeps(cfg *config.Config, db *gorm.DB, store domainrepos.MediaStore, cache domainrepos.HomepageCache) (routeDeps, error) {
	if store == nil {
		return routeDeps{}, fmt.Errorf("media store is required")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)

	profileRepo := repositories.NewProfileRepository(db)
	educationRepo := repositories.NewEducationRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	skillCategoryRepo := repositories.NewSkillCategoryRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	certificationRepo := repositories.NewCertificationRepository(db)
	messageRepo := repositories.NewContactMessageRepository(db)
	uow := repositories.NewUnitOfWork(db)

	seedUsecase := usecases.NewSeedUsecase(profileRepo, educationRepo, skillCategoryRepo, skillRepo, projectRepo, certificationRepo, uow, cache)
	mediaUsecase := usecases.NewMediaUsecase(profileRepo, projectRepo, skillCategoryRepo, skillRepo, certificationRepo, store, cache)
	homepageUsecase := usecases.NewHomepageUsecase(profileRepo, educationRepo, projectRepo, skillCategoryRepo, certificationRepo, cache)
	contentUsecase := usecases.NewContentUsecase(profileRepo, educationRepo, projectRepo, skillCategoryRepo, skillRepo, certificationRepo, cache)
	contactUsecase := usecases.NewContactUsecase(messageRepo)
	bootstrapUsecase := usecases.NewBootstrapUsecase(profileRepo, seedUsecase, cfg.Setup.SecretKey)
	authUsecase := usecases.NewAdminAuthUsecase(cfg.Admin.PasswordHash, jwtService)

	return routeDeps{
		homeHandler:    handlers.NewHomeHandler(homepageUsecase),
		contactHandler: handlers.NewContactHandler(contactUsecase),
		setupHandler:   handlers.NewSetupHandler(bootstrapUsecase),
		authHandler:    handlers.NewAuthHandler(authUsecase),
		contentHandler: handlers.NewContentHandler(contentUsecase),
		adminHandler:   handlers.NewAdminHandler(contentUsecase, contactUsecase, seedUsecase, mediaUsecase, cfg.Media.ImportDir),
		authMiddleware: middleware.AuthMiddleware(jwtService),
		mediaURL:       store.URL,
	}, nil
}

func buildRouter(cfg *config.Config, d routeDeps) (*gin.Engine, error) {
	tmpl, err := views.Templates(d.mediaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	applyCORSMiddleware(r, cfg.CORS.AllowedOrigins)

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerMediaRoute(r, cfg.Media)
	registerPageRoutes(r, d, cfg.Setup.RouteEnabled)
	registerAPIV1Routes(r, d)
	return r, nil
}

func applyCORSMiddleware(r *gin.Engine, allowedOrigins []string) {
	r.Use(middleware.CORSMiddleware(allowedOrigins))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}

// registerMediaRoute serves uploaded files when they live on local disk under a path-style MEDIA_URL
func registerMediaRoute(r *gin.Engine, cfg config.MediaConfig) {
	backend := strings.ToLower(cfg.Backend)
	if backend != storage.BackendLocal && backend != "" {
		return
	}
	prefix := strings.TrimSuffix(cfg.URL, "/")
	if !strings.HasPrefix(prefix, "/") || prefix == "" {
		return
	}
	r.Static(prefix, cfg.Root)
}

func registerPageRoutes(r *gin.Engine, d routeDeps, setupRouteEnabled bool) {
	r.GET("/", d.homeHandler.Index)
	r.POST("/contact", d.contactHandler.Submit)
	r.GET("/contact", d.contactHandler.RedirectHome)

	if setupRouteEnabled {
		r.GET("/setup-data", d.setupHandler.SetupData)
	}
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		v1.GET("/homepage", d.homeHandler.Homepage)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
		}

		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/stats", d.adminHandler.Stats)
			admin.POST("/seed", d.adminHandler.Seed)
			admin.POST("/media/import", d.adminHandler.ImportMedia)
			admin.POST("/bootstrap", d.setupHandler.Bootstrap)

			idem := middleware.IdempotencyMiddleware()
			ch := d.contentHandler

			admin.GET("/profiles", ch.ListProfiles)
			admin.GET("/profiles/:id", ch.GetProfile)
			admin.POST("/profiles", idem, ch.CreateProfile)
			admin.PUT("/profiles/:id", ch.UpdateProfile)
			admin.DELETE("/profiles/:id", ch.DeleteProfile)

			admin.GET("/educations", ch.ListEducations)
			admin.GET("/educations/:id", ch.GetEducation)
			admin.POST("/educations", idem, ch.CreateEducation)
			admin.PUT("/educations/:id", ch.UpdateEducation)
			admin.PATCH("/educations/:id/order", ch.ReorderEducation)
			admin.DELETE("/educations/:id", ch.DeleteEducation)

			admin.GET("/projects", ch.ListProjects)
			admin.GET("/projects/:id", ch.GetProject)
			admin.POST("/projects", idem, ch.CreateProject)
			admin.PUT("/projects/:id", ch.UpdateProject)
			admin.PATCH("/projects/:id/order", ch.ReorderProject)
			admin.DELETE("/projects/:id", ch.DeleteProject)

			admin.GET("/skill-categories", ch.ListSkillCategories)
			admin.GET("/skill-categories/:id", ch.GetSkillCategory)
			admin.POST("/skill-categories", idem, ch.CreateSkillCategory)
			admin.PUT("/skill-categories/:id", ch.UpdateSkillCategory)
			admin.PATCH("/skill-categories/:id/order", ch.ReorderSkillCategory)
			admin.DELETE("/skill-categories/:id", ch.DeleteSkillCategory)

			admin.GET("/skills", ch.ListSkills)
			admin.GET("/skills/:id", ch.GetSkill)
			admin.POST("/skills", idem, ch.CreateSkill)
			admin.PUT("/skills/:id", ch.UpdateSkill)
			admin.PATCH("/skills/:id/order", ch.ReorderSkill)
			admin.DELETE("/skills/:id", ch.DeleteSkill)

			admin.GET("/certifications", ch.ListCertifications)
			admin.GET("/certifications/:id", ch.GetCertification)
			admin.POST("/certifications", idem, ch.CreateCertification)
			admin.PUT("/certifications/:id", ch.UpdateCertification)
			admin.PATCH("/certifications/:id/order", ch.ReorderCertification)
			admin.DELETE("/certifications/:id", ch.DeleteCertification)

			admin.GET("/messages", d.contactHandler.ListMessages)
			admin.GET("/messages/:id", d.contactHandler.GetMessage)
			admin.PATCH("/messages/:id/read", d.contactHandler.MarkRead)
			admin.DELETE("/messages/:id", d.contactHandler.DeleteMessage)
		}
	}
}
