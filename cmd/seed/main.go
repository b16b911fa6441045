package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"portfolio.backend/internal/config"
	"portfolio.backend/internal/domain/entities"
	domainrepos "portfolio.backend/internal/domain/repositories"
	"portfolio.backend/internal/infrastructure/cache"
	"portfolio.backend/internal/infrastructure/datasources"
	"portfolio.backend/internal/infrastructure/repositories"
	"portfolio.backend/internal/infrastructure/storage"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/logger"
	"portfolio.backend/pkg/redis"
)

var (
	loadDotenv    = godotenv.Load
	loadCfg       = config.Load
	initLog       = logger.Init
	initRedis     = redis.Init
	openDB        = datasources.OpenMigrated
	newMediaStore = storage.New
	fatalfFn      = log.Fatalf
)

var seedKinds = []entities.SeedKind{
	entities.SeedKindProfile,
	entities.SeedKindEducation,
	entities.SeedKindSkillCategory,
	entities.SeedKindSkill,
	entities.SeedKindProject,
	entities.SeedKindCertification,
}

var mediaStatuses = []entities.MediaStatus{
	entities.MediaAttached,
	entities.MediaAlreadySet,
	entities.MediaSourceMissing,
	entities.MediaRecordMissing,
	entities.MediaFailed,
}

// run inserts the reference data and, with -media, attaches the bundled files.
// Existing rows are never modified so it is safe to run on every deploy.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(out)
	withMedia := fs.Bool("media", false, "also attach the bundled media files")
	importDir := fs.String("import-dir", "", "directory holding the media files (default MEDIA_IMPORT_DIR)")
	verbose := fs.Bool("verbose", false, "log every fixture, including ones already present")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_ = loadDotenv()
	cfg := loadCfg()
	initLog(cfg.Server.Env)
	defer logger.Sync()
	if *verbose {
		logger.SetLevel(zapcore.DebugLevel)
	}

	ctx := context.Background()

	// the homepage cache is optional for the CLI
	var homepageCache domainrepos.HomepageCache
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Warn(ctx, "Redis unavailable, homepage cache will not be invalidated", zap.Error(err))
	} else if client := redis.GetClient(); client != nil {
		homepageCache = cache.NewHomepageCache(client, cfg.Redis.HomepageTTL)
		defer redis.Close()
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	profileRepo := repositories.NewProfileRepository(db)
	educationRepo := repositories.NewEducationRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	skillCategoryRepo := repositories.NewSkillCategoryRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	certificationRepo := repositories.NewCertificationRepository(db)

	seeder := usecases.NewSeedUsecase(profileRepo, educationRepo, skillCategoryRepo, skillRepo, projectRepo,
		certificationRepo, repositories.NewUnitOfWork(db), homepageCache)

	report, err := seeder.SeedReferenceData(ctx)
	if report != nil {
		printSeedReport(out, report)
	}
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	if !*withMedia {
		return nil
	}

	dir := *importDir
	if dir == "" {
		dir = cfg.Media.ImportDir
	}
	store, err := newMediaStore(ctx, cfg.Media)
	if err != nil {
		return fmt.Errorf("failed to initialize media store: %w", err)
	}
	media := usecases.NewMediaUsecase(profileRepo, projectRepo, skillCategoryRepo, skillRepo, certificationRepo, store, homepageCache)

	mediaReport, err := media.AttachMedia(ctx, usecases.DefaultMediaPlan(), dir)
	if mediaReport != nil {
		printMediaReport(out, mediaReport)
	}
	if err != nil {
		return fmt.Errorf("media import failed: %w", err)
	}
	return nil
}

func printSeedReport(out io.Writer, report *entities.SeedReport) {
	fmt.Fprintf(out, "Seed: %d created, %d already present\n", report.CreatedCount(), report.ExistingCount())
	for _, kind := range seedKinds {
		for _, key := range report.CreatedKeys(kind) {
			fmt.Fprintf(out, "  + %s %s\n", kind, key)
		}
	}
}

func printMediaReport(out io.Writer, report *entities.MediaReport) {
	fmt.Fprint(out, "Media:")
	for _, status := range mediaStatuses {
		fmt.Fprintf(out, " %s=%d", status, report.Count(status))
	}
	fmt.Fprintln(out)
	for _, res := range report.Results {
		switch res.Status {
		case entities.MediaAttached:
			fmt.Fprintf(out, "  + %s %s -> %s\n", res.Assignment.Target, res.Assignment.Field, res.Path)
		case entities.MediaFailed:
			fmt.Fprintf(out, "  ! %s %s: %s\n", res.Assignment.Target, res.Assignment.Filename, res.Error)
		}
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fatalfFn("%v", err)
	}
}
