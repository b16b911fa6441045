package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"portfolio.backend/internal/config"
	"portfolio.backend/internal/domain/entities"
	domainrepos "portfolio.backend/internal/domain/repositories"
	"portfolio.backend/internal/infrastructure/cache"
	"portfolio.backend/internal/infrastructure/datasources"
	"portfolio.backend/internal/infrastructure/repositories"
	"portfolio.backend/internal/usecases"
	"portfolio.backend/pkg/logger"
	"portfolio.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = datasources.OpenMigrated
	fatalfFn   = log.Fatalf
)

var errKeyRequired = errors.New("-key is required")

// run populates an empty database when the supplied key matches SETUP_SECRET_KEY
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("bootstrap", flag.ContinueOnError)
	fs.SetOutput(out)
	key := fs.String("key", "", "setup secret key")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *key == "" {
		return errKeyRequired
	}

	_ = loadDotenv()
	cfg := loadCfg()
	initLog(cfg.Server.Env)
	defer logger.Sync()

	ctx := context.Background()

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
	seeder := usecases.NewSeedUsecase(
		profileRepo,
		repositories.NewEducationRepository(db),
		repositories.NewSkillCategoryRepository(db),
		repositories.NewSkillRepository(db),
		repositories.NewProjectRepository(db),
		repositories.NewCertificationRepository(db),
		repositories.NewUnitOfWork(db),
		homepageCache,
	)
	bootstrap := usecases.NewBootstrapUsecase(profileRepo, seeder, cfg.Setup.SecretKey)

	outcome, report, err := bootstrap.BootstrapIfEmpty(ctx, *key)
	if err != nil {
		return fmt.Errorf("bootstrap %s: %w", outcomeOrFailed(outcome), err)
	}

	switch outcome {
	case entities.BootstrapAlreadySeeded:
		fmt.Fprintln(out, "Data already exists!")
	default:
		fmt.Fprintf(out, "Data populated successfully! (%d records)\n", report.CreatedCount())
	}
	return nil
}

func outcomeOrFailed(o entities.BootstrapOutcome) string {
	if o == "" {
		return "failed"
	}
	return string(o)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fatalfFn("%v", err)
	}
}
