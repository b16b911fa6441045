package datasources

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio.backend/internal/config"
	pgconn "portfolio.backend/internal/infrastructure/datasources/postgres"
	"portfolio.backend/internal/infrastructure/models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var newPostgresConnection = pgconn.NewConnection

// Open returns a gorm handle for the configured driver.
// Unique and foreign key violations are translated to gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	switch strings.ToLower(cfg.Driver) {
	case DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	case DriverPostgres, "":
		sqlDB, err := newPostgresConnection(cfg)
		if err != nil {
			return nil, err
		}
		db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
		if err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to initialize gorm: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// OpenSQLite opens a sqlite database with foreign keys enforced
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(withForeignKeys(dsn)), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return db, nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// OpenMigrated opens the configured database and brings the schema up to date
func OpenMigrated(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
