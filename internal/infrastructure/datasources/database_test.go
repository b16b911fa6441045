package datasources

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"portfolio.backend/internal/config"
)

func TestWithForeignKeys(t *testing.T) {
	require.Equal(t, "portfolio.db?_foreign_keys=on", withForeignKeys("portfolio.db"))
	require.Equal(t, "file:x?mode=memory&_foreign_keys=on", withForeignKeys("file:x?mode=memory"))
	require.Equal(t, "file:x?_foreign_keys=off", withForeignKeys("file:x?_foreign_keys=off"))
}

func TestOpen_SQLite(t *testing.T) {
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := Open(config.DatabaseConfig{Driver: "SQLite", SQLitePath: dsn})
	require.NoError(t, err)

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	require.Equal(t, 1, fk)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "mysql"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported database driver")
}

func TestOpen_PostgresConnectionFailure(t *testing.T) {
	orig := newPostgresConnection
	t.Cleanup(func() { newPostgresConnection = orig })
	newPostgresConnection = func(config.DatabaseConfig) (*sql.DB, error) {
		return nil, errors.New("failed to ping database: refused")
	}

	_, err := Open(config.DatabaseConfig{Driver: "postgres"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to ping database")
}

func TestOpenMigrated_CreatesTables(t *testing.T) {
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := OpenMigrated(config.DatabaseConfig{Driver: DriverSQLite, SQLitePath: dsn})
	require.NoError(t, err)

	for _, table := range []string{"profiles", "educations", "projects", "skill_categories", "skills", "certifications", "contact_messages"} {
		require.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestOpenMigrated_OpenError(t *testing.T) {
	_, err := OpenMigrated(config.DatabaseConfig{Driver: "mysql"})
	require.Error(t, err)
}
