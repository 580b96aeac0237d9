package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"socialmedia/models"
)

var testDBCounter int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:db_test_%d?mode=memory&cache=shared&_fk=1", n)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return database
}

func writeMigration(t *testing.T, dir, name, sql string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644))
}

func schemaDump(t *testing.T, database *gorm.DB) []string {
	t.Helper()
	var dump []string
	err := database.Raw(
		"SELECT sql FROM sqlite_master WHERE sql IS NOT NULL AND name != 'sqlite_sequence' ORDER BY name").
		Scan(&dump).Error
	require.NoError(t, err)
	return dump
}

func TestScanMigrationsOrdering(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "010_last.sql", "SELECT 1")
	writeMigration(t, dir, "2_second.sql", "SELECT 1")
	writeMigration(t, dir, "001_first.sql", "SELECT 1")
	writeMigration(t, dir, "README.md", "not a migration")
	writeMigration(t, dir, "noprefix.sql", "SELECT 1")

	files, err := ScanMigrations(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "001_first.sql", files[0].Filename)
	assert.Equal(t, "2_second.sql", files[1].Filename)
	assert.Equal(t, "010_last.sql", files[2].Filename)
}

func TestRunMigrationsAppliesInOrder(t *testing.T) {
	database := openTestDB(t)

	result, err := RunMigrations(database, "../migrations")
	require.NoError(t, err)
	assert.Empty(t, result.Skipped)
	require.Len(t, result.Applied, 5)
	assert.Equal(t, "001_create_users.sql", result.Applied[0])

	for _, table := range []string{"users", "posts", "comments", "likes", "followers", "migrations"} {
		var count int64
		err := database.Raw(
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).
			Scan(&count).Error
		require.NoError(t, err)
		assert.Equal(t, int64(1), count, "missing table %s", table)
	}

	var ledger []models.Migration
	require.NoError(t, database.Order("number").Find(&ledger).Error)
	require.Len(t, ledger, 5)
	assert.Equal(t, int64(1), ledger[0].Number)
	assert.Equal(t, "001_create_users.sql", ledger[0].Filename)
	assert.NotEmpty(t, ledger[0].RunAt)
}

func TestRunMigrationsIdempotent(t *testing.T) {
	database := openTestDB(t)

	first, err := RunMigrations(database, "../migrations")
	require.NoError(t, err)
	require.Len(t, first.Applied, 5)

	before := schemaDump(t, database)

	second, err := RunMigrations(database, "../migrations")
	require.NoError(t, err)
	assert.Empty(t, second.Applied)
	assert.Len(t, second.Skipped, 5)

	assert.Equal(t, before, schemaDump(t, database))
}

func TestRunMigrationsRollsBackFailure(t *testing.T) {
	database := openTestDB(t)
	dir := t.TempDir()

	writeMigration(t, dir, "001_ok.sql", "CREATE TABLE alpha (id INTEGER PRIMARY KEY)")
	writeMigration(t, dir, "002_broken.sql",
		"CREATE TABLE beta (id INTEGER PRIMARY KEY);\nINSERT INTO missing_table VALUES (1)")
	writeMigration(t, dir, "003_never.sql", "CREATE TABLE gamma (id INTEGER PRIMARY KEY)")

	result, err := RunMigrations(database, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "002_broken.sql")
	assert.Equal(t, []string{"001_ok.sql"}, result.Applied)

	// The failing migration rolled back wholesale and the run stopped.
	var names []string
	require.NoError(t, database.Raw(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('alpha', 'beta', 'gamma')").
		Scan(&names).Error)
	assert.Equal(t, []string{"alpha"}, names)

	var ledger []models.Migration
	require.NoError(t, database.Find(&ledger).Error)
	require.Len(t, ledger, 1)
	assert.Equal(t, int64(1), ledger[0].Number)
}

func TestRunMigrationsSplitsStatements(t *testing.T) {
	database := openTestDB(t)
	dir := t.TempDir()

	writeMigration(t, dir, "001_multi.sql",
		"CREATE TABLE one (id INTEGER PRIMARY KEY);\n\nCREATE TABLE two (id INTEGER PRIMARY KEY);\n")

	_, err := RunMigrations(database, dir)
	require.NoError(t, err)

	var count int64
	require.NoError(t, database.Raw(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('one', 'two')").
		Scan(&count).Error)
	assert.Equal(t, int64(2), count)
}
