package db

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"socialmedia/models"
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_(.+)\.sql$`)

// MigrationFile is one numbered SQL file on disk.
type MigrationFile struct {
	Number   int64
	Filename string
	Path     string
}

// MigrationResult reports what a run did.
type MigrationResult struct {
	Applied []string
	Skipped []string
}

const createLedgerSQL = `CREATE TABLE IF NOT EXISTS migrations (
	number INTEGER PRIMARY KEY,
	filename TEXT NOT NULL,
	run_at TEXT NOT NULL
)`

// ScanMigrations collects <number>_<description>.sql files from dir,
// sorted by leading number ascending. Files that do not match the
// pattern are ignored.
func ScanMigrations(dir string) ([]MigrationFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations dir %s: %w", dir, err)
	}

	var files []MigrationFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := migrationFilePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		number, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid migration number in %s: %w", entry.Name(), err)
		}
		files = append(files, MigrationFile{
			Number:   number,
			Filename: entry.Name(),
			Path:     filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Number < files[j].Number })
	return files, nil
}

// RunMigrations applies every pending migration from dir in order. Each
// migration runs inside its own transaction together with its ledger
// row; the first failing statement rolls that migration back and aborts
// the whole run. Already-applied numbers are skipped. Running twice in a
// row applies nothing the second time.
//
// Statements are split on literal semicolons, so migration files must
// not embed semicolons inside string bodies or triggers.
func RunMigrations(database *gorm.DB, dir string) (*MigrationResult, error) {
	files, err := ScanMigrations(dir)
	if err != nil {
		return nil, err
	}

	if err := database.Exec(createLedgerSQL).Error; err != nil {
		return nil, fmt.Errorf("failed to create migrations ledger: %w", err)
	}

	applied := make(map[int64]bool)
	var ledger []models.Migration
	if err := database.Find(&ledger).Error; err != nil {
		return nil, fmt.Errorf("failed to read migrations ledger: %w", err)
	}
	for _, row := range ledger {
		applied[row.Number] = true
	}

	result := &MigrationResult{}
	for _, file := range files {
		if applied[file.Number] {
			result.Skipped = append(result.Skipped, file.Filename)
			continue
		}
		if err := applyMigration(database, file); err != nil {
			return result, fmt.Errorf("migration %s failed: %w", file.Filename, err)
		}
		result.Applied = append(result.Applied, file.Filename)
	}

	return result, nil
}

func applyMigration(database *gorm.DB, file MigrationFile) error {
	raw, err := os.ReadFile(file.Path)
	if err != nil {
		return err
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range splitStatements(string(raw)) {
			if err := tx.Exec(statement).Error; err != nil {
				return err
			}
		}
		ledgerRow := models.Migration{
			Number:   file.Number,
			Filename: file.Filename,
			RunAt:    time.Now().UTC().Format(time.RFC3339),
		}
		return tx.Create(&ledgerRow).Error
	})
}

func splitStatements(sql string) []string {
	var statements []string
	for _, chunk := range strings.Split(sql, ";") {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			statements = append(statements, chunk)
		}
	}
	return statements
}
