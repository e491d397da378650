package diagstore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oxhq/optiq/internal/diag"
)

// Store wraps a gorm.DB connection, grounded on the teacher's
// db.Connect (db/sqlite.go): ensure the directory exists, open, run
// migrations. The dialector is glebarez/sqlite rather than the
// teacher's gorm.io/driver/sqlite, since that one shells out to cgo
// via mattn/go-sqlite3 and this module has no cgo toolchain assumption
// to make; glebarez/sqlite is a pure-Go drop-in gorm dialector. The
// teacher's Turso/libsql remote-database branch (tursodatabase/libsql-
// client-go) has no equivalent here: a local optimizer run has no
// remote diagnostic store to point at, so that branch is dropped
// rather than adapted (see DESIGN.md).
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite database at path, creating its directory
// and running migrations, and returns a Store ready for RecordRun.
func Open(path string, debug bool) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("diagstore: failed to create database directory: %w", err)
		}
	}

	cfg := &gorm.Config{}
	if debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("diagstore: failed to connect: %w", err)
	}
	if err := db.AutoMigrate(&Run{}, &Diagnostic{}); err != nil {
		return nil, fmt.Errorf("diagstore: migration failed: %w", err)
	}
	return &Store{db: db}, nil
}

// RecordRun persists one optimize() invocation and every diagnostic the
// given recorder collected during it, as a single transaction.
func (s *Store) RecordRun(sourceName string, unsafeMath, unsafeObject, changed bool, rec *diag.Recorder) (string, error) {
	now := time.Now()
	run := Run{
		ID:           uuid.NewString(),
		SourceName:   sourceName,
		UnsafeMath:   unsafeMath,
		UnsafeObject: unsafeObject,
		Changed:      changed,
		ErrorCount:   rec.ErrorCount(),
		FinishedAt:   &now,
	}
	for _, d := range rec.Entries() {
		run.Diagnostics = append(run.Diagnostics, Diagnostic{
			ID:             uuid.NewString(),
			Severity:       string(d.Severity),
			Code:           string(d.Code),
			Message:        d.Message,
			PositionFile:   d.Position.Filename,
			PositionLine:   d.Position.Line,
			PositionColumn: d.Position.Column,
		})
	}

	if err := s.db.Create(&run).Error; err != nil {
		return "", fmt.Errorf("diagstore: failed to record run: %w", err)
	}
	return run.ID, nil
}

// RunsWithErrors returns the most recent runs that recorded at least
// one ERROR or FATAL diagnostic, newest first, for a CLI "show me what
// broke recently" query.
func (s *Store) RunsWithErrors(limit int) ([]Run, error) {
	var runs []Run
	err := s.db.Preload("Diagnostics").
		Where("error_count > 0").
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("diagstore: failed to query runs: %w", err)
	}
	return runs, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
