package store

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/hashicorp/go-multierror"
	"gorm.io/gorm"
	gormlog "gorm.io/gorm/logger"

	"github.com/ghsa-tools/ghsa-db/internal/log"
	"github.com/ghsa-tools/ghsa-db/pkg/data"
)

// insert batch size for the rebuild transaction; sqlite limits the number of
// bound parameters per statement.
const batchSize = 500

var _ data.Writer = (*writer)(nil)

type writer struct {
	db         *gorm.DB
	path       string
	advisories []Advisory
	packages   []AffectedPackage
}

// NewWriter opens (or creates) the destination sqlite file and ensures the
// schema exists. An open failure here is fatal to the run. All staged rows
// are committed in a single rebuild transaction on Close, so the prior
// content of the destination survives any failure before that commit.
func NewWriter(path string) (data.Writer, error) {
	db, err := open(path)
	if err != nil {
		return nil, &StoreError{Path: path, Cause: err}
	}

	if err := db.AutoMigrate(&Advisory{}, &AffectedPackage{}); err != nil {
		return nil, &StoreError{Path: path, Cause: fmt.Errorf("unable to migrate schema: %w", err)}
	}

	return &writer{db: db, path: path}, nil
}

func open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlog.Default.LogMode(gormlog.Silent),
	})
}

func (w *writer) Write(entries ...data.Entry) error {
	for _, entry := range entries {
		switch row := entry.Data.(type) {
		case Advisory:
			w.advisories = append(w.advisories, row)
		case AffectedPackage:
			w.packages = append(w.packages, row)
		default:
			return fmt.Errorf("data entry is not an advisory or affected-package row: %T", row)
		}
	}
	return nil
}

// Close performs the full rebuild as one transaction (drop, recreate, insert
// all staged rows, commit) and releases the connection. Either every staged
// row is visible afterward or the destination is exactly as it was before.
func (w *writer) Close() error {
	var errs error

	if err := w.rebuild(); err != nil {
		errs = multierror.Append(errs, err)
	}

	if sqlDB, err := w.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			errs = multierror.Append(errs, &StoreError{Path: w.path, Cause: err})
		}
	}

	if errs != nil {
		return errs
	}

	log.WithFields("path", w.path).Info("database created")
	return nil
}

func (w *writer) rebuild() error {
	err := w.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Migrator().DropTable(&Advisory{}, &AffectedPackage{}); err != nil {
			return fmt.Errorf("unable to drop previous tables: %w", err)
		}
		if err := tx.AutoMigrate(&Advisory{}, &AffectedPackage{}); err != nil {
			return fmt.Errorf("unable to recreate schema: %w", err)
		}
		if len(w.advisories) > 0 {
			if err := tx.CreateInBatches(w.advisories, batchSize).Error; err != nil {
				return fmt.Errorf("unable to write advisory rows: %w", err)
			}
		}
		if len(w.packages) > 0 {
			if err := tx.CreateInBatches(w.packages, batchSize).Error; err != nil {
				return fmt.Errorf("unable to write affected-package rows: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return &StoreError{Path: w.path, Cause: err}
	}
	return nil
}
