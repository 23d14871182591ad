package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"

	"dsw/internal/catalog"
	"dsw/internal/domain"
	"dsw/internal/storage/config"
	"dsw/internal/storage/db"
)

// ServiceConfig holds configuration for the core service
type ServiceConfig struct {
	ConfigDir string // Directory for configuration files
	DataDir   string // Directory for the history database
}

// Service is the orchestrator for script generation. The catalog and
// settings it holds are read-only, so concurrent Generate calls are safe.
type Service struct {
	config  *config.Config
	catalog *catalog.Catalog
	db      *db.DB
}

// NewService creates a new core service instance
func NewService(cfg ServiceConfig) (*Service, error) {
	appConfig, err := config.Load(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cat, err := catalog.Load(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "dsw.db")
	database, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &Service{
		config:  appConfig,
		catalog: cat,
		db:      database,
	}, nil
}

// Close releases resources held by the service
func (s *Service) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Config returns the loaded application settings.
func (s *Service) Config() *config.Config {
	return s.config
}

// Catalog returns the profile catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Generate resolves both profile IDs through the catalog and composes the
// switch script. currentID may be empty when the running desktop was not
// recognized; the target must always be a catalog profile. No partial
// script is produced on error.
func (s *Service) Generate(currentID, targetID string, manager domain.PackageManager) (domain.Script, error) {
	target, err := s.catalog.Lookup(targetID)
	if err != nil {
		return domain.Script{}, fmt.Errorf("target profile: %w", err)
	}

	var current domain.Profile
	if currentID != "" {
		current, err = s.catalog.Lookup(currentID)
		if err != nil {
			return domain.Script{}, fmt.Errorf("current profile: %w", err)
		}
	}

	return Compose(current, target, manager)
}

// RecordGeneration stores a history entry for a script that was written to
// outputPath. Recording happens after composition so the composer itself
// stays stateless.
func (s *Service) RecordGeneration(script domain.Script, outputPath string) error {
	from := script.From
	if from == "" {
		from = "unknown"
	}

	sum := sha256.Sum256([]byte(script.Text))
	return s.db.SaveGeneration(&db.Generation{
		CurrentProfile: from,
		TargetProfile:  script.To,
		Manager:        script.Manager.String(),
		OutputPath:     outputPath,
		ScriptSHA256:   hex.EncodeToString(sum[:]),
	})
}

// History returns the most recent generations, newest first.
func (s *Service) History(limit int) ([]db.Generation, error) {
	return s.db.ListGenerations(limit)
}
