package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"dsw/internal/catalog"
	"dsw/internal/detect"
	"dsw/internal/domain"
	"dsw/internal/storage/config"
)

// resolveManager returns the manager from the flag when set, otherwise the
// configured default.
func resolveManager(cfg *config.Config, flag string) (domain.PackageManager, error) {
	if flag == "" {
		return cfg.DefaultManager, nil
	}
	return domain.ParsePackageManager(flag)
}

// resolveCurrentProfile determines the current-profile ID for a generation.
// An explicit "none" forces an install-only script; an explicit ID must be
// in the catalog; otherwise the running desktop is detected, and an
// unrecognized desktop degrades to install-only rather than failing.
func resolveCurrentProfile(cat *catalog.Catalog, flag string) (string, error) {
	switch flag {
	case "none":
		return "", nil
	case "":
		id, err := detect.Current()
		if err != nil {
			if errors.Is(err, domain.ErrUnknownDesktop) {
				return "", nil
			}
			return "", err
		}
		return id, nil
	default:
		if !cat.Has(flag) {
			return "", fmt.Errorf("current profile: %w: %q", domain.ErrProfileNotFound, flag)
		}
		return flag, nil
	}
}

// defaultOutputPath places filename in the configured output directory,
// falling back to the working directory.
func defaultOutputPath(cfg *config.Config, filename string) string {
	if cfg.OutputDir == "" {
		return filename
	}
	return filepath.Join(cfg.OutputDir, filename)
}
