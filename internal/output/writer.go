// Package output persists generated scripts to disk. It is the only part
// of the system that writes outside the config and data directories; the
// composer itself never touches the filesystem.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write stores the script text at path and marks it executable so the user
// can run it directly after review.
func Write(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(text), 0755); err != nil {
		return fmt.Errorf("writing script: %w", err)
	}

	// WriteFile only applies the mode on creation
	if err := os.Chmod(path, 0755); err != nil {
		return fmt.Errorf("marking script executable: %w", err)
	}

	return nil
}
