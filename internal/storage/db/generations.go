package db

import (
	"fmt"
	"time"
)

// Generation is one recorded script generation
type Generation struct {
	ID             int64
	CurrentProfile string
	TargetProfile  string
	Manager        string
	OutputPath     string
	ScriptSHA256   string
	CreatedAt      time.Time
}

// SaveGeneration inserts a generation record
func (d *DB) SaveGeneration(gen *Generation) error {
	result, err := d.Exec(`
		INSERT INTO generations (current_profile, target_profile, manager, output_path, script_sha256, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, gen.CurrentProfile, gen.TargetProfile, gen.Manager, gen.OutputPath, gen.ScriptSHA256, time.Now())
	if err != nil {
		return fmt.Errorf("saving generation: %w", err)
	}

	gen.ID, _ = result.LastInsertId()
	return nil
}

// ListGenerations returns the most recent generations, newest first.
// limit <= 0 returns all records.
func (d *DB) ListGenerations(limit int) ([]Generation, error) {
	query := `
		SELECT id, current_profile, target_profile, manager, output_path, script_sha256, created_at
		FROM generations
		ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying generations: %w", err)
	}
	defer rows.Close()

	var gens []Generation
	for rows.Next() {
		var gen Generation
		err := rows.Scan(
			&gen.ID, &gen.CurrentProfile, &gen.TargetProfile,
			&gen.Manager, &gen.OutputPath, &gen.ScriptSHA256, &gen.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning generation: %w", err)
		}
		gens = append(gens, gen)
	}

	return gens, rows.Err()
}
