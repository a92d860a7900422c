package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lawnchairsociety/smlogic/internal/logger"
	"github.com/lawnchairsociety/smlogic/internal/preset"
)

// ErrPresetNotFound is returned when a preset lookup fails.
var ErrPresetNotFound = errors.New("preset not found")

// ErrDuplicatePreset is returned when another preset already has the same content.
var ErrDuplicatePreset = errors.New("preset with identical content already stored")

// PresetRecord is a stored preset.
type PresetRecord struct {
	ID          int64
	Name        string
	Fingerprint string
	Score       int
	Body        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Config decodes the stored body back into a preset.
func (r *PresetRecord) Config() (*preset.Config, error) {
	cfg, err := preset.ParseYAML([]byte(r.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored preset %s: %w", r.Name, err)
	}
	cfg.Name = r.Name
	return cfg, nil
}

// SavePreset stores a preset under the given name, replacing any preset
// with that name. Storing the same content under a second name fails with
// ErrDuplicatePreset.
func (d *Database) SavePreset(name string, cfg *preset.Config) (*PresetRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("preset name cannot be empty")
	}

	fingerprint, err := preset.Fingerprint(cfg)
	if err != nil {
		return nil, err
	}

	named := *cfg
	named.Name = name
	body, err := named.Encode()
	if err != nil {
		return nil, err
	}

	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var other string
	err = tx.QueryRow(
		d.qb.Build("SELECT name FROM presets WHERE fingerprint = ? AND LOWER(name) <> LOWER(?)"),
		fingerprint, name,
	).Scan(&other)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePreset, other)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("failed to check preset fingerprint: %w", err)
	}

	now := time.Now().UTC()
	record := &PresetRecord{
		Name:        name,
		Fingerprint: fingerprint,
		Score:       preset.ComputeScore(cfg),
		Body:        string(body),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = tx.Exec(d.qb.Build(`
		INSERT INTO presets (name, fingerprint, score, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			fingerprint = excluded.fingerprint,
			score = excluded.score,
			body = excluded.body,
			updated_at = excluded.updated_at
	`), record.Name, record.Fingerprint, record.Score, record.Body, record.CreatedAt, record.UpdatedAt)
	if err != nil {
		if d.dialect.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePreset, name)
		}
		return nil, fmt.Errorf("failed to save preset: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit preset: %w", err)
	}

	saved, err := d.GetPreset(name)
	if err != nil {
		return nil, err
	}
	logger.Info("preset saved", "name", saved.Name, "score", saved.Score, "fingerprint", saved.Fingerprint[:12])
	return saved, nil
}

const presetColumns = "id, name, fingerprint, score, body, created_at, updated_at"

func scanPreset(row interface{ Scan(...any) error }) (*PresetRecord, error) {
	r := &PresetRecord{}
	err := row.Scan(&r.ID, &r.Name, &r.Fingerprint, &r.Score, &r.Body, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// GetPreset returns the preset stored under name, case-insensitive.
func (d *Database) GetPreset(name string) (*PresetRecord, error) {
	row := d.db.QueryRow(
		d.qb.Build("SELECT "+presetColumns+" FROM presets WHERE name = ?"),
		strings.TrimSpace(name),
	)
	r, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPresetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preset: %w", err)
	}
	return r, nil
}

// ListPresetsByScore returns every preset, most demanding first. Ties are
// ordered by name.
func (d *Database) ListPresetsByScore() ([]PresetRecord, error) {
	rows, err := d.db.Query("SELECT " + presetColumns + " FROM presets ORDER BY score DESC, name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer rows.Close()

	var records []PresetRecord
	for rows.Next() {
		r, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preset: %w", err)
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

// DeletePreset removes a preset by name.
func (d *Database) DeletePreset(name string) error {
	result, err := d.db.Exec(d.qb.Build("DELETE FROM presets WHERE name = ?"), strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	if n == 0 {
		return ErrPresetNotFound
	}
	logger.Info("preset deleted", "name", name)
	return nil
}
