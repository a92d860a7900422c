package database

import (
	"fmt"

	"github.com/lawnchairsociety/smlogic/internal/logger"
)

// CopyPresets copies every preset into dst, keeping names. Stored bodies
// are decoded and re-saved so dst recomputes scores and fingerprints.
// With dryRun set nothing is written. It returns the number of presets
// copied (or that would be).
func (d *Database) CopyPresets(dst *Database, dryRun bool) (int, error) {
	records, err := d.ListPresetsByScore()
	if err != nil {
		return 0, err
	}

	copied := 0
	for i := range records {
		r := &records[i]
		cfg, err := r.Config()
		if err != nil {
			return copied, err
		}
		if dryRun {
			logger.Info("would copy preset", "name", r.Name, "score", r.Score)
			copied++
			continue
		}
		saved, err := dst.SavePreset(r.Name, cfg)
		if err != nil {
			return copied, fmt.Errorf("failed to copy preset %s: %w", r.Name, err)
		}
		if saved.Fingerprint != r.Fingerprint {
			logger.Warning("preset fingerprint changed during copy", "name", r.Name,
				"old", r.Fingerprint, "new", saved.Fingerprint)
		}
		copied++
	}
	return copied, nil
}
