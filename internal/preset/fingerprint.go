package preset

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// Fingerprint identifies the content of a preset: two presets with the
// same techniques and settings share a fingerprint whatever their name or
// source format.
func Fingerprint(cfg *Config) (string, error) {
	doc := cfg.Document
	doc.Name = ""
	// maps are emitted with sorted keys
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode preset: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
