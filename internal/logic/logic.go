// Package logic answers the traversal and boss questions of the item
// placement: each predicate takes the items collected so far and returns
// whether the requirement is met and how hard meeting it is.
//
// A Logic value closes over an immutable technique registry and settings
// snapshot, holds no other state and is safe for concurrent use.
package logic

import (
	"github.com/lawnchairsociety/smlogic/internal/items"
	"github.com/lawnchairsociety/smlogic/internal/knows"
	"github.com/lawnchairsociety/smlogic/internal/settings"
	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// Logic evaluates predicates for one preset.
type Logic struct {
	knows    *knows.Registry
	settings *settings.Settings
}

// New returns a Logic for the given registries. Nil registries fall back
// to the built-in defaults.
func New(k *knows.Registry, s *settings.Settings) *Logic {
	if k == nil {
		k = knows.Defaults()
	}
	if s == nil {
		s = settings.Defaults()
	}
	return &Logic{knows: k, settings: s}
}

// Knows returns the technique registry.
func (l *Logic) Knows() *knows.Registry {
	return l.knows
}

// Settings returns the settings snapshot.
func (l *Logic) Settings() *settings.Settings {
	return l.settings
}

func (l *Logic) know(id knows.ID) smbool.Bool {
	return l.knows.Get(id)
}

func have(it items.Items, item items.Item) smbool.Bool {
	return items.Have(it, item)
}
