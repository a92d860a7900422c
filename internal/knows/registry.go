package knows

import (
	"fmt"

	"github.com/lawnchairsociety/smlogic/internal/smbool"
)

// Registry is an immutable set of technique values. Build one with
// NewRegistry; the zero value is not usable.
type Registry struct {
	techniques map[ID]Technique
	overridden map[ID]bool
}

// NewRegistry returns the defaults overridden by the given values.
// Unknown identifiers are rejected.
func NewRegistry(overrides map[ID]Technique) (*Registry, error) {
	r := &Registry{
		techniques: make(map[ID]Technique, len(defaults)),
		overridden: make(map[ID]bool, len(overrides)),
	}
	for _, d := range defaults {
		r.techniques[d.id] = d.def
	}

	for id, t := range overrides {
		if !id.IsValid() {
			return nil, fmt.Errorf("unknown technique: %s", id)
		}
		r.techniques[id] = t
		r.overridden[id] = true
	}

	return r, nil
}

// Defaults returns a registry holding only built-in values.
func Defaults() *Registry {
	r, _ := NewRegistry(nil)
	return r
}

// Get returns the value of a technique. Unknown identifiers are unknown
// techniques and therefore never satisfied.
func (r *Registry) Get(id ID) smbool.Bool {
	return r.Technique(id).Bool()
}

// Technique returns the raw value of a technique.
func (r *Registry) Technique(id ID) Technique {
	return r.techniques[id]
}

// Overridden reports whether the preset set the technique explicitly.
func (r *Registry) Overridden(id ID) bool {
	return r.overridden[id]
}
