// Package help loads the descriptions of the logic predicates and player
// techniques from a YAML file.
package help

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Topic kinds.
const (
	KindPredicate = "predicate"
	KindTechnique = "technique"
	KindTerm      = "term"
)

// Topic is one help entry.
type Topic struct {
	Kind    string   `yaml:"kind"`
	Aliases []string `yaml:"aliases"`
	Text    string   `yaml:"text"`
}

// Data is the layout of the help file.
type Data struct {
	General string           `yaml:"general"`
	Topics  map[string]Topic `yaml:"topics"`
}

// Help answers topic lookups. It is read-only once loaded.
type Help struct {
	data        Data
	aliasLookup map[string]string // lowercased name or alias -> topic name
}

// Load reads a help file.
func Load(path string) (*Help, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read help file: %w", err)
	}
	return Parse(data)
}

// Parse decodes help YAML. An alias shared by two topics is an error.
func Parse(data []byte) (*Help, error) {
	var d Data
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse help file: %w", err)
	}

	h := &Help{data: d, aliasLookup: make(map[string]string)}
	for name, topic := range d.Topics {
		switch topic.Kind {
		case KindPredicate, KindTechnique, KindTerm:
		default:
			return nil, fmt.Errorf("topic %s: unknown kind %q", name, topic.Kind)
		}
		for _, alias := range append([]string{name}, topic.Aliases...) {
			key := strings.ToLower(alias)
			if other, ok := h.aliasLookup[key]; ok && other != name {
				return nil, fmt.Errorf("alias %q used by %s and %s", alias, other, name)
			}
			h.aliasLookup[key] = name
		}
	}
	return h, nil
}

// Topic returns the text of a topic looked up by name or alias,
// case-insensitive.
func (h *Help) Topic(name string) (string, bool) {
	topicName, ok := h.aliasLookup[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(h.data.Topics[topicName].Text), true
}

// Text returns help for a topic, or the general help if topic is empty.
func (h *Help) Text(topic string) string {
	if topic == "" {
		return strings.TrimSpace(h.data.General)
	}
	if text, ok := h.Topic(topic); ok {
		return text
	}
	return fmt.Sprintf("No help available for '%s'.\nRun 'smlogic explain' for the list of topics.", topic)
}

// Names returns the sorted topic names of a kind; an empty kind lists all.
func (h *Help) Names(kind string) []string {
	var names []string
	for name, topic := range h.data.Topics {
		if kind == "" || topic.Kind == kind {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Missing returns the names that have no topic, in input order.
func (h *Help) Missing(names []string) []string {
	var missing []string
	for _, name := range names {
		if _, ok := h.aliasLookup[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
