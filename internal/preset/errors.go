package preset

import (
	"errors"
	"fmt"
)

// ErrMalformedConfiguration matches every MalformedConfigurationError
// through errors.Is.
var ErrMalformedConfiguration = errors.New("malformed configuration")

// MalformedConfigurationError reports a preset entry that cannot be
// loaded: an unknown technique or table, an unknown label, an out of range
// difficulty or an invalid algorithm rate.
type MalformedConfigurationError struct {
	Section string
	Key     string
	Value   string
	Err     error
}

func (e *MalformedConfigurationError) Error() string {
	msg := "malformed configuration in " + e.Section
	if e.Key != "" {
		msg += "." + e.Key
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (%q)", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedConfigurationError) Unwrap() error {
	return e.Err
}

func (e *MalformedConfigurationError) Is(target error) bool {
	return target == ErrMalformedConfiguration
}

func malformed(section, key, value string, err error) error {
	return &MalformedConfigurationError{Section: section, Key: key, Value: value, Err: err}
}
