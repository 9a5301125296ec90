// Package config holds the compiled-in defaults and the optional policy file
// that overrides them. The policy file is plain YAML so host deployments can
// tune sprint lengths without rebuilding.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy carries the tunable rule-engine parameters.
type Policy struct {
	// DefaultSprintDays is the auto-computed sprint length in days.
	DefaultSprintDays int `yaml:"default_sprint_days"`
	// MaxSprintDays caps the inclusive day span of a sprint.
	MaxSprintDays int `yaml:"max_sprint_days"`
	// OnDelete decides what happens to tasks when their sprint is deleted:
	// "restrict" rejects the delete, "detach" clears their sprint reference.
	OnDelete string `yaml:"on_delete"`
}

// DefaultPolicy returns the compiled-in policy.
func DefaultPolicy() Policy {
	return Policy{
		DefaultSprintDays: DefaultSprintDays,
		MaxSprintDays:     MaxSprintDays,
		OnDelete:          DeleteRestrict,
	}
}

// LoadPolicy reads the policy file at path, filling unset fields from the
// defaults. A missing file is not an error: the defaults apply.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return policy, nil
	}
	if err != nil {
		return policy, fmt.Errorf("read policy: %w", err)
	}

	var file Policy
	if err := yaml.Unmarshal(data, &file); err != nil {
		return policy, fmt.Errorf("parse policy: %w", err)
	}
	if file.DefaultSprintDays > 0 {
		policy.DefaultSprintDays = file.DefaultSprintDays
	}
	if file.MaxSprintDays > 0 {
		policy.MaxSprintDays = file.MaxSprintDays
	}
	if file.OnDelete != "" {
		policy.OnDelete = file.OnDelete
	}
	return policy, policy.validate()
}

func (p Policy) validate() error {
	if p.DefaultSprintDays < 1 {
		return fmt.Errorf("default_sprint_days must be positive, got %d", p.DefaultSprintDays)
	}
	if p.MaxSprintDays < p.DefaultSprintDays {
		return fmt.Errorf("max_sprint_days (%d) must be at least default_sprint_days (%d)",
			p.MaxSprintDays, p.DefaultSprintDays)
	}
	switch p.OnDelete {
	case DeleteRestrict, DeleteDetach:
	default:
		return fmt.Errorf("on_delete must be %q or %q, got %q", DeleteRestrict, DeleteDetach, p.OnDelete)
	}
	return nil
}
