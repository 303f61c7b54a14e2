package planfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"sp-provision/internal/core/domain"
)

// Load returns the plan described by the YAML file at path. An empty path
// yields domain.DefaultPlan. Keys missing from the file keep their default
// values; a keywords or products list in the file replaces the default list.
func Load(path string) (domain.Plan, error) {
	if path == "" {
		return domain.DefaultPlan(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("read plan: %w", err)
	}
	plan, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return domain.Plan{}, fmt.Errorf("plan %s: %w", path, err)
	}
	return plan, nil
}

// Decode reads a YAML plan from r on top of the default plan. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func Decode(r io.Reader) (domain.Plan, error) {
	plan := domain.DefaultPlan()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil && !errors.Is(err, io.EOF) {
		return domain.Plan{}, fmt.Errorf("decode plan: %w", err)
	}
	return plan, nil
}
