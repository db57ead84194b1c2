package model

import (
	"fmt"
	"strings"
)

// Validate checks the input shape of a report before rendering or
// persisting. Shape errors are rejected up front; asset problems
// (missing logo file etc.) are handled later, during rendering.
func (r *Report) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("report: %w", ErrEmptyTitle)
	}
	return nil
}

// Validate checks the input shape of a finding.
func (f *Finding) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return fmt.Errorf("finding %d: %w", f.ID, ErrEmptyTitle)
	}
	if strings.TrimSpace(f.Description) == "" {
		return fmt.Errorf("finding %d: %w", f.ID, ErrMissingDescription)
	}
	if !f.RiskLevel.IsValid() {
		return fmt.Errorf("finding %d: %q: %w", f.ID, f.RiskLevel, ErrInvalidRiskLevel)
	}
	if f.OwaspCategory != "" && !f.OwaspCategory.IsValid() {
		return fmt.Errorf("finding %d: %q: %w", f.ID, f.OwaspCategory, ErrInvalidOwaspCategory)
	}
	return nil
}

// ValidateAll validates a report together with its findings,
// returning the first failure.
func ValidateAll(r *Report, findings []*Finding) error {
	if err := r.Validate(); err != nil {
		return err
	}
	for _, f := range findings {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}
