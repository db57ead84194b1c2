package store

import (
	"fmt"

	"github.com/Heykelog/PenSH/pkg/model"
)

func copyFinding(f *model.Finding) *model.Finding {
	c := *f
	if f.POCImages != nil {
		c.POCImages = make([]*model.POCImage, len(f.POCImages))
		for i, img := range f.POCImages {
			imgCopy := *img
			c.POCImages[i] = &imgCopy
		}
	}
	return &c
}

// CreateFinding validates and stores a new finding under its report.
// A zero display order places it after the report's current findings.
func (s *Store) CreateFinding(f *model.Finding) (*model.Finding, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index.Reports[f.ReportID]; !ok {
		return nil, fmt.Errorf("report %d: %w", f.ReportID, model.ErrNotFound)
	}

	c := copyFinding(f)
	c.ID = s.nextID("finding")
	c.CreatedAt = now()
	c.UpdatedAt = c.CreatedAt
	c.POCImages = nil
	if c.DisplayOrder == 0 {
		c.DisplayOrder = s.maxDisplayOrder(c.ReportID) + 1
	}
	s.index.Findings[c.ID] = c

	if err := s.saveIndex(); err != nil {
		return nil, err
	}
	return copyFinding(c), nil
}

func (s *Store) maxDisplayOrder(reportID int) int {
	max := 0
	for _, f := range s.index.Findings {
		if f.ReportID == reportID && f.DisplayOrder > max {
			max = f.DisplayOrder
		}
	}
	return max
}

// GetFinding returns one finding with its attached images.
func (s *Store) GetFinding(id int) (*model.Finding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.index.Findings[id]
	if !ok {
		return nil, fmt.Errorf("finding %d: %w", id, model.ErrNotFound)
	}
	return copyFinding(f), nil
}

// ListFindings returns a report's findings in canonical order.
func (s *Store) ListFindings(reportID int) ([]*model.Finding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.index.Reports[reportID]; !ok {
		return nil, fmt.Errorf("report %d: %w", reportID, model.ErrNotFound)
	}

	var findings []*model.Finding
	for _, f := range s.index.Findings {
		if f.ReportID == reportID {
			findings = append(findings, copyFinding(f))
		}
	}
	model.SortFindings(findings)
	return findings, nil
}

// UpdateFinding replaces the stored finding's mutable fields. Attached
// images are managed separately and survive the update.
func (s *Store) UpdateFinding(f *model.Finding) (*model.Finding, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.index.Findings[f.ID]
	if !ok {
		return nil, fmt.Errorf("finding %d: %w", f.ID, model.ErrNotFound)
	}

	c := copyFinding(f)
	c.ReportID = stored.ReportID
	c.CreatedAt = stored.CreatedAt
	c.UpdatedAt = now()
	c.POCImages = stored.POCImages
	s.index.Findings[c.ID] = c

	if err := s.saveIndex(); err != nil {
		return nil, err
	}
	return copyFinding(c), nil
}

// DeleteFinding removes a finding and its image files; templates saved
// from it are detached.
func (s *Store) DeleteFinding(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.index.Findings[id]
	if !ok {
		return fmt.Errorf("finding %d: %w", id, model.ErrNotFound)
	}

	s.removeImageFiles(f)
	s.detachTemplates(id)
	delete(s.index.Findings, id)

	return s.saveIndex()
}

// ReorderFindings assigns display order 1..n following the given id
// list. Every id must belong to the report; findings not listed keep
// their order and sort after the reordered ones.
func (s *Store) ReorderFindings(reportID int, ids []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index.Reports[reportID]; !ok {
		return fmt.Errorf("report %d: %w", reportID, model.ErrNotFound)
	}

	for _, id := range ids {
		f, ok := s.index.Findings[id]
		if !ok || f.ReportID != reportID {
			return fmt.Errorf("finding %d: %w", id, model.ErrNotFound)
		}
	}

	ts := now()
	for pos, id := range ids {
		f := s.index.Findings[id]
		f.DisplayOrder = pos + 1
		f.UpdatedAt = ts
	}

	return s.saveIndex()
}
