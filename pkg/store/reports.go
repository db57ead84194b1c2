package store

import (
	"fmt"
	"sort"

	"github.com/Heykelog/PenSH/pkg/model"
)

func copyReport(r *model.Report) *model.Report {
	c := *r
	return &c
}

// CreateReport validates and stores a new report, assigning its id.
func (s *Store) CreateReport(r *model.Report) (*model.Report, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := copyReport(r)
	c.ID = s.nextID("report")
	c.CreatedAt = now()
	c.UpdatedAt = c.CreatedAt
	s.index.Reports[c.ID] = c

	if err := s.saveIndex(); err != nil {
		return nil, err
	}
	return copyReport(c), nil
}

// GetReport returns one report. Blank client and tester names fall
// back to the linked customer/tester entities.
func (s *Store) GetReport(id int) (*model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.index.Reports[id]
	if !ok {
		return nil, fmt.Errorf("report %d: %w", id, model.ErrNotFound)
	}
	c := copyReport(r)
	s.resolveNames(c)
	return c, nil
}

// resolveNames fills the denormalized name fields from linked
// entities. Caller must hold at least the read lock.
func (s *Store) resolveNames(r *model.Report) {
	if r.ClientName == "" && r.CustomerID != 0 {
		if cust, ok := s.index.Customers[r.CustomerID]; ok {
			r.ClientName = cust.Name
		}
	}
	if r.TesterName == "" && r.TesterID != 0 {
		if tester, ok := s.index.Testers[r.TesterID]; ok {
			r.TesterName = tester.Name
		}
	}
}

// ListReports returns all reports, newest first.
func (s *Store) ListReports() ([]*model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]*model.Report, 0, len(s.index.Reports))
	for _, r := range s.index.Reports {
		c := copyReport(r)
		s.resolveNames(c)
		reports = append(reports, c)
	}
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].ID > reports[j].ID
		}
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

// UpdateReport replaces the stored report's mutable fields.
func (s *Store) UpdateReport(r *model.Report) (*model.Report, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.index.Reports[r.ID]
	if !ok {
		return nil, fmt.Errorf("report %d: %w", r.ID, model.ErrNotFound)
	}

	c := copyReport(r)
	c.CreatedAt = stored.CreatedAt
	c.UpdatedAt = now()
	s.index.Reports[c.ID] = c

	if err := s.saveIndex(); err != nil {
		return nil, err
	}
	return copyReport(c), nil
}

// DeleteReport removes a report together with its findings and their
// image files. Knowledge-base templates created from those findings are
// detached, not deleted.
func (s *Store) DeleteReport(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index.Reports[id]; !ok {
		return fmt.Errorf("report %d: %w", id, model.ErrNotFound)
	}

	for fid, f := range s.index.Findings {
		if f.ReportID != id {
			continue
		}
		s.removeImageFiles(f)
		s.detachTemplates(fid)
		delete(s.index.Findings, fid)
	}
	delete(s.index.Reports, id)

	return s.saveIndex()
}
