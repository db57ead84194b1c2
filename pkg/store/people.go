package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Heykelog/PenSH/pkg/model"
)

// ErrDuplicateName rejects a second customer with an existing name.
var ErrDuplicateName = fmt.Errorf("store: duplicate name")

// CreateCustomer stores a new customer. Names are unique; marking a
// customer default clears the previous default.
func (s *Store) CreateCustomer(c *model.Customer) (*model.Customer, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("customer: %w", model.ErrEmptyTitle)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.index.Customers {
		if strings.EqualFold(existing.Name, c.Name) {
			return nil, fmt.Errorf("customer %q: %w", c.Name, ErrDuplicateName)
		}
	}

	cp := *c
	cp.ID = s.nextID("customer")
	cp.CreatedAt = now()
	cp.UpdatedAt = cp.CreatedAt
	if cp.IsDefault {
		s.clearDefaultCustomer()
	}
	s.index.Customers[cp.ID] = &cp

	if err := s.saveIndex(); err != nil {
		return nil, err
	}
	out := cp
	return &out, nil
}

func (s *Store) clearDefaultCustomer() {
	for _, c := range s.index.Customers {
		c.IsDefault = false
	}
}

// GetCustomer returns one customer.
func (s *Store) GetCustomer(id int) (*model.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.index.Customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %d: %w", id, model.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

// ListCustomers returns all customers sorted by name.
func (s *Store) ListCustomers() ([]*model.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]*model.Customer, 0, len(s.index.Customers))
	for _, c := range s.index.Customers {
		cp := *c
		customers = append(customers, &cp)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].Name < customers[j].Name
	})
	return customers, nil
}

// UpdateCustomer replaces a customer's mutable fields.
func (s *Store) UpdateCustomer(c *model.Customer) (*model.Customer, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("customer: %w", model.ErrEmptyTitle)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.index.Customers[c.ID]
	if !ok {
		return nil, fmt.Errorf("customer %d: %w", c.ID, model.ErrNotFound)
	}
	for _, existing := range s.index.Customers {
		if existing.ID != c.ID && strings.EqualFold(existing.Name, c.Name) {
			return nil, fmt.Errorf("customer %q: %w", c.Name, ErrDuplicateName)
		}
	}

	cp := *c
	cp.CreatedAt = stored.CreatedAt
	cp.UpdatedAt = now()
	if cp.IsDefault {
		s.clearDefaultCustomer()
	}
	s.index.Customers[cp.ID] = &cp

	if err := s.saveIndex(); err != nil {
		return nil, err
	}
	out := cp
	return &out, nil
}

// DeleteCustomer removes a customer; reports keep their snapshot of
// the client name.
func (s *Store) DeleteCustomer(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index.Customers[id]; !ok {
		return fmt.Errorf("customer %d: %w", id, model.ErrNotFound)
	}
	for _, r := range s.index.Reports {
		if r.CustomerID == id {
			s.resolveNames(r)
			r.CustomerID = 0
		}
	}
	delete(s.index.Customers, id)
	return s.saveIndex()
}

// CreateTester stores a new tester. Marking a tester default clears
// the previous default.
func (s *Store) CreateTester(t *model.Tester) (*model.Tester, error) {
	if strings.TrimSpace(t.Name) == "" {
		return nil, fmt.Errorf("tester: %w", model.ErrEmptyTitle)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tp := *t
	tp.ID = s.nextID("tester")
	tp.CreatedAt = now()
	tp.UpdatedAt = tp.CreatedAt
	if tp.IsDefault {
		s.clearDefaultTester()
	}
	s.index.Testers[tp.ID] = &tp

	if err := s.saveIndex(); err != nil {
		return nil, err
	}
	out := tp
	return &out, nil
}

func (s *Store) clearDefaultTester() {
	for _, t := range s.index.Testers {
		t.IsDefault = false
	}
}

// GetTester returns one tester.
func (s *Store) GetTester(id int) (*model.Tester, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.index.Testers[id]
	if !ok {
		return nil, fmt.Errorf("tester %d: %w", id, model.ErrNotFound)
	}
	tp := *t
	return &tp, nil
}

// ListTesters returns all testers sorted by name.
func (s *Store) ListTesters() ([]*model.Tester, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	testers := make([]*model.Tester, 0, len(s.index.Testers))
	for _, t := range s.index.Testers {
		tp := *t
		testers = append(testers, &tp)
	}
	sort.Slice(testers, func(i, j int) bool {
		return testers[i].Name < testers[j].Name
	})
	return testers, nil
}

// UpdateTester replaces a tester's mutable fields.
func (s *Store) UpdateTester(t *model.Tester) (*model.Tester, error) {
	if strings.TrimSpace(t.Name) == "" {
		return nil, fmt.Errorf("tester: %w", model.ErrEmptyTitle)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.index.Testers[t.ID]
	if !ok {
		return nil, fmt.Errorf("tester %d: %w", t.ID, model.ErrNotFound)
	}

	tp := *t
	tp.CreatedAt = stored.CreatedAt
	tp.UpdatedAt = now()
	if tp.IsDefault {
		s.clearDefaultTester()
	}
	s.index.Testers[tp.ID] = &tp

	if err := s.saveIndex(); err != nil {
		return nil, err
	}
	out := tp
	return &out, nil
}

// DeleteTester removes a tester; reports keep their snapshot of the
// tester name.
func (s *Store) DeleteTester(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index.Testers[id]; !ok {
		return fmt.Errorf("tester %d: %w", id, model.ErrNotFound)
	}
	for _, r := range s.index.Reports {
		if r.TesterID == id {
			s.resolveNames(r)
			r.TesterID = 0
		}
	}
	delete(s.index.Testers, id)
	return s.saveIndex()
}
