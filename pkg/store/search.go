package store

import (
	"sort"
	"strings"

	"github.com/Heykelog/PenSH/pkg/model"
)

// SearchFindings returns findings whose title, description or solution
// contains the query, case-insensitively. An empty query matches
// nothing.
func (s *Store) SearchFindings(query string) ([]*model.Finding, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []*model.Finding
	for _, f := range s.index.Findings {
		if containsFold(f.Title, q) || containsFold(f.Description, q) || containsFold(f.Solution, q) {
			matches = append(matches, copyFinding(f))
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

// SearchReports returns reports whose title, description or client name
// contains the query, case-insensitively.
func (s *Store) SearchReports(query string) ([]*model.Report, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []*model.Report
	for _, r := range s.index.Reports {
		c := copyReport(r)
		s.resolveNames(c)
		if containsFold(c.Title, q) || containsFold(c.Description, q) || containsFold(c.ClientName, q) {
			matches = append(matches, c)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func containsFold(s, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(s), loweredQuery)
}

// Statistics summarizes the stored data. Every risk level and OWASP
// category appears in its distribution even at zero.
type Statistics struct {
	Reports   int `json:"reports"`
	Findings  int `json:"findings"`
	Customers int `json:"customers"`
	Testers   int `json:"testers"`
	Templates int `json:"templates"`

	ByRisk  map[model.RiskLevel]int     `json:"by_risk"`
	ByOwasp map[model.OwaspCategory]int `json:"by_owasp"`
}

// Stats computes aggregate statistics over the whole store.
func (s *Store) Stats() (*Statistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Statistics{
		Reports:   len(s.index.Reports),
		Findings:  len(s.index.Findings),
		Customers: len(s.index.Customers),
		Testers:   len(s.index.Testers),
		Templates: len(s.index.Templates),
		ByRisk:    make(map[model.RiskLevel]int, len(model.OrderedRiskLevels())),
		ByOwasp:   make(map[model.OwaspCategory]int, len(model.AllOwaspCategories())),
	}
	for _, level := range model.OrderedRiskLevels() {
		stats.ByRisk[level] = 0
	}
	for _, cat := range model.AllOwaspCategories() {
		stats.ByOwasp[cat] = 0
	}

	for _, f := range s.index.Findings {
		stats.ByRisk[f.RiskLevel]++
		if f.OwaspCategory != "" {
			stats.ByOwasp[f.OwaspCategory]++
		}
	}
	return stats, nil
}
