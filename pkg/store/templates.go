package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Heykelog/PenSH/pkg/model"
	"github.com/Heykelog/PenSH/pkg/owasp"
)

// TemplateOverrides optionally replaces template fields when a finding
// is instantiated from one.
type TemplateOverrides struct {
	Title        string
	AffectedArea string
}

// CreateFindingFromOwasp instantiates a finding from the static
// OWASP Top-10 template of the given category.
func (s *Store) CreateFindingFromOwasp(reportID int, category model.OwaspCategory, o TemplateOverrides) (*model.Finding, error) {
	tpl, ok := owasp.TemplateFor(category)
	if !ok {
		return nil, fmt.Errorf("owasp template %q: %w", category, model.ErrNotFound)
	}

	f := &model.Finding{
		ReportID:      reportID,
		Title:         tpl.Title,
		Description:   tpl.Description,
		Impact:        tpl.Impact,
		Solution:      tpl.Solution,
		RiskLevel:     tpl.RiskLevel,
		OwaspCategory: category,
	}
	applyOverrides(f, o)
	return s.CreateFinding(f)
}

// CreateFindingFromTemplate instantiates a finding from a stored
// knowledge-base template.
func (s *Store) CreateFindingFromTemplate(reportID, templateID int, o TemplateOverrides) (*model.Finding, error) {
	s.mu.RLock()
	tpl, ok := s.index.Templates[templateID]
	if !ok {
		s.mu.RUnlock()
		return nil, fmt.Errorf("template %d: %w", templateID, model.ErrNotFound)
	}
	f := &model.Finding{
		ReportID:         reportID,
		Title:            tpl.Title,
		Description:      tpl.Description,
		AffectedArea:     tpl.AffectedArea,
		Impact:           tpl.Impact,
		Solution:         tpl.Solution,
		RiskLevel:        tpl.RiskLevel,
		OwaspCategory:    tpl.OwaspCategory,
		StepsToReproduce: tpl.StepsToReproduce,
		Request:          tpl.Request,
		Response:         tpl.Response,
		CVSSScore:        tpl.CVSSScore,
		CWEID:            tpl.CWEID,
		Refs:             tpl.Refs,
	}
	s.mu.RUnlock()

	applyOverrides(f, o)
	return s.CreateFinding(f)
}

func applyOverrides(f *model.Finding, o TemplateOverrides) {
	if o.Title != "" {
		f.Title = o.Title
	}
	if o.AffectedArea != "" {
		f.AffectedArea = o.AffectedArea
	}
}

// SaveFindingToKB snapshots a finding into the knowledge base so it
// can be reused across reports.
func (s *Store) SaveFindingToKB(findingID int) (*model.KnowledgeBaseTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.index.Findings[findingID]
	if !ok {
		return nil, fmt.Errorf("finding %d: %w", findingID, model.ErrNotFound)
	}

	tpl := &model.KnowledgeBaseTemplate{
		ID:               s.nextID("template"),
		Title:            f.Title,
		Description:      f.Description,
		AffectedArea:     f.AffectedArea,
		Impact:           f.Impact,
		Solution:         f.Solution,
		RiskLevel:        f.RiskLevel,
		OwaspCategory:    f.OwaspCategory,
		StepsToReproduce: f.StepsToReproduce,
		Request:          f.Request,
		Response:         f.Response,
		CVSSScore:        f.CVSSScore,
		CWEID:            f.CWEID,
		Refs:             f.Refs,
		FromFinding:      true,
		FindingID:        f.ID,
		CreatedAt:        now(),
	}
	s.index.Templates[tpl.ID] = tpl

	if err := s.saveIndex(); err != nil {
		return nil, err
	}
	c := *tpl
	return &c, nil
}

// CreateTemplate stores a knowledge-base template written from
// scratch rather than snapshotted from a finding.
func (s *Store) CreateTemplate(tpl *model.KnowledgeBaseTemplate) (*model.KnowledgeBaseTemplate, error) {
	if strings.TrimSpace(tpl.Title) == "" {
		return nil, fmt.Errorf("template: %w", model.ErrEmptyTitle)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := *tpl
	c.ID = s.nextID("template")
	c.FromFinding = false
	c.FindingID = 0
	c.CreatedAt = now()
	c.UpdatedAt = c.CreatedAt
	s.index.Templates[c.ID] = &c

	if err := s.saveIndex(); err != nil {
		return nil, err
	}
	out := c
	return &out, nil
}

// GetTemplate returns one knowledge-base template.
func (s *Store) GetTemplate(id int) (*model.KnowledgeBaseTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tpl, ok := s.index.Templates[id]
	if !ok {
		return nil, fmt.Errorf("template %d: %w", id, model.ErrNotFound)
	}
	c := *tpl
	return &c, nil
}

// UpdateTemplate replaces a template's mutable fields.
func (s *Store) UpdateTemplate(tpl *model.KnowledgeBaseTemplate) (*model.KnowledgeBaseTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.index.Templates[tpl.ID]
	if !ok {
		return nil, fmt.Errorf("template %d: %w", tpl.ID, model.ErrNotFound)
	}

	c := *tpl
	c.FromFinding = stored.FromFinding
	c.FindingID = stored.FindingID
	c.CreatedAt = stored.CreatedAt
	c.UpdatedAt = now()
	s.index.Templates[c.ID] = &c

	if err := s.saveIndex(); err != nil {
		return nil, err
	}
	out := c
	return &out, nil
}

// ListTemplates returns all knowledge-base templates, newest first.
func (s *Store) ListTemplates() ([]*model.KnowledgeBaseTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	templates := make([]*model.KnowledgeBaseTemplate, 0, len(s.index.Templates))
	for _, tpl := range s.index.Templates {
		c := *tpl
		templates = append(templates, &c)
	}
	sort.Slice(templates, func(i, j int) bool {
		if templates[i].CreatedAt.Equal(templates[j].CreatedAt) {
			return templates[i].ID > templates[j].ID
		}
		return templates[i].CreatedAt.After(templates[j].CreatedAt)
	})
	return templates, nil
}

// DeleteTemplate removes a knowledge-base template.
func (s *Store) DeleteTemplate(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index.Templates[id]; !ok {
		return fmt.Errorf("template %d: %w", id, model.ErrNotFound)
	}
	delete(s.index.Templates, id)
	return s.saveIndex()
}

// detachTemplates clears the finding link of templates created from
// the given finding. Caller must hold the write lock.
func (s *Store) detachTemplates(findingID int) {
	for _, tpl := range s.index.Templates {
		if tpl.FromFinding && tpl.FindingID == findingID {
			tpl.FindingID = 0
		}
	}
}
