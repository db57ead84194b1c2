// Package store provides file-based persistence for reports, findings
// and their supporting entities.
//
// Data is stored in a single JSON index for portability and simplicity;
// uploaded proof-of-concept images live as files next to it. For
// high-volume production use, consider upgrading to a database backend.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Heykelog/PenSH/pkg/model"
)

const (
	indexFile  = "index.json"
	uploadsDir = "uploads"
)

// Store manages all persisted entities under one base directory.
// Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	basePath string
	index    *storeIndex
}

type storeIndex struct {
	Reports   map[int]*model.Report                `json:"reports"`
	Findings  map[int]*model.Finding               `json:"findings"`
	Customers map[int]*model.Customer              `json:"customers"`
	Testers   map[int]*model.Tester                `json:"testers"`
	Templates map[int]*model.KnowledgeBaseTemplate `json:"templates"`

	// LastID holds the high-water mark per entity kind.
	LastID map[string]int `json:"last_id"`
}

func newIndex() *storeIndex {
	return &storeIndex{
		Reports:   make(map[int]*model.Report),
		Findings:  make(map[int]*model.Finding),
		Customers: make(map[int]*model.Customer),
		Testers:   make(map[int]*model.Tester),
		Templates: make(map[int]*model.KnowledgeBaseTemplate),
		LastID:    make(map[string]int),
	}
}

// NewStore opens (or creates) a store at the given directory.
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(basePath, uploadsDir), 0o755); err != nil {
		return nil, err
	}

	s := &Store{basePath: basePath, index: newIndex()}
	if err := s.loadIndex(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

func (s *Store) indexPath() string {
	return filepath.Join(s.basePath, indexFile)
}

// UploadsPath returns the directory image files are stored in.
func (s *Store) UploadsPath() string {
	return filepath.Join(s.basePath, uploadsDir)
}

func (s *Store) loadIndex() error {
	data, err := os.ReadFile(s.indexPath())
	if err != nil {
		return err
	}
	idx := newIndex()
	if err := json.Unmarshal(data, idx); err != nil {
		return err
	}
	s.index = idx
	return nil
}

// saveIndex persists the index using an atomic write: a temporary file
// first, then a rename, so a crash never leaves a torn index.
func (s *Store) saveIndex() error {
	data, err := json.MarshalIndent(s.index, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.indexPath() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.indexPath()); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// nextID allocates the next identifier for an entity kind. Caller must
// hold the write lock.
func (s *Store) nextID(kind string) int {
	s.index.LastID[kind]++
	return s.index.LastID[kind]
}

func now() time.Time {
	return time.Now().UTC()
}

// Close releases the store. File-based storage has nothing to flush.
func (s *Store) Close() error {
	return nil
}
