package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Heykelog/PenSH/pkg/model"
)

// AttachImage stores an uploaded proof-of-concept image under a unique
// filename and records it on the finding.
func (s *Store) AttachImage(findingID int, originalName, mimeType string, data []byte) (*model.POCImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.index.Findings[findingID]
	if !ok {
		return nil, fmt.Errorf("finding %d: %w", findingID, model.ErrNotFound)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	stored := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	path := filepath.Join(s.UploadsPath(), stored)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("store: write image: %w", err)
	}

	img := &model.POCImage{
		ID:               s.nextID("image"),
		FindingID:        findingID,
		Filename:         stored,
		OriginalFilename: originalName,
		FilePath:         path,
		FileSize:         int64(len(data)),
		MimeType:         mimeType,
		CreatedAt:        now(),
	}
	f.POCImages = append(f.POCImages, img)

	if err := s.saveIndex(); err != nil {
		return nil, err
	}
	c := *img
	return &c, nil
}

// DeleteImage detaches the image record and removes its file.
func (s *Store) DeleteImage(imageID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.index.Findings {
		for i, img := range f.POCImages {
			if img.ID != imageID {
				continue
			}
			if err := os.Remove(img.FilePath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("store: remove image: %w", err)
			}
			f.POCImages = append(f.POCImages[:i], f.POCImages[i+1:]...)
			return s.saveIndex()
		}
	}
	return fmt.Errorf("image %d: %w", imageID, model.ErrNotFound)
}

// removeImageFiles deletes all image files of a finding from disk.
// Caller must hold the write lock; index bookkeeping stays with the
// caller.
func (s *Store) removeImageFiles(f *model.Finding) {
	for _, img := range f.POCImages {
		os.Remove(img.FilePath)
	}
}
