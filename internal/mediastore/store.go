package mediastore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store manages the primary media area and the separate trash area.
type Store struct {
	MediaRoot string
	TrashRoot string
}

func New(mediaRoot, trashRoot string) *Store {
	return &Store{MediaRoot: mediaRoot, TrashRoot: trashRoot}
}

// Save writes data under the media root and returns the stored relative name.
func (s *Store) Save(rel string, data []byte) (string, error) {
	dst := filepath.Join(s.MediaRoot, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("prepare media dir: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return rel, nil
}

// MediaPath resolves a stored relative name to its path on disk.
func (s *Store) MediaPath(rel string) string {
	return filepath.Join(s.MediaRoot, rel)
}

// MoveToTrash relocates a media file into the trash area. The copy must
// complete before the original is removed, so a failure mid-copy leaves the
// original file intact. Returns the trash-relative name.
func (s *Store) MoveToTrash(rel string) (string, error) {
	src := filepath.Join(s.MediaRoot, rel)
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read media file: %w", err)
	}

	trashName := fmt.Sprintf("trash_%s_%s", uuid.NewString(), filepath.Base(rel))
	dst := filepath.Join(s.TrashRoot, trashName)
	if err := os.MkdirAll(s.TrashRoot, 0o755); err != nil {
		return "", fmt.Errorf("prepare trash dir: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("copy to trash: %w", err)
	}

	// Best effort: the copy is already safe in the trash area.
	if err := os.Remove(src); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("remove original after copy: %w", err)
	}
	return trashName, nil
}
