package fra

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage holds the single persisted value of a Store.
//
// Load returns nil content when nothing has been saved yet.
type Storage interface {
	Load() ([]byte, error)
	Save(content []byte) error
}

// FileStorage keeps the value in a single file.
type FileStorage struct {
	path string
}

// NewFileStorage returns a storage persisted at path. The file is only created
// on first save.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the file path of the storage.
func (s *FileStorage) Path() string { return s.path }

// Load reads the file, a missing file is not an error.
func (s *FileStorage) Load() ([]byte, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", s.path, err)
	}
	return content, nil
}

// Save replaces the file content. The content is written into a temporary
// file next to the target and renamed, so readers never see a partial write.
func (s *FileStorage) Save(content []byte) error {
	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", s.path, err)
	}
	tmp := f.Name()
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("cannot write %q: %w", tmp, err)
	}
	// temporary files are private, the store is not.
	if err := f.Chmod(0644); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("cannot chmod %q: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot close %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot replace %q: %w", s.path, err)
	}
	return nil
}

// MemStorage is an in-memory Storage. Its zero value is empty.
type MemStorage struct {
	content []byte
	saves   int
}

// NewMemStorage returns a storage initialized with content.
func NewMemStorage(content string) *MemStorage {
	if content == "" {
		return &MemStorage{}
	}
	return &MemStorage{content: []byte(content)}
}

func (m *MemStorage) Load() ([]byte, error) {
	if m.content == nil {
		return nil, nil
	}
	return append([]byte(nil), m.content...), nil
}

func (m *MemStorage) Save(content []byte) error {
	m.content = append([]byte(nil), content...)
	m.saves++
	return nil
}

// Content returns the last saved value.
func (m *MemStorage) Content() string { return string(m.content) }

// Saves counts calls to Save.
func (m *MemStorage) Saves() int { return m.saves }
