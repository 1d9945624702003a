package definition

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/he2plus/he2plus-lib-sub001/internal/catalog"
	"github.com/he2plus/he2plus-lib-sub001/internal/model"
)

// Source discovers definition files in a list of directories.
// Missing directories are ignored.
type Source struct {
	dirs []string

	scanned    bool
	categories []string
	files      map[string][]string // category -> paths
}

// NewSource creates a file source over dirs, scanned in order.
func NewSource(dirs ...string) *Source {
	return &Source{dirs: dirs}
}

func (s *Source) Name() string { return "files" }

// Categories lists "" (top-level files) and each category directory, in
// first-seen order across dirs.
func (s *Source) Categories() ([]string, error) {
	if err := s.scan(); err != nil {
		return nil, err
	}
	return s.categories, nil
}

// Definitions returns one constructor per definition file of category.
func (s *Source) Definitions(category string) ([]catalog.Constructor, error) {
	if err := s.scan(); err != nil {
		return nil, err
	}
	paths := s.files[category]
	out := make([]catalog.Constructor, len(paths))
	for i, path := range paths {
		out[i] = func() (*model.Profile, error) { return LoadFile(path) }
	}
	return out, nil
}

func (s *Source) scan() error {
	if s.scanned {
		return nil
	}
	s.scanned = true
	s.files = make(map[string][]string)

	for _, dir := range s.dirs {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("scanning profile directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if !entry.IsDir() {
				if Supported(path) {
					s.add("", path)
				}
				continue
			}

			nested, err := os.ReadDir(path)
			if err != nil {
				return fmt.Errorf("scanning profile directory %s: %w", path, err)
			}
			for _, f := range nested {
				if !f.IsDir() && Supported(f.Name()) {
					s.add(entry.Name(), filepath.Join(path, f.Name()))
				}
			}
		}
	}
	return nil
}

func (s *Source) add(category, path string) {
	if _, ok := s.files[category]; !ok {
		s.categories = append(s.categories, category)
	}
	s.files[category] = append(s.files[category], path)
}
