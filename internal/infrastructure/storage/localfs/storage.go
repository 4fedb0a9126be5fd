package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ekaraca/docsorter/internal/core/domain"
)

// Category buckets for the two sentinel outcomes. Confident categories
// file under their own name.
const (
	unclassifiedDir = "others"
	errorDir        = "error_files"
)

type Storage struct {
	basePath string
}

func New(basePath string) (*Storage, error) {
	if basePath == "" {
		basePath = "./data/storage"
	}
	if err := os.MkdirAll(filepath.Join(basePath, "incoming"), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Storage{basePath: basePath}, nil
}

func (s *Storage) Save(_ context.Context, key string, data io.Reader) error {
	path := filepath.Join(s.basePath, "incoming", key)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (s *Storage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	path := filepath.Join(s.basePath, "incoming", key)
	if strings.ContainsRune(key, filepath.Separator) || strings.ContainsRune(key, '/') {
		path = filepath.Join(s.basePath, filepath.FromSlash(key))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return f, nil
}

// FileIntoCategory moves an ingested object into its category folder
// under the destination filename. Returns the relative filed key.
func (s *Storage) FileIntoCategory(_ context.Context, key string, category domain.Category, filename string) (string, error) {
	dir := categoryDir(category)
	if err := os.MkdirAll(filepath.Join(s.basePath, dir), 0o755); err != nil {
		return "", fmt.Errorf("create category dir: %w", err)
	}

	name := norm.NFKC.String(filename)
	dest, err := s.uniqueDestination(dir, name)
	if err != nil {
		return "", err
	}

	src := filepath.Join(s.basePath, "incoming", key)
	if err := os.Rename(src, filepath.Join(s.basePath, dest)); err != nil {
		return "", fmt.Errorf("file document: %w", err)
	}
	return filepath.ToSlash(dest), nil
}

// uniqueDestination appends a " (n)" suffix before the extension when
// the target name is already taken.
func (s *Storage) uniqueDestination(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := filepath.Join(dir, name)
	for n := 1; ; n++ {
		_, err := os.Stat(filepath.Join(s.basePath, candidate))
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat destination: %w", err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
	}
}

func categoryDir(category domain.Category) string {
	switch category {
	case domain.CategoryUnclassified:
		return unclassifiedDir
	case domain.CategoryProcessingError:
		return errorDir
	default:
		return string(category)
	}
}
