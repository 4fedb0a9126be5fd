package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ekaraca/docsorter/internal/core/domain"
)

type fileEntry struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// LoadTable reads a keyword table from a YAML file. The file is a sequence of
// {category, keywords} mappings; sequence order becomes the classification
// priority. Category names must be members of the domain enumeration and the
// two sentinel categories may not carry keywords.
func LoadTable(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keyword table: %w", err)
	}
	return ParseTable(raw)
}

// ParseTable builds a table from YAML bytes. See LoadTable.
func ParseTable(raw []byte) (*Table, error) {
	var fileEntries []fileEntry
	if err := yaml.Unmarshal(raw, &fileEntries); err != nil {
		return nil, fmt.Errorf("parse keyword table: %w", err)
	}
	if len(fileEntries) == 0 {
		return nil, fmt.Errorf("keyword table is empty")
	}

	seen := make(map[string]bool, len(fileEntries))
	entries := make([]Entry, 0, len(fileEntries))
	for i, fe := range fileEntries {
		if !domain.ValidCategory(fe.Category) {
			return nil, fmt.Errorf("keyword table entry %d: unknown category %q", i, fe.Category)
		}
		cat := domain.Category(fe.Category)
		if cat == domain.CategoryUnclassified || cat == domain.CategoryProcessingError {
			return nil, fmt.Errorf("keyword table entry %d: sentinel category %q may not carry keywords", i, fe.Category)
		}
		if seen[fe.Category] {
			return nil, fmt.Errorf("keyword table entry %d: duplicate category %q", i, fe.Category)
		}
		seen[fe.Category] = true
		if len(fe.Keywords) == 0 {
			return nil, fmt.Errorf("keyword table entry %d: category %q has no keywords", i, fe.Category)
		}
		entries = append(entries, Entry{Category: cat, Keywords: fe.Keywords})
	}
	return NewTable(entries), nil
}
