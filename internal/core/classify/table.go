// Package classify implements the rule-based document classifier: an ordered
// keyword table walked in priority order, first match wins.
package classify

import (
	"strings"

	"github.com/ekaraca/docsorter/internal/core/domain"
)

// Entry binds one category to its trigger phrases. Keywords are matched as
// plain substrings of the lower-cased text.
type Entry struct {
	Category domain.Category
	Keywords []string
}

// Table is the ordered keyword table. Slice position is the classification
// priority: an earlier entry wins over any later entry regardless of how many
// of the later entry's keywords match or how long its matches are. Immutable
// after construction.
type Table struct {
	entries []Entry
}

// NewTable builds a table from explicit entries. Keywords are lower-cased
// once at construction so matching stays case-insensitive.
func NewTable(entries []Entry) *Table {
	owned := make([]Entry, len(entries))
	for i, e := range entries {
		kw := make([]string, len(e.Keywords))
		for j, k := range e.Keywords {
			kw[j] = strings.ToLower(k)
		}
		owned[i] = Entry{Category: e.Category, Keywords: kw}
	}
	return &Table{entries: owned}
}

// Entries returns the priority-ordered entries. The caller must not mutate
// the result.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Classify returns the first category in priority order with at least one
// keyword occurring in text, or CategoryUnclassified when nothing matches.
// Any input, including the empty string, yields a category.
func (t *Table) Classify(text string) domain.Category {
	lower := strings.ToLower(text)
	for _, entry := range t.entries {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry.Category
			}
		}
	}
	return domain.CategoryUnclassified
}
