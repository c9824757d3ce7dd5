package domain

import "strings"

// CategoryIndex is a snapshot of the distinct category labels known to the
// catalog. It is rebuilt on every load and never mutated locally.
type CategoryIndex []string

func NewCategoryIndex(labels []string) CategoryIndex {
	index := make(CategoryIndex, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		trimmed := strings.TrimSpace(label)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		index = append(index, trimmed)
	}
	return index
}

func (c CategoryIndex) Contains(label string) bool {
	for _, l := range c {
		if l == label {
			return true
		}
	}
	return false
}
