package application

import (
	"sort"

	"lingotree/internal/domain/entities"
)

// Store is the flat key -> item catalog. It is the single source of
// truth for all translation text; the navigation forest only holds
// keys into it.
type Store struct {
	items map[string]*entities.TranslationItem
}

func NewStore() *Store {
	return &Store{items: make(map[string]*entities.TranslationItem)}
}

// Merge builds items from the source map and attaches targets by
// exact key match. Target-only keys not present in the source are
// silently dropped and will not reappear after the next save.
func (s *Store) Merge(source, target map[string]string) {
	for key, text := range source {
		item := &entities.TranslationItem{
			Key:        key,
			SourceText: text,
		}
		if t, ok := target[key]; ok {
			item.TargetText = &t
		}
		s.items[key] = item
	}
}

// Get returns the item for key.
func (s *Store) Get(key string) (*entities.TranslationItem, bool) {
	item, ok := s.items[key]
	return item, ok
}

// SetTarget writes the target text for key. Unknown keys are ignored.
func (s *Store) SetTarget(key, text string) {
	if item, ok := s.items[key]; ok {
		item.TargetText = &text
	}
}

// ClearTarget unsets the target for key.
func (s *Store) ClearTarget(key string) {
	if item, ok := s.items[key]; ok {
		item.TargetText = nil
	}
}

// Items returns all items sorted ascending by key.
func (s *Store) Items() []*entities.TranslationItem {
	out := make([]*entities.TranslationItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Len returns the number of items.
func (s *Store) Len() int { return len(s.items) }

// Counts scans the store and returns how many items carry a non-empty
// target, and the total. The store, not the forest, is the
// authoritative item count.
func (s *Store) Counts() (translated, total int) {
	for _, item := range s.items {
		if item.IsTranslated() {
			translated++
		}
	}
	return translated, len(s.items)
}
