package catalog

import (
	"github.com/nguyentranbao-ct/catalog-console/internal/models"
)

// Store holds the full catalog snapshot and the derived view over it.
// The view is always recomputed from the snapshot, never patched.
type Store struct {
	all      []models.Product
	filtered []models.Product
}

func NewStore() *Store {
	return &Store{}
}

// Reset replaces the snapshot, typically with a fresh list fetch.
func (s *Store) Reset(products []models.Product) {
	s.all = append([]models.Product(nil), products...)
	s.filtered = append([]models.Product(nil), s.all...)
}

// Rebuild recomputes the view from the snapshot.
func (s *Store) Rebuild(term string, sort SortState) {
	s.filtered = Sort(Filter(s.all, term), sort)
}

// Resort reorders the current view without refiltering.
func (s *Store) Resort(sort SortState) {
	s.filtered = Sort(s.filtered, sort)
}

func (s *Store) All() []models.Product {
	return s.all
}

func (s *Store) Filtered() []models.Product {
	return s.filtered
}

func (s *Store) Len() int {
	return len(s.all)
}

func (s *Store) Find(id int64) (models.Product, bool) {
	for _, p := range s.all {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Replace swaps the snapshot entry that has p's id. It reports false when
// no such entry exists.
func (s *Store) Replace(p models.Product) bool {
	for i := range s.all {
		if s.all[i].ID == p.ID {
			s.all[i] = p
			return true
		}
	}
	return false
}

// Prepend inserts a newly created product at the head of the snapshot.
func (s *Store) Prepend(p models.Product) {
	s.all = append([]models.Product{p}, s.all...)
}
