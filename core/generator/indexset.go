package generator

import (
	"encoding/json"
	"os"
	"sort"
)

// IndexSet tracks which combinadic indices have been seen.
type IndexSet struct {
	indices map[int64]struct{}
}

func NewIndexSet() *IndexSet {
	return &IndexSet{indices: make(map[int64]struct{})}
}

// Add inserts index, reporting whether it was absent.
func (s *IndexSet) Add(index int64) bool {
	if _, ok := s.indices[index]; ok {
		return false
	}
	s.indices[index] = struct{}{}
	return true
}

func (s *IndexSet) Has(index int64) bool {
	_, ok := s.indices[index]
	return ok
}

func (s *IndexSet) Len() int {
	return len(s.indices)
}

// CheckAndInsertAll inserts every index, or none at all when any of them is
// already present.
func (s *IndexSet) CheckAndInsertAll(indices []int64) bool {
	for _, index := range indices {
		if _, ok := s.indices[index]; ok {
			return false
		}
	}

	for _, index := range indices {
		s.indices[index] = struct{}{}
	}
	return true
}

// SaveToFile writes the indices as a sorted JSON array.
func (s *IndexSet) SaveToFile(path string) error {
	sorted := make([]int64, 0, len(s.indices))
	for index := range s.indices {
		sorted = append(sorted, index)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	data, err := json.Marshal(sorted)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LoadIndexSet reads a JSON array of indices written by SaveToFile.
func LoadIndexSet(path string) (*IndexSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var indices []int64
	if err = json.Unmarshal(data, &indices); err != nil {
		return nil, err
	}

	s := NewIndexSet()
	for _, index := range indices {
		s.indices[index] = struct{}{}
	}
	return s, nil
}
