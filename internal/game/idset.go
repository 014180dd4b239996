package game

import "encoding/json"

// IdSet is a set of ids that remembers insertion order. Party membership
// relies on the order to pick a deterministic successor.
type IdSet struct {
	order []string
	index map[string]struct{}
}

func NewIdSet(ids ...string) *IdSet {
	s := &IdSet{index: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether it was absent.
func (s *IdSet) Add(id string) bool {
	if s.index == nil {
		s.index = map[string]struct{}{}
	}
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Remove deletes id and reports whether it was present.
func (s *IdSet) Remove(id string) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *IdSet) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

func (s *IdSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Ids returns a copy of the members in insertion order.
func (s *IdSet) Ids() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// First returns the earliest inserted id still present.
func (s *IdSet) First() (string, bool) {
	if s.Len() == 0 {
		return "", false
	}
	return s.order[0], true
}

func (s *IdSet) Clear() {
	s.order = nil
	s.index = map[string]struct{}{}
}

func (s *IdSet) MarshalJSON() ([]byte, error) {
	ids := s.Ids()
	if ids == nil {
		ids = []string{}
	}
	return json.Marshal(ids)
}
