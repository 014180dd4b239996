package game

import (
	"slices"
	"testing"

	"github.com/pixil98/go-testutil"
	"pgregory.net/rapid"
)

func TestIdSet(t *testing.T) {
	tests := map[string]struct {
		ops    func(s *IdSet)
		expIds []string
	}{
		"keeps insertion order": {
			ops: func(s *IdSet) {
				s.Add("c")
				s.Add("a")
				s.Add("b")
			},
			expIds: []string{"c", "a", "b"},
		},
		"ignores duplicates": {
			ops: func(s *IdSet) {
				s.Add("a")
				s.Add("b")
				s.Add("a")
			},
			expIds: []string{"a", "b"},
		},
		"remove closes the gap": {
			ops: func(s *IdSet) {
				s.Add("a")
				s.Add("b")
				s.Add("c")
				s.Remove("b")
			},
			expIds: []string{"a", "c"},
		},
		"clear empties": {
			ops: func(s *IdSet) {
				s.Add("a")
				s.Clear()
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewIdSet()
			tt.ops(s)
			if !slices.Equal(s.Ids(), tt.expIds) {
				t.Errorf("ids = %v, want %v", s.Ids(), tt.expIds)
			}
			testutil.AssertEqual(t, "len", s.Len(), len(tt.expIds))
		})
	}
}

func TestIdSet_First(t *testing.T) {
	s := NewIdSet("x", "y")
	first, ok := s.First()
	testutil.AssertEqual(t, "ok", ok, true)
	testutil.AssertEqual(t, "first", first, "x")

	s.Remove("x")
	first, _ = s.First()
	testutil.AssertEqual(t, "first after remove", first, "y")

	var empty *IdSet
	_, ok = empty.First()
	testutil.AssertEqual(t, "nil set", ok, false)
}

func TestIdSet_MarshalJSON(t *testing.T) {
	b, err := NewIdSet("b", "a").MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "json", string(b), `["b","a"]`)

	b, _ = NewIdSet().MarshalJSON()
	testutil.AssertEqual(t, "empty json", string(b), `[]`)
}

func TestIdSet_MatchesModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewIdSet()
		var model []string

		ops := rapid.SliceOf(rapid.IntRange(0, 7)).Draw(t, "ops")
		adds := rapid.SliceOfN(rapid.Bool(), len(ops), len(ops)).Draw(t, "adds")
		for i, n := range ops {
			id := string(rune('a' + n))
			if adds[i] {
				if s.Add(id) != !slices.Contains(model, id) {
					t.Fatalf("Add(%s) disagreed with model", id)
				}
				if !slices.Contains(model, id) {
					model = append(model, id)
				}
				continue
			}
			idx := slices.Index(model, id)
			if s.Remove(id) != (idx >= 0) {
				t.Fatalf("Remove(%s) disagreed with model", id)
			}
			if idx >= 0 {
				model = slices.Delete(model, idx, idx+1)
			}
		}

		if !slices.Equal(s.Ids(), model) {
			t.Fatalf("ids = %v, want %v", s.Ids(), model)
		}
	})
}
