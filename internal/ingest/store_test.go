package ingest

import (
	"testing"

	"resumerank/internal/types"
)

func TestStoreUpsert(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		s := NewStore()
		s.Upsert(types.Candidate{ID: "a", Name: "Alice"})
		s.Upsert(types.Candidate{ID: "b", Name: "Bob"})
		s.Upsert(types.Candidate{ID: "c", Name: "Carol"})

		got := s.List()
		want := []string{"a", "b", "c"}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("position %d = %q, want %q", i, got[i].ID, id)
			}
		}
	})

	t.Run("replace keeps position", func(t *testing.T) {
		s := NewStore()
		s.Upsert(types.Candidate{ID: "a", Name: "Alice"})
		s.Upsert(types.Candidate{ID: "b", Name: "Bob"})
		s.Upsert(types.Candidate{ID: "a", Name: "Alice Updated"})

		got := s.List()
		if len(got) != 2 {
			t.Fatalf("Len = %d, want 2", len(got))
		}
		if got[0].ID != "a" || got[0].Name != "Alice Updated" {
			t.Errorf("first candidate = %+v, want updated Alice first", got[0])
		}
	})

	t.Run("get", func(t *testing.T) {
		s := NewStore()
		s.Upsert(types.Candidate{ID: "a", Name: "Alice"})

		c, ok := s.Get("a")
		if !ok || c.Name != "Alice" {
			t.Errorf("Get(a) = %+v, %t", c, ok)
		}
		if _, ok := s.Get("missing"); ok {
			t.Error("Get(missing) should not be found")
		}
	})

	t.Run("remove", func(t *testing.T) {
		s := NewStore()
		s.Upsert(types.Candidate{ID: "a"})
		s.Upsert(types.Candidate{ID: "b"})
		s.Remove("a")

		if s.Len() != 1 {
			t.Fatalf("Len = %d, want 1", s.Len())
		}
		if s.List()[0].ID != "b" {
			t.Errorf("remaining candidate = %q, want b", s.List()[0].ID)
		}

		// Removing an absent ID is a no-op.
		s.Remove("missing")
		if s.Len() != 1 {
			t.Errorf("Len after no-op remove = %d, want 1", s.Len())
		}
	})

	t.Run("upsert all", func(t *testing.T) {
		s := NewStore()
		s.UpsertAll([]types.Candidate{{ID: "a"}, {ID: "b"}})
		if s.Len() != 2 {
			t.Errorf("Len = %d, want 2", s.Len())
		}
	})
}
