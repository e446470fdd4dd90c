package indexset

import "testing"

func TestIntSet_AddIdempotentAndOrdered(t *testing.T) {
	tests := []struct {
		name    string
		inserts []int
		want    []int
	}{
		{
			name:    "insertion order kept, no dupes",
			inserts: []int{3, 1, 2},
			want:    []int{3, 1, 2},
		},
		{
			name:    "duplicate insert is idempotent",
			inserts: []int{5, 5, 5, 6},
			want:    []int{5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewIntSet(0)
			for _, v := range tt.inserts {
				s.Add(v)
			}
			if s.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", s.Len(), len(tt.want))
			}
			got := s.Values()
			for i, v := range tt.want {
				if got[i] != v {
					t.Errorf("Values()[%d] = %d, want %d", i, got[i], v)
				}
			}
			if !s.Has(tt.want[0]) {
				t.Errorf("Has(%d) = false, want true", tt.want[0])
			}
			if s.Has(-999) {
				t.Errorf("Has(-999) = true, want false")
			}
		})
	}
}

func TestIntSet_Reset(t *testing.T) {
	s := NewIntSet(0)
	s.Add(1)
	s.Add(2)
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", s.Len())
	}
	if s.Has(1) {
		t.Error("Has(1) after Reset = true, want false")
	}
}

func TestIndexedIntSet_StableRank(t *testing.T) {
	s := NewIndexedIntSet(0)
	if r := s.Add(10); r != 0 {
		t.Fatalf("Add(10) = %d, want 0", r)
	}
	if r := s.Add(20); r != 1 {
		t.Fatalf("Add(20) = %d, want 1", r)
	}
	if r := s.Add(10); r != 0 {
		t.Fatalf("re-Add(10) = %d, want 0 (idempotent)", r)
	}
	if got := s.RankOf(20); got != 1 {
		t.Errorf("RankOf(20) = %d, want 1", got)
	}
	if got := s.RankOf(999); got != NotFound {
		t.Errorf("RankOf(999) = %d, want NotFound", got)
	}
	if got := s.ValueAt(1); got != 20 {
		t.Errorf("ValueAt(1) = %d, want 20", got)
	}
}

func TestResolveMerge(t *testing.T) {
	t.Run("chases to fixed point", func(t *testing.T) {
		m := NewIntIntMap(0)
		m.Set(5, 3)
		m.Set(3, 1)
		got, err := ResolveMerge(5, m)
		if err != nil {
			t.Fatalf("ResolveMerge error: %v", err)
		}
		if got != 1 {
			t.Errorf("ResolveMerge(5) = %d, want 1", got)
		}
	})

	t.Run("value with no entry resolves to itself", func(t *testing.T) {
		m := NewIntIntMap(0)
		got, err := ResolveMerge(42, m)
		if err != nil {
			t.Fatalf("ResolveMerge error: %v", err)
		}
		if got != 42 {
			t.Errorf("ResolveMerge(42) = %d, want 42", got)
		}
	})

	t.Run("cycle is detected, not looped forever", func(t *testing.T) {
		m := NewIntIntMap(0)
		m.Set(1, 2)
		m.Set(2, 1)
		_, err := ResolveMerge(1, m)
		if err != ErrMergeCycle {
			t.Fatalf("ResolveMerge error = %v, want ErrMergeCycle", err)
		}
	})
}
