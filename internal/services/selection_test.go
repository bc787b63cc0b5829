package services

import (
	"testing"

	"github.com/google/uuid"
)

func TestDedupeIDs(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name string
		in   []uuid.UUID
		want []uuid.UUID
	}{
		{"no duplicates", []uuid.UUID{a, b, c}, []uuid.UUID{a, b, c}},
		{"adjacent duplicates", []uuid.UUID{a, a, b}, []uuid.UUID{a, b}},
		{"interleaved duplicates", []uuid.UUID{a, b, a, c, b}, []uuid.UUID{a, b, c}},
		{"single", []uuid.UUID{a}, []uuid.UUID{a}},
		{"empty", []uuid.UUID{}, []uuid.UUID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupeIDs(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDedupeIDsDoesNotMutateInput(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	in := []uuid.UUID{a, a, b}
	_ = dedupeIDs(in)
	if in[0] != a || in[1] != a || in[2] != b {
		t.Error("input slice was mutated")
	}
}
