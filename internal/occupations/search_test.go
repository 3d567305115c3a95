package occupations_test

import (
	"testing"

	"github.com/nextstep-ai/guide-server/internal/occupations"
)

func TestSearchUnits(t *testing.T) {
	idx := testIndex()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"case folded title", "legislators", []string{"1111"}},
		{"partial title", "engineers", []string{"2143", "2144"}},
		{"code substring", "214", []string{"2143", "2144"}},
		{"no match", "astronaut", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := occupations.SearchUnits(idx, tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("SearchUnits(%q) returned %d results, want %d", tt.term, len(got), len(tt.want))
			}
			for i, code := range tt.want {
				if got[i].Code != code {
					t.Errorf("result[%d] = %s, want %s", i, got[i].Code, code)
				}
			}
		})
	}
}

func TestSearchUnits_EmptyTermReturnsAll(t *testing.T) {
	idx := testIndex()

	if got := occupations.SearchUnits(idx, "  "); len(got) != len(idx.Units()) {
		t.Errorf("len(results) = %d, want all %d units", len(got), len(idx.Units()))
	}
}
