package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpans(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		n       int
		workers int
		want    []Span
	}{
		{"none", 0, 4, nil},
		{"one worker", 5, 1, []Span{{0, 5}}},
		{"even", 6, 3, []Span{{0, 2}, {2, 4}, {4, 6}}},
		{"uneven", 7, 3, []Span{{0, 3}, {3, 6}, {6, 7}}},
		{"more workers than items", 2, 8, []Span{{0, 1}, {1, 2}}},
		{"zero workers", 3, 0, []Span{{0, 3}}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Spans(tt.n, tt.workers))
		})
	}
}

func TestMergeCounts(t *testing.T) {
	t.Parallel()
	parts := []map[string]int{{"bird": 2, "fish": 1}, {"bird": 1}, {}}
	assert.Equal(t, map[string]int{"bird": 3, "fish": 1}, MergeCounts(parts))
	assert.Empty(t, MergeCounts[string](nil))
}

func TestArgMax(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -1, ArgMax(nil))
	assert.Equal(t, 1, ArgMax([]float64{0.1, 0.7, 0.2}))
	assert.Equal(t, 0, ArgMax([]float64{0.5, 0.5}))
	assert.Equal(t, 1, ArgMax([]float64{0.2, 0.4, 0.4}))
}

func TestStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a b\tc", ScrubControl("a\x00 b\tc\x07"))
	assert.Equal(t, "αβ", TrimToRunes("αβγ", 2))
	assert.Equal(t, "abc", TrimToRunes("abc", 10))
	assert.Equal(t, "", TrimToRunes("abc", -1))
}
