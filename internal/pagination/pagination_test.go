package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{name: "Absent", raw: "", expected: 1},
		{name: "Non numérique", raw: "abc", expected: 1},
		{name: "Zéro", raw: "0", expected: 1},
		{name: "Négatif", raw: "-3", expected: 1},
		{name: "Valide", raw: "7", expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePageNumber(tt.raw))
		})
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		page        int
		size        int
		offset      int
		number      int
		hasNext     bool
		hasPrevious bool
	}{
		{name: "Première page pleine", total: 25, page: 1, size: 10, offset: 0, number: 1, hasNext: true},
		{name: "Page du milieu", total: 25, page: 2, size: 10, offset: 10, number: 2, hasNext: true, hasPrevious: true},
		{name: "Dernière page partielle", total: 25, page: 3, size: 10, offset: 20, number: 3, hasPrevious: true},
		{name: "Page 9999 sur 3 éléments revient page 1", total: 3, page: 9999, size: 10, offset: 0, number: 1},
		{name: "Collection vide", total: 0, page: 5, size: 10, offset: 0, number: 1},
		{name: "Total exactement divisible", total: 20, page: 2, size: 10, offset: 10, number: 2, hasPrevious: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Slice(tt.total, tt.page, tt.size)
			assert.Equal(t, tt.offset, w.Offset)
			assert.Equal(t, tt.number, w.Number)
			assert.Equal(t, tt.hasNext, w.HasNext)
			assert.Equal(t, tt.hasPrevious, w.HasPrevious)
		})
	}
}

func TestSliceClampMatchesPageOne(t *testing.T) {
	// Demander la page 9999 d'une collection de 3 éléments doit donner
	// exactement la même tranche que la page 1.
	first := Slice(3, 1, 10)
	clamped := Slice(3, 9999, 10)
	assert.Equal(t, first, clamped)
}
