package pagination

import (
	"strconv"
)

const DefaultPageSize = 10

// Window décrit la tranche à charger pour une page donnée.
// Number est la page réellement servie après clamp.
type Window struct {
	Offset      int
	Limit       int
	Number      int
	NumPages    int
	HasNext     bool
	HasPrevious bool
}

// ParsePageNumber lit le paramètre ?page=. Absent, non numérique ou
// inférieur à 1 : on retombe sur la page 1.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Slice calcule la tranche pour une collection ordonnée de total éléments.
// Une page au-delà de la dernière est ramenée à la dernière page : on ne
// renvoie jamais une page vide tant que la collection ne l'est pas.
func Slice(total int64, page, size int) Window {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	numPages := int((total + int64(size) - 1) / int64(size))
	if numPages < 1 {
		numPages = 1
	}
	if page > numPages {
		page = numPages
	}

	return Window{
		Offset:      (page - 1) * size,
		Limit:       size,
		Number:      page,
		NumPages:    numPages,
		HasNext:     page < numPages,
		HasPrevious: page > 1,
	}
}
