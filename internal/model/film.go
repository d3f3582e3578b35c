package model

import "time"

// CinemaEpoch is the first public film screening. Release dates before it are rejected.
var CinemaEpoch = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

type Film struct {
	ID          int64
	Name        string    `validate:"notblank"`
	Description string    `validate:"max=200"`
	ReleaseDate time.Time `validate:"cinema_epoch"`
	Duration    int       `validate:"gt=0"`
	Genres      []Genre   `validate:"dive"`
	Mpa         Mpa

	// Rate is the number of likes. It is computed on read and never stored.
	Rate int
}

func (f Film) Validate() error {
	return validateStruct(f)
}

// GenreIDs returns the distinct genre ids in ascending order.
func (f Film) GenreIDs() []int64 {
	seen := make(map[int64]struct{}, len(f.Genres))
	ids := make([]int64, 0, len(f.Genres))
	for _, g := range f.Genres {
		if _, ok := seen[g.ID]; ok {
			continue
		}
		seen[g.ID] = struct{}{}
		ids = append(ids, g.ID)
	}
	sortIDs(ids)
	return ids
}
