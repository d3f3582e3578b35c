package infra_postgres_film

import (
	"time"

	"github.com/ZeNuW/filmorate/internal/model"
)

type FilmDB struct {
	ID          int64     `db:"film_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	ReleaseDate time.Time `db:"release_date"`
	Duration    int       `db:"duration"`
	MpaID       int64     `db:"mpa_id"`
	MpaName     string    `db:"mpa_name"`
}

type FilmGenreDB struct {
	FilmID  int64  `db:"film_id"`
	GenreID int64  `db:"genre_id"`
	Name    string `db:"name"`
}

func (f *FilmDB) ToDomain(genres []model.Genre) model.Film {
	if genres == nil {
		genres = []model.Genre{}
	}
	return model.Film{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate.UTC(),
		Duration:    f.Duration,
		Genres:      genres,
		Mpa:         model.Mpa{ID: f.MpaID, Name: f.MpaName},
	}
}

func FromDomain(f model.Film) FilmDB {
	return FilmDB{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate,
		Duration:    f.Duration,
		MpaID:       f.Mpa.ID,
		MpaName:     f.Mpa.Name,
	}
}

func groupGenres(rows []FilmGenreDB) map[int64][]model.Genre {
	grouped := make(map[int64][]model.Genre)
	for _, row := range rows {
		grouped[row.FilmID] = append(grouped[row.FilmID], model.Genre{ID: row.GenreID, Name: row.Name})
	}
	return grouped
}
