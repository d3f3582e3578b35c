package http_film

import (
	"fmt"
	"time"

	http_common "github.com/ZeNuW/filmorate/internal/delivery/http/common"
	"github.com/ZeNuW/filmorate/internal/model"
)

type GenreDTO struct {
	ID   int64  `json:"id" binding:"required" example:"1"`
	Name string `json:"name,omitempty" example:"Комедия"`
}

type MpaDTO struct {
	ID   int64  `json:"id" binding:"required" example:"1"`
	Name string `json:"name,omitempty" example:"G"`
}

// FilmRequestDTO is the body of POST and PUT /films.
type FilmRequestDTO struct {
	ID          int64      `json:"id" example:"1"`
	Name        string     `json:"name" example:"nisi eiusmod"`
	Description string     `json:"description" example:"adipisicing"`
	ReleaseDate string     `json:"releaseDate" binding:"required" example:"1967-03-25"`
	Duration    int        `json:"duration" example:"100"`
	Genres      []GenreDTO `json:"genres" binding:"dive"`
	Mpa         *MpaDTO    `json:"mpa" binding:"required"`
}

type FilmResponseDTO struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ReleaseDate string     `json:"releaseDate"`
	Duration    int        `json:"duration"`
	Genres      []GenreDTO `json:"genres"`
	Mpa         MpaDTO     `json:"mpa"`
	Rate        int        `json:"rate"`
}

type LikesResponseDTO struct {
	FilmID int64 `json:"filmId"`
	Likes  int   `json:"likes"`
}

func (r *FilmRequestDTO) ConvertToFilm() (model.Film, error) {
	releaseDate, err := time.Parse(http_common.DateLayout, r.ReleaseDate)
	if err != nil {
		return model.Film{}, fmt.Errorf("releaseDate must be formatted as %s: %w", http_common.DateLayout, err)
	}

	genres := make([]model.Genre, len(r.Genres))
	for i, g := range r.Genres {
		genres[i] = model.Genre{ID: g.ID}
	}

	return model.Film{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: releaseDate,
		Duration:    r.Duration,
		Genres:      genres,
		Mpa:         model.Mpa{ID: r.Mpa.ID},
	}, nil
}

func ConvertFromFilm(f model.Film) FilmResponseDTO {
	genres := make([]GenreDTO, len(f.Genres))
	for i, g := range f.Genres {
		genres[i] = GenreDTO{ID: g.ID, Name: g.Name}
	}

	return FilmResponseDTO{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate.Format(http_common.DateLayout),
		Duration:    f.Duration,
		Genres:      genres,
		Mpa:         MpaDTO{ID: f.Mpa.ID, Name: f.Mpa.Name},
		Rate:        f.Rate,
	}
}

func ConvertFromFilmList(films []model.Film) []FilmResponseDTO {
	resp := make([]FilmResponseDTO, len(films))
	for i, f := range films {
		resp[i] = ConvertFromFilm(f)
	}
	return resp
}
