package model

type Genre struct {
	ID   int64 `validate:"gt=0"`
	Name string
}

type Mpa struct {
	ID   int64 `validate:"gt=0"`
	Name string
}

func DefaultGenres() []Genre {
	return []Genre{
		{ID: 1, Name: "Комедия"},
		{ID: 2, Name: "Драма"},
		{ID: 3, Name: "Мультфильм"},
		{ID: 4, Name: "Триллер"},
		{ID: 5, Name: "Документальный"},
		{ID: 6, Name: "Боевик"},
	}
}

func DefaultMpa() []Mpa {
	return []Mpa{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	}
}
