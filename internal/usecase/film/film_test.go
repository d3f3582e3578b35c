package usecase_film

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ZeNuW/filmorate/internal/model"
	catalog_mocks "github.com/ZeNuW/filmorate/internal/usecase/film/mocks/film/catalog"
	ids_mocks "github.com/ZeNuW/filmorate/internal/usecase/film/mocks/film/ids"
	likes_mocks "github.com/ZeNuW/filmorate/internal/usecase/film/mocks/film/likes"
	publisher_mocks "github.com/ZeNuW/filmorate/internal/usecase/film/mocks/film/publisher"
	repo_mocks "github.com/ZeNuW/filmorate/internal/usecase/film/mocks/film/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseFilmUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase   *Usecase
	repo      *repo_mocks.Repository
	likes     *likes_mocks.LikeCounter
	catalog   *catalog_mocks.Catalog
	ids       *ids_mocks.IDAllocator
	publisher *publisher_mocks.EventPublisher
	ctx       context.Context
}

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewRepository(t)
	likes := likes_mocks.NewLikeCounter(t)
	catalog := catalog_mocks.NewCatalog(t)
	ids := ids_mocks.NewIDAllocator(t)
	publisher := publisher_mocks.NewEventPublisher(t)

	return &resources{
		usecase:   New(repo, likes, catalog, ids, WithPublisher(publisher)),
		repo:      repo,
		likes:     likes,
		catalog:   catalog,
		ids:       ids,
		publisher: publisher,
		ctx:       context.Background(),
	}
}

type FilmBuilder struct {
	f model.Film
}

func NewFilmBuilder() *FilmBuilder {
	return &FilmBuilder{
		f: model.Film{
			Name:        "nisi eiusmod",
			Description: "adipisicing",
			ReleaseDate: time.Date(1967, time.March, 25, 0, 0, 0, 0, time.UTC),
			Duration:    100,
			Mpa:         model.Mpa{ID: 1},
		},
	}
}

func (b *FilmBuilder) WithID(id int64) *FilmBuilder {
	b.f.ID = id
	return b
}

func (b *FilmBuilder) WithGenres(ids ...int64) *FilmBuilder {
	for _, id := range ids {
		b.f.Genres = append(b.f.Genres, model.Genre{ID: id})
	}
	return b
}

func (b *FilmBuilder) WithReleaseDate(d time.Time) *FilmBuilder {
	b.f.ReleaseDate = d
	return b
}

func (b *FilmBuilder) WithMpa(id int64) *FilmBuilder {
	b.f.Mpa = model.Mpa{ID: id}
	return b
}

func (b *FilmBuilder) Build() model.Film {
	return b.f
}

func isEvent(t model.EventType, entityID int64) any {
	return mock.MatchedBy(func(e model.Event) bool {
		return e.Type == t && e.EntityID == entityID
	})
}

func (s *UsecaseFilmUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		film          model.Film
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
		expectedID    int64
	}{
		{
			name: "Should create film with resolved references",
			film: NewFilmBuilder().WithGenres(2, 1, 2).Build(),
			setupMocks: func(r *resources) {
				r.catalog.On("Mpa", r.ctx, int64(1)).Return(model.Mpa{ID: 1, Name: "G"}, nil).Once()
				r.catalog.On("Genre", r.ctx, int64(1)).Return(model.Genre{ID: 1, Name: "Комедия"}, nil).Once()
				r.catalog.On("Genre", r.ctx, int64(2)).Return(model.Genre{ID: 2, Name: "Драма"}, nil).Once()
				r.ids.On("Next", r.ctx).Return(int64(1), nil).Once()
				r.repo.On("Store", r.ctx, mock.MatchedBy(func(f model.Film) bool {
					return f.ID == 1 && f.Mpa.Name == "G" && len(f.Genres) == 2 && f.Genres[0].ID == 1
				})).Return(nil).Once()
				r.publisher.On("Publish", r.ctx, isEvent(model.EventFilmCreated, 1)).Once()
			},
			expectedID: 1,
		},
		{
			name:          "Should reject release date before cinema epoch",
			film:          NewFilmBuilder().WithReleaseDate(time.Date(1890, time.March, 25, 0, 0, 0, 0, time.UTC)).Build(),
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: model.ErrInvalidArgument,
		},
		{
			name: "Should reject id that is already present",
			film: NewFilmBuilder().WithID(7).Build(),
			setupMocks: func(r *resources) {
				r.repo.On("Exists", r.ctx, int64(7)).Return(true, nil).Once()
			},
			expectError:   true,
			expectedError: model.ErrAlreadyExists,
		},
		{
			name: "Should assign a fresh id when supplied id is unknown",
			film: NewFilmBuilder().WithID(7).Build(),
			setupMocks: func(r *resources) {
				r.repo.On("Exists", r.ctx, int64(7)).Return(false, nil).Once()
				r.catalog.On("Mpa", r.ctx, int64(1)).Return(model.Mpa{ID: 1, Name: "G"}, nil).Once()
				r.ids.On("Next", r.ctx).Return(int64(3), nil).Once()
				r.repo.On("Store", r.ctx, mock.AnythingOfType("model.Film")).Return(nil).Once()
				r.publisher.On("Publish", r.ctx, isEvent(model.EventFilmCreated, 3)).Once()
			},
			expectedID: 3,
		},
		{
			name:          "Should reject missing mpa before catalog lookup",
			film:          NewFilmBuilder().WithMpa(0).Build(),
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: model.ErrInvalidArgument,
		},
		{
			name: "Should return not found for unknown mpa",
			film: NewFilmBuilder().Build(),
			setupMocks: func(r *resources) {
				r.catalog.On("Mpa", r.ctx, int64(1)).Return(model.Mpa{}, model.ErrNotFound).Once()
			},
			expectError:   true,
			expectedError: model.ErrNotFound,
		},
		{
			name: "Should wrap storage failure",
			film: NewFilmBuilder().Build(),
			setupMocks: func(r *resources) {
				r.catalog.On("Mpa", r.ctx, int64(1)).Return(model.Mpa{ID: 1, Name: "G"}, nil).Once()
				r.ids.On("Next", r.ctx).Return(int64(1), nil).Once()
				r.repo.On("Store", r.ctx, mock.AnythingOfType("model.Film")).Return(errors.New("db error")).Once()
			},
			expectError:   true,
			expectedError: ErrFailedToStoreFilm,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			created, err := r.usecase.Create(r.ctx, tc.film)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedID, created.ID)
				assert.Zero(t, created.Rate)
			}
			r.repo.AssertExpectations(t)
			r.ids.AssertExpectations(t)
		})
	}
}

func (s *UsecaseFilmUnitSuite) TestUpdate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name: "Should update film and keep like count",
			setupMocks: func(r *resources) {
				r.catalog.On("Mpa", r.ctx, int64(1)).Return(model.Mpa{ID: 1, Name: "G"}, nil).Once()
				r.repo.On("Update", r.ctx, mock.AnythingOfType("model.Film")).Return(nil).Once()
				r.likes.On("Counts", r.ctx, []int64{5}).Return(map[int64]int{5: 4}, nil).Once()
				r.publisher.On("Publish", r.ctx, isEvent(model.EventFilmUpdated, 5)).Once()
			},
		},
		{
			name: "Should return not found for unknown film",
			setupMocks: func(r *resources) {
				r.catalog.On("Mpa", r.ctx, int64(1)).Return(model.Mpa{ID: 1, Name: "G"}, nil).Once()
				r.repo.On("Update", r.ctx, mock.AnythingOfType("model.Film")).Return(model.ErrNotFound).Once()
			},
			expectError:   true,
			expectedError: model.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			updated, err := r.usecase.Update(r.ctx, NewFilmBuilder().WithID(5).Build())

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 4, updated.Rate)
			}
			r.repo.AssertExpectations(t)
		})
	}
}

func (s *UsecaseFilmUnitSuite) TestGet(t provider.T) {
	t.Parallel()

	t.Run("Should fill like count", func(t provider.T) {
		r := initResources(t)
		f := NewFilmBuilder().WithID(2).Build()
		r.repo.On("LoadByID", r.ctx, int64(2)).Return(f, nil).Once()
		r.likes.On("Counts", r.ctx, []int64{2}).Return(map[int64]int{2: 2}, nil).Once()

		got, err := r.usecase.Get(r.ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, 2, got.Rate)
	})

	t.Run("Should return not found", func(t provider.T) {
		r := initResources(t)
		r.repo.On("LoadByID", r.ctx, int64(9)).Return(model.Film{}, model.ErrNotFound).Once()

		_, err := r.usecase.Get(r.ctx, 9)

		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.ErrorIs(t, err, ErrFailedToLoadFilm)
	})
}

func (s *UsecaseFilmUnitSuite) TestFindAll(t provider.T) {
	t.Parallel()

	t.Run("Should fill like counts for every film", func(t provider.T) {
		r := initResources(t)
		films := []model.Film{NewFilmBuilder().WithID(1).Build(), NewFilmBuilder().WithID(2).Build()}
		r.repo.On("Load", r.ctx).Return(films, nil).Once()
		r.likes.On("Counts", r.ctx, []int64{1, 2}).Return(map[int64]int{2: 3}, nil).Once()

		got, err := r.usecase.FindAll(r.ctx)

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 0, got[0].Rate)
		assert.Equal(t, 3, got[1].Rate)
	})

	t.Run("Should skip counting when there are no films", func(t provider.T) {
		r := initResources(t)
		r.repo.On("Load", r.ctx).Return([]model.Film{}, nil).Once()

		got, err := r.usecase.FindAll(r.ctx)

		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Should wrap like counter failure", func(t provider.T) {
		r := initResources(t)
		r.repo.On("Load", r.ctx).Return([]model.Film{NewFilmBuilder().WithID(1).Build()}, nil).Once()
		r.likes.On("Counts", r.ctx, []int64{1}).Return(nil, errors.New("db error")).Once()

		_, err := r.usecase.FindAll(r.ctx)

		assert.ErrorIs(t, err, ErrFailedToCountLikes)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseFilmUnitSuite))
}
