package usecase_like

import (
	"context"
	"errors"
	"testing"

	"github.com/ZeNuW/filmorate/internal/model"
	publisher_mocks "github.com/ZeNuW/filmorate/internal/usecase/like/mocks/like/publisher"
	registry_mocks "github.com/ZeNuW/filmorate/internal/usecase/like/mocks/like/registry"
	repo_mocks "github.com/ZeNuW/filmorate/internal/usecase/like/mocks/like/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseLikeUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase   *Usecase
	repo      *repo_mocks.Repository
	films     *registry_mocks.Registry
	users     *registry_mocks.Registry
	publisher *publisher_mocks.EventPublisher
	ctx       context.Context
}

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewRepository(t)
	films := registry_mocks.NewRegistry(t)
	users := registry_mocks.NewRegistry(t)
	publisher := publisher_mocks.NewEventPublisher(t)

	return &resources{
		usecase:   New(repo, films, users, WithPublisher(publisher)),
		repo:      repo,
		films:     films,
		users:     users,
		publisher: publisher,
		ctx:       context.Background(),
	}
}

func (r *resources) participantsExist(filmID, userID int64) {
	r.films.On("Exists", r.ctx, filmID).Return(true, nil).Once()
	r.users.On("Exists", r.ctx, userID).Return(true, nil).Once()
}

func eventOf(t model.EventType) any {
	return mock.MatchedBy(func(e model.Event) bool {
		return e.Type == t && e.UserID == 2 && e.EntityID == 1
	})
}

func (s *UsecaseLikeUnitSuite) TestSetLike(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name: "Should add like and notify",
			setupMocks: func(r *resources) {
				r.participantsExist(1, 2)
				r.repo.On("Add", r.ctx, int64(1), int64(2)).Return(true, nil).Once()
				r.publisher.On("Publish", r.ctx, eventOf(model.EventLikeAdded)).Once()
			},
		},
		{
			name: "Should be idempotent for repeated like",
			setupMocks: func(r *resources) {
				r.participantsExist(1, 2)
				r.repo.On("Add", r.ctx, int64(1), int64(2)).Return(false, nil).Once()
			},
		},
		{
			name: "Should return not found for unknown film",
			setupMocks: func(r *resources) {
				r.films.On("Exists", r.ctx, int64(1)).Return(false, nil).Once()
			},
			expectError:   true,
			expectedError: model.ErrNotFound,
		},
		{
			name: "Should return not found for unknown user",
			setupMocks: func(r *resources) {
				r.films.On("Exists", r.ctx, int64(1)).Return(true, nil).Once()
				r.users.On("Exists", r.ctx, int64(2)).Return(false, nil).Once()
			},
			expectError:   true,
			expectedError: model.ErrNotFound,
		},
		{
			name: "Should wrap storage failure",
			setupMocks: func(r *resources) {
				r.participantsExist(1, 2)
				r.repo.On("Add", r.ctx, int64(1), int64(2)).Return(false, errors.New("db error")).Once()
			},
			expectError:   true,
			expectedError: ErrFailedToStoreLike,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.usecase.SetLike(r.ctx, 1, 2)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			r.repo.AssertExpectations(t)
		})
	}
}

func (s *UsecaseLikeUnitSuite) TestDeleteLike(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		removed    bool
		setupMocks func(r *resources)
	}{
		{
			name:    "Should remove like and notify",
			removed: true,
			setupMocks: func(r *resources) {
				r.publisher.On("Publish", r.ctx, eventOf(model.EventLikeRemoved)).Once()
			},
		},
		{
			name:       "Should ignore absent like",
			removed:    false,
			setupMocks: func(r *resources) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			r.participantsExist(1, 2)
			r.repo.On("Remove", r.ctx, int64(1), int64(2)).Return(tc.removed, nil).Once()
			tc.setupMocks(r)

			err := r.usecase.DeleteLike(r.ctx, 1, 2)

			assert.NoError(t, err)
			r.repo.AssertExpectations(t)
		})
	}
}

func (s *UsecaseLikeUnitSuite) TestCountLikes(t provider.T) {
	t.Parallel()

	t.Run("Should count likes", func(t provider.T) {
		r := initResources(t)
		r.films.On("Exists", r.ctx, int64(1)).Return(true, nil).Once()
		r.repo.On("Count", r.ctx, int64(1)).Return(3, nil).Once()

		n, err := r.usecase.CountLikes(r.ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("Should return not found for unknown film", func(t provider.T) {
		r := initResources(t)
		r.films.On("Exists", r.ctx, int64(5)).Return(false, nil).Once()

		_, err := r.usecase.CountLikes(r.ctx, 5)

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func (s *UsecaseLikeUnitSuite) TestCounts(t provider.T) {
	t.Parallel()

	t.Run("Should pass counts through", func(t provider.T) {
		r := initResources(t)
		r.repo.On("Counts", r.ctx, []int64{1, 2}).Return(map[int64]int{1: 2}, nil).Once()

		counts, err := r.usecase.Counts(r.ctx, []int64{1, 2})

		assert.NoError(t, err)
		assert.Equal(t, map[int64]int{1: 2}, counts)
	})

	t.Run("Should wrap storage failure", func(t provider.T) {
		r := initResources(t)
		r.repo.On("Counts", r.ctx, []int64{1}).Return(nil, errors.New("db down")).Once()

		_, err := r.usecase.Counts(r.ctx, []int64{1})

		assert.ErrorIs(t, err, ErrFailedToLoadLikes)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseLikeUnitSuite))
}
