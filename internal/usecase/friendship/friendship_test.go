package usecase_friendship

import (
	"context"
	"errors"
	"testing"

	"github.com/ZeNuW/filmorate/internal/model"
	publisher_mocks "github.com/ZeNuW/filmorate/internal/usecase/friendship/mocks/friendship/publisher"
	repo_mocks "github.com/ZeNuW/filmorate/internal/usecase/friendship/mocks/friendship/repository"
	users_mocks "github.com/ZeNuW/filmorate/internal/usecase/friendship/mocks/friendship/users"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseFriendshipUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase   *Usecase
	repo      *repo_mocks.Repository
	users     *users_mocks.Users
	publisher *publisher_mocks.EventPublisher
	ctx       context.Context
}

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewRepository(t)
	users := users_mocks.NewUsers(t)
	publisher := publisher_mocks.NewEventPublisher(t)

	return &resources{
		usecase:   New(repo, users, WithPublisher(publisher)),
		repo:      repo,
		users:     users,
		publisher: publisher,
		ctx:       context.Background(),
	}
}

func (r *resources) usersExist(ids ...int64) {
	for _, id := range ids {
		r.users.On("Exists", r.ctx, id).Return(true, nil).Once()
	}
}

func eventOf(t model.EventType, userID, entityID int64) any {
	return mock.MatchedBy(func(e model.Event) bool {
		return e.Type == t && e.UserID == userID && e.EntityID == entityID
	})
}

func (s *UsecaseFriendshipUnitSuite) TestAddFriend(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		owner, target int64
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name:   "Should add edge",
			owner:  1,
			target: 2,
			setupMocks: func(r *resources) {
				r.usersExist(1, 2)
				r.repo.On("AddEdge", r.ctx, int64(1), int64(2)).Return(nil).Once()
				r.publisher.On("Publish", r.ctx, eventOf(model.EventFriendAdded, 1, 2)).Once()
			},
		},
		{
			name:          "Should reject non-positive id",
			owner:         1,
			target:        -1,
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: model.ErrInvalidArgument,
		},
		{
			name:          "Should reject self friendship",
			owner:         3,
			target:        3,
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: model.ErrInvalidArgument,
		},
		{
			name:   "Should return not found for unknown target",
			owner:  1,
			target: 9,
			setupMocks: func(r *resources) {
				r.usersExist(1)
				r.users.On("Exists", r.ctx, int64(9)).Return(false, nil).Once()
			},
			expectError:   true,
			expectedError: model.ErrNotFound,
		},
		{
			name:   "Should reject duplicate request",
			owner:  1,
			target: 2,
			setupMocks: func(r *resources) {
				r.usersExist(1, 2)
				r.repo.On("AddEdge", r.ctx, int64(1), int64(2)).Return(model.ErrAlreadyFriends).Once()
			},
			expectError:   true,
			expectedError: model.ErrAlreadyFriends,
		},
		{
			name:   "Should wrap storage failure",
			owner:  1,
			target: 2,
			setupMocks: func(r *resources) {
				r.usersExist(1, 2)
				r.repo.On("AddEdge", r.ctx, int64(1), int64(2)).Return(errors.New("db error")).Once()
			},
			expectError:   true,
			expectedError: ErrFailedToStoreEdge,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.usecase.AddFriend(r.ctx, tc.owner, tc.target)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			r.repo.AssertExpectations(t)
			r.users.AssertExpectations(t)
		})
	}
}

func (s *UsecaseFriendshipUnitSuite) TestDeleteFriend(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		owner, target int64
		setupMocks    func(r *resources)
		expectError   bool
		expectedError error
	}{
		{
			name:   "Should remove edge and notify",
			owner:  1,
			target: 2,
			setupMocks: func(r *resources) {
				r.repo.On("RemoveEdge", r.ctx, int64(1), int64(2)).Return(true, nil).Once()
				r.publisher.On("Publish", r.ctx, eventOf(model.EventFriendRemoved, 1, 2)).Once()
			},
		},
		{
			name:   "Should ignore missing edge",
			owner:  1,
			target: 2,
			setupMocks: func(r *resources) {
				r.repo.On("RemoveEdge", r.ctx, int64(1), int64(2)).Return(false, nil).Once()
			},
		},
		{
			name:          "Should reject zero id",
			owner:         0,
			target:        2,
			setupMocks:    func(r *resources) {},
			expectError:   true,
			expectedError: model.ErrInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			err := r.usecase.DeleteFriend(r.ctx, tc.owner, tc.target)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			r.repo.AssertExpectations(t)
		})
	}
}

func (s *UsecaseFriendshipUnitSuite) TestListFriends(t provider.T) {
	t.Parallel()

	t.Run("Should resolve targets to users", func(t provider.T) {
		r := initResources(t)
		friends := []model.User{{ID: 2, Login: "friend"}, {ID: 3, Login: "common"}}
		r.usersExist(1)
		r.repo.On("Targets", r.ctx, int64(1)).Return([]int64{2, 3}, nil).Once()
		r.users.On("GetMany", r.ctx, []int64{2, 3}).Return(friends, nil).Once()

		got, err := r.usecase.ListFriends(r.ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, friends, got)
	})

	t.Run("Should return not found for unknown user", func(t provider.T) {
		r := initResources(t)
		r.users.On("Exists", r.ctx, int64(42)).Return(false, nil).Once()

		_, err := r.usecase.ListFriends(r.ctx, 42)

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func (s *UsecaseFriendshipUnitSuite) TestListMutualFriends(t provider.T) {
	r := initResources(t)
	common := []model.User{{ID: 3, Login: "common"}}
	r.usersExist(1, 2)
	r.repo.On("Mutual", r.ctx, int64(1), int64(2)).Return([]int64{3}, nil).Once()
	r.users.On("GetMany", r.ctx, []int64{3}).Return(common, nil).Once()

	got, err := r.usecase.ListMutualFriends(r.ctx, 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, common, got)
}

func (s *UsecaseFriendshipUnitSuite) TestConfirmed(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		setupMocks func(r *resources)
		expected   bool
	}{
		{
			name: "Should be confirmed when both edges exist",
			setupMocks: func(r *resources) {
				r.usersExist(1, 2)
				r.repo.On("HasEdge", r.ctx, int64(1), int64(2)).Return(true, nil).Once()
				r.repo.On("HasEdge", r.ctx, int64(2), int64(1)).Return(true, nil).Once()
			},
			expected: true,
		},
		{
			name: "Should be unconfirmed when reverse edge is missing",
			setupMocks: func(r *resources) {
				r.usersExist(1, 2)
				r.repo.On("HasEdge", r.ctx, int64(1), int64(2)).Return(true, nil).Once()
				r.repo.On("HasEdge", r.ctx, int64(2), int64(1)).Return(false, nil).Once()
			},
			expected: false,
		},
		{
			name: "Should be unconfirmed when only reverse edge exists",
			setupMocks: func(r *resources) {
				r.usersExist(1, 2)
				r.repo.On("HasEdge", r.ctx, int64(1), int64(2)).Return(false, nil).Once()
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.Confirmed(r.ctx, 1, 2)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			r.repo.AssertExpectations(t)
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseFriendshipUnitSuite))
}
