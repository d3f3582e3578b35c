package http_user

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	infra_memory "github.com/ZeNuW/filmorate/internal/infra/memory"
	"github.com/ZeNuW/filmorate/internal/service/idseq"
	usecase_friendship "github.com/ZeNuW/filmorate/internal/usecase/friendship"
	usecase_user "github.com/ZeNuW/filmorate/internal/usecase/user"
	"github.com/gin-gonic/gin"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UserControllerSuite struct {
	suite.Suite
}

type resources struct {
	engine *gin.Engine
}

func initResources() *resources {
	gin.SetMode(gin.TestMode)

	userRepo := infra_memory.NewUserRepository()
	users := usecase_user.New(userRepo, idseq.New(userRepo.MaxID))
	friends := usecase_friendship.New(infra_memory.NewFriendshipRepository(), users)

	engine := gin.New()
	New(users, friends).RegisterRoutes(&engine.RouterGroup)

	return &resources{engine: engine}
}

func (r *resources) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.engine.ServeHTTP(w, req)
	return w
}

func (r *resources) createUsers(t provider.T, logins ...string) {
	for _, login := range logins {
		w := r.do(http.MethodPost, "/users", UserRequestDTO{
			Email:    login + "@mail.ru",
			Login:    login,
			Birthday: "1946-08-20",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("failed to create user %s: %s", login, w.Body.String())
		}
	}
}

func decode[T any](t provider.T, w *httptest.ResponseRecorder) T {
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
	return v
}

func ids(users []UserResponseDTO) []int64 {
	out := make([]int64, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func (s *UserControllerSuite) TestCreate(t provider.T) {
	t.Parallel()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	testCases := []struct {
		name   string
		body   UserRequestDTO
		status int
	}{
		{"Should create user", UserRequestDTO{Email: "mail@mail.ru", Login: "dolore", Name: "Nick Name", Birthday: "1946-08-20"}, http.StatusOK},
		{"Should reject email without at sign", UserRequestDTO{Email: "mail.ru", Login: "dolore", Birthday: "1946-08-20"}, http.StatusBadRequest},
		{"Should reject login with spaces", UserRequestDTO{Email: "mail@mail.ru", Login: "dolore ullamco", Birthday: "1946-08-20"}, http.StatusBadRequest},
		{"Should reject future birthday", UserRequestDTO{Email: "mail@mail.ru", Login: "dolore", Birthday: tomorrow}, http.StatusBadRequest},
		{"Should reject malformed birthday", UserRequestDTO{Email: "mail@mail.ru", Login: "dolore", Birthday: "20.08.1946"}, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources()

			w := r.do(http.MethodPost, "/users", tc.body)

			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}
}

func (s *UserControllerSuite) TestBlankNameDefaultsToLogin(t provider.T) {
	t.Parallel()
	r := initResources()

	w := r.do(http.MethodPost, "/users", UserRequestDTO{Email: "friend@common.ru", Login: "common", Birthday: "2000-08-20"})

	assert.Equal(t, http.StatusOK, w.Code)
	created := decode[UserResponseDTO](t, w)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "common", created.Name)
	assert.Equal(t, "2000-08-20", created.Birthday)

	w = r.do(http.MethodGet, "/users/1", nil)
	assert.Equal(t, created, decode[UserResponseDTO](t, w))
}

func (s *UserControllerSuite) TestUpdate(t provider.T) {
	t.Parallel()
	r := initResources()
	r.createUsers(t, "dolore")

	w := r.do(http.MethodPut, "/users", UserRequestDTO{ID: 1, Email: "mail@yandex.ru", Login: "doloreUpdate", Name: "est adipisicing", Birthday: "1976-09-20"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "doloreUpdate", decode[UserResponseDTO](t, w).Login)

	w = r.do(http.MethodPut, "/users", UserRequestDTO{ID: 9999, Email: "mail@yandex.ru", Login: "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = r.do(http.MethodGet, "/users", nil)
	assert.Len(t, decode[[]UserResponseDTO](t, w), 1)
}

func (s *UserControllerSuite) TestFriendshipFlow(t provider.T) {
	t.Parallel()
	r := initResources()
	r.createUsers(t, "one", "two", "three")

	assert.Equal(t, http.StatusOK, r.do(http.MethodPut, "/users/1/friends/2", nil).Code)

	w := r.do(http.MethodGet, "/users/1/friends", nil)
	assert.Equal(t, []int64{2}, ids(decode[[]UserResponseDTO](t, w)))
	w = r.do(http.MethodGet, "/users/2/friends", nil)
	assert.Empty(t, decode[[]UserResponseDTO](t, w))

	w = r.do(http.MethodGet, "/users/1/friends/2/status", nil)
	assert.False(t, decode[FriendshipStatusDTO](t, w).Confirmed)

	assert.Equal(t, http.StatusOK, r.do(http.MethodPut, "/users/2/friends/1", nil).Code)
	w = r.do(http.MethodGet, "/users/2/friends/1/status", nil)
	assert.Equal(t, FriendshipStatusDTO{UserID: 2, FriendID: 1, Confirmed: true}, decode[FriendshipStatusDTO](t, w))

	assert.Equal(t, http.StatusConflict, r.do(http.MethodPut, "/users/1/friends/2", nil).Code)

	assert.Equal(t, http.StatusOK, r.do(http.MethodPut, "/users/1/friends/3", nil).Code)
	assert.Equal(t, http.StatusOK, r.do(http.MethodPut, "/users/2/friends/3", nil).Code)
	w = r.do(http.MethodGet, "/users/1/friends/common/2", nil)
	assert.Equal(t, []int64{3}, ids(decode[[]UserResponseDTO](t, w)))

	assert.Equal(t, http.StatusOK, r.do(http.MethodDelete, "/users/1/friends/2", nil).Code)
	w = r.do(http.MethodGet, "/users/1/friends", nil)
	assert.Equal(t, []int64{3}, ids(decode[[]UserResponseDTO](t, w)))
	w = r.do(http.MethodGet, "/users/2/friends/1/status", nil)
	assert.False(t, decode[FriendshipStatusDTO](t, w).Confirmed)
}

func (s *UserControllerSuite) TestFriendshipErrors(t provider.T) {
	t.Parallel()
	r := initResources()
	r.createUsers(t, "one")

	testCases := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"Should reject self friendship", http.MethodPut, "/users/1/friends/1", http.StatusBadRequest},
		{"Should reject negative friend id", http.MethodPut, "/users/1/friends/-1", http.StatusBadRequest},
		{"Should return not found for missing user", http.MethodPut, "/users/1/friends/42", http.StatusNotFound},
		{"Should return not found when listing unknown user", http.MethodGet, "/users/42/friends", http.StatusNotFound},
		{"Should return not found for unknown user", http.MethodGet, "/users/42", http.StatusNotFound},
		{"Should reject non numeric id", http.MethodGet, "/users/abc", http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			w := r.do(tc.method, tc.path, nil)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}
}

func TestUserControllerSuite(t *testing.T) {
	suite.RunSuite(t, new(UserControllerSuite))
}
