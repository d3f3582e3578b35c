package http_user

import (
	"log/slog"
	"net/http"

	http_common "github.com/ZeNuW/filmorate/internal/delivery/http/common"
	usecase_friendship "github.com/ZeNuW/filmorate/internal/usecase/friendship"
	usecase_user "github.com/ZeNuW/filmorate/internal/usecase/user"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	users   *usecase_user.Usecase
	friends *usecase_friendship.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(users *usecase_user.Usecase,
	friends *usecase_friendship.Usecase,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		users:   users,
		friends: friends,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.GET("", c.getUsers)
	users.POST("", c.createUser)
	users.PUT("", c.updateUser)
	users.GET("/:id", c.getUser)
	users.GET("/:id/friends", c.getFriends)
	users.PUT("/:id/friends/:friendId", c.addFriend)
	users.DELETE("/:id/friends/:friendId", c.deleteFriend)
	users.GET("/:id/friends/:friendId/status", c.friendshipStatus)
	users.GET("/:id/friends/common/:otherId", c.getCommonFriends)
}

// @Summary Список пользователей
// @Tags Users
// @Produce json
// @Success 200 {array} UserResponseDTO
// @Router /users [get]
func (c *Controller) getUsers(ctx *gin.Context) {
	users, err := c.users.FindAll(ctx.Request.Context())
	if err != nil {
		http_common.WriteError(ctx, "Failed to load users", err)
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromUserList(users))
}

func (c *Controller) getUser(ctx *gin.Context) {
	id, err := http_common.ParamID(ctx, "id")
	if err != nil {
		http_common.WriteError(ctx, "Invalid user ID", err)
		return
	}

	user, err := c.users.Get(ctx.Request.Context(), id)
	if err != nil {
		http_common.WriteError(ctx, "Failed to load user", err)
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromUser(user))
}

// @Summary Регистрация пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UserRequestDTO true "Пользователь"
// @Success 200 {object} UserResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Router /users [post]
func (c *Controller) createUser(ctx *gin.Context) {
	var req UserRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "Invalid request body", err)
		return
	}

	user, err := req.ConvertToUser()
	if err != nil {
		http_common.BadRequest(ctx, "Invalid request body", err)
		return
	}

	stored, err := c.users.Create(ctx.Request.Context(), user)
	if err != nil {
		http_common.WriteError(ctx, "Failed to create user", err)
		return
	}

	c.logger.Info("user created", slog.Int64("user_id", stored.ID))
	ctx.JSON(http.StatusOK, ConvertFromUser(stored))
}

func (c *Controller) updateUser(ctx *gin.Context) {
	var req UserRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "Invalid request body", err)
		return
	}

	user, err := req.ConvertToUser()
	if err != nil {
		http_common.BadRequest(ctx, "Invalid request body", err)
		return
	}

	stored, err := c.users.Update(ctx.Request.Context(), user)
	if err != nil {
		http_common.WriteError(ctx, "Failed to update user", err)
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromUser(stored))
}

// @Summary Список друзей
// @Tags Friends
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {array} UserResponseDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Router /users/{id}/friends [get]
func (c *Controller) getFriends(ctx *gin.Context) {
	id, err := http_common.ParamID(ctx, "id")
	if err != nil {
		http_common.WriteError(ctx, "Invalid user ID", err)
		return
	}

	friends, err := c.friends.ListFriends(ctx.Request.Context(), id)
	if err != nil {
		http_common.WriteError(ctx, "Failed to load friends", err)
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromUserList(friends))
}

// @Summary Заявка в друзья
// @Tags Friends
// @Param id path int true "ID пользователя"
// @Param friendId path int true "ID друга"
// @Success 200
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 409 {object} http_common.ErrorResponse
// @Router /users/{id}/friends/{friendId} [put]
func (c *Controller) addFriend(ctx *gin.Context) {
	id, friendID, ok := pairParams(ctx, "friendId")
	if !ok {
		return
	}

	if err := c.friends.AddFriend(ctx.Request.Context(), id, friendID); err != nil {
		http_common.WriteError(ctx, "Failed to add friend", err)
		return
	}
	ctx.Status(http.StatusOK)
}

func (c *Controller) deleteFriend(ctx *gin.Context) {
	id, friendID, ok := pairParams(ctx, "friendId")
	if !ok {
		return
	}

	if err := c.friends.DeleteFriend(ctx.Request.Context(), id, friendID); err != nil {
		http_common.WriteError(ctx, "Failed to remove friend", err)
		return
	}
	ctx.Status(http.StatusOK)
}

func (c *Controller) friendshipStatus(ctx *gin.Context) {
	id, friendID, ok := pairParams(ctx, "friendId")
	if !ok {
		return
	}

	confirmed, err := c.friends.Confirmed(ctx.Request.Context(), id, friendID)
	if err != nil {
		http_common.WriteError(ctx, "Failed to load friendship", err)
		return
	}
	ctx.JSON(http.StatusOK, FriendshipStatusDTO{UserID: id, FriendID: friendID, Confirmed: confirmed})
}

// @Summary Общие друзья
// @Tags Friends
// @Produce json
// @Param id path int true "ID пользователя"
// @Param otherId path int true "ID другого пользователя"
// @Success 200 {array} UserResponseDTO
// @Router /users/{id}/friends/common/{otherId} [get]
func (c *Controller) getCommonFriends(ctx *gin.Context) {
	id, otherID, ok := pairParams(ctx, "otherId")
	if !ok {
		return
	}

	friends, err := c.friends.ListMutualFriends(ctx.Request.Context(), id, otherID)
	if err != nil {
		http_common.WriteError(ctx, "Failed to load common friends", err)
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromUserList(friends))
}

func pairParams(ctx *gin.Context, other string) (int64, int64, bool) {
	id, err := http_common.ParamID(ctx, "id")
	if err != nil {
		http_common.WriteError(ctx, "Invalid user ID", err)
		return 0, 0, false
	}
	otherID, err := http_common.ParamID(ctx, other)
	if err != nil {
		http_common.WriteError(ctx, "Invalid user ID", err)
		return 0, 0, false
	}
	return id, otherID, true
}
