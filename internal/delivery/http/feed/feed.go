package http_feed

import (
	"context"
	"log/slog"
	"net/http"

	http_common "github.com/ZeNuW/filmorate/internal/delivery/http/common"
	ws_feed "github.com/ZeNuW/filmorate/internal/delivery/ws/feed"
	"github.com/ZeNuW/filmorate/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Users interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Controller struct {
	users Users
	hub   *ws_feed.Hub

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(users Users,
	hub *ws_feed.Hub,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		users:  users,
		hub:    hub,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users/:id/feed", c.feedWS)
}

// @Summary Лента событий пользователя
// @Description Websocket: друзья и лайки пользователя в реальном времени
// @Tags Users
// @Param id path int true "ID пользователя"
// @Failure 404 {object} http_common.ErrorResponse
// @Router /users/{id}/feed [get]
func (c *Controller) feedWS(ctx *gin.Context) {
	userID, err := http_common.ParamID(ctx, "id")
	if err != nil {
		http_common.WriteError(ctx, "Invalid user ID", err)
		return
	}

	exists, err := c.users.Exists(ctx.Request.Context(), userID)
	if err != nil {
		http_common.WriteError(ctx, "Failed to load user", err)
		return
	}
	if !exists {
		http_common.WriteError(ctx, "User not found", model.ErrNotFound)
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade to websocket",
			slog.String("error", err.Error()),
		)
		return
	}

	client := ws_feed.NewClient(conn, userID)
	c.hub.RegisterClient(client)

	go c.hub.StartClientReading(client)
	go c.hub.StartClientWriting(client)
}
