package http_film

import (
	"log/slog"
	"net/http"
	"strconv"

	http_common "github.com/ZeNuW/filmorate/internal/delivery/http/common"
	usecase_film "github.com/ZeNuW/filmorate/internal/usecase/film"
	usecase_like "github.com/ZeNuW/filmorate/internal/usecase/like"
	usecase_popular "github.com/ZeNuW/filmorate/internal/usecase/popular"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	films   *usecase_film.Usecase
	likes   *usecase_like.Usecase
	popular *usecase_popular.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(films *usecase_film.Usecase,
	likes *usecase_like.Usecase,
	popular *usecase_popular.Usecase,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		films:   films,
		likes:   likes,
		popular: popular,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	films := router.Group("/films")
	films.GET("", c.getFilms)
	films.POST("", c.createFilm)
	films.PUT("", c.updateFilm)
	films.GET("/popular", c.getPopular)
	films.GET("/:id", c.getFilm)
	films.GET("/:id/likes", c.countLikes)
	films.PUT("/:id/like/:userId", c.setLike)
	films.DELETE("/:id/like/:userId", c.deleteLike)
}

// @Summary Список фильмов
// @Tags Films
// @Produce json
// @Success 200 {array} FilmResponseDTO
// @Router /films [get]
func (c *Controller) getFilms(ctx *gin.Context) {
	films, err := c.films.FindAll(ctx.Request.Context())
	if err != nil {
		http_common.WriteError(ctx, "Failed to load films", err)
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromFilmList(films))
}

// @Summary Фильм по идентификатору
// @Tags Films
// @Produce json
// @Param id path int true "ID фильма"
// @Success 200 {object} FilmResponseDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Router /films/{id} [get]
func (c *Controller) getFilm(ctx *gin.Context) {
	id, err := http_common.ParamID(ctx, "id")
	if err != nil {
		http_common.WriteError(ctx, "Invalid film ID", err)
		return
	}

	film, err := c.films.Get(ctx.Request.Context(), id)
	if err != nil {
		http_common.WriteError(ctx, "Failed to load film", err)
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromFilm(film))
}

// @Summary Добавление фильма
// @Tags Films
// @Accept json
// @Produce json
// @Param request body FilmRequestDTO true "Фильм"
// @Success 200 {object} FilmResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Router /films [post]
func (c *Controller) createFilm(ctx *gin.Context) {
	var req FilmRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "Invalid request body", err)
		return
	}

	film, err := req.ConvertToFilm()
	if err != nil {
		http_common.BadRequest(ctx, "Invalid request body", err)
		return
	}

	stored, err := c.films.Create(ctx.Request.Context(), film)
	if err != nil {
		http_common.WriteError(ctx, "Failed to create film", err)
		return
	}

	c.logger.Info("film created", slog.Int64("film_id", stored.ID))
	ctx.JSON(http.StatusOK, ConvertFromFilm(stored))
}

// @Summary Обновление фильма
// @Tags Films
// @Accept json
// @Produce json
// @Param request body FilmRequestDTO true "Фильм"
// @Success 200 {object} FilmResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Router /films [put]
func (c *Controller) updateFilm(ctx *gin.Context) {
	var req FilmRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, "Invalid request body", err)
		return
	}

	film, err := req.ConvertToFilm()
	if err != nil {
		http_common.BadRequest(ctx, "Invalid request body", err)
		return
	}

	stored, err := c.films.Update(ctx.Request.Context(), film)
	if err != nil {
		http_common.WriteError(ctx, "Failed to update film", err)
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromFilm(stored))
}

// @Summary Популярные фильмы
// @Tags Films
// @Produce json
// @Param count query int false "Размер выборки" default(10)
// @Success 200 {array} FilmResponseDTO
// @Router /films/popular [get]
func (c *Controller) getPopular(ctx *gin.Context) {
	count := usecase_popular.DefaultCount
	if raw, ok := ctx.GetQuery("count"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http_common.BadRequest(ctx, "Invalid count", err)
			return
		}
		count = n
	}

	films, err := c.popular.TopLiked(ctx.Request.Context(), count)
	if err != nil {
		http_common.WriteError(ctx, "Failed to rank films", err)
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromFilmList(films))
}

func (c *Controller) countLikes(ctx *gin.Context) {
	id, err := http_common.ParamID(ctx, "id")
	if err != nil {
		http_common.WriteError(ctx, "Invalid film ID", err)
		return
	}

	n, err := c.likes.CountLikes(ctx.Request.Context(), id)
	if err != nil {
		http_common.WriteError(ctx, "Failed to count likes", err)
		return
	}
	ctx.JSON(http.StatusOK, LikesResponseDTO{FilmID: id, Likes: n})
}

// @Summary Лайк фильму
// @Tags Films
// @Param id path int true "ID фильма"
// @Param userId path int true "ID пользователя"
// @Success 200
// @Failure 404 {object} http_common.ErrorResponse
// @Router /films/{id}/like/{userId} [put]
func (c *Controller) setLike(ctx *gin.Context) {
	filmID, userID, ok := c.likeParams(ctx)
	if !ok {
		return
	}

	if err := c.likes.SetLike(ctx.Request.Context(), filmID, userID); err != nil {
		http_common.WriteError(ctx, "Failed to like film", err)
		return
	}
	ctx.Status(http.StatusOK)
}

// @Summary Удаление лайка
// @Tags Films
// @Param id path int true "ID фильма"
// @Param userId path int true "ID пользователя"
// @Success 200
// @Failure 404 {object} http_common.ErrorResponse
// @Router /films/{id}/like/{userId} [delete]
func (c *Controller) deleteLike(ctx *gin.Context) {
	filmID, userID, ok := c.likeParams(ctx)
	if !ok {
		return
	}

	if err := c.likes.DeleteLike(ctx.Request.Context(), filmID, userID); err != nil {
		http_common.WriteError(ctx, "Failed to remove like", err)
		return
	}
	ctx.Status(http.StatusOK)
}

func (c *Controller) likeParams(ctx *gin.Context) (int64, int64, bool) {
	filmID, err := http_common.ParamID(ctx, "id")
	if err != nil {
		http_common.WriteError(ctx, "Invalid film ID", err)
		return 0, 0, false
	}
	userID, err := http_common.ParamID(ctx, "userId")
	if err != nil {
		http_common.WriteError(ctx, "Invalid user ID", err)
		return 0, 0, false
	}
	return filmID, userID, true
}
