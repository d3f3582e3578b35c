package http_reference

import (
	"net/http"

	http_common "github.com/ZeNuW/filmorate/internal/delivery/http/common"
	"github.com/ZeNuW/filmorate/internal/model"
	usecase_reference "github.com/ZeNuW/filmorate/internal/usecase/reference"
	"github.com/gin-gonic/gin"
)

type ReferenceDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func convertGenres(genres []model.Genre) []ReferenceDTO {
	resp := make([]ReferenceDTO, len(genres))
	for i, g := range genres {
		resp[i] = ReferenceDTO{ID: g.ID, Name: g.Name}
	}
	return resp
}

func convertMpa(ratings []model.Mpa) []ReferenceDTO {
	resp := make([]ReferenceDTO, len(ratings))
	for i, m := range ratings {
		resp[i] = ReferenceDTO{ID: m.ID, Name: m.Name}
	}
	return resp
}

// Controller serves the read-only genre and MPA dictionaries.
type Controller struct {
	catalog *usecase_reference.Catalog
}

func New(catalog *usecase_reference.Catalog) *Controller {
	return &Controller{catalog: catalog}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/genres", c.getGenres)
	router.GET("/genres/:id", c.getGenre)
	router.GET("/mpa", c.getMpaList)
	router.GET("/mpa/:id", c.getMpa)
}

func (c *Controller) getGenres(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, convertGenres(c.catalog.Genres(ctx.Request.Context())))
}

func (c *Controller) getGenre(ctx *gin.Context) {
	id, err := http_common.ParamID(ctx, "id")
	if err != nil {
		http_common.WriteError(ctx, "Invalid genre ID", err)
		return
	}

	g, err := c.catalog.Genre(ctx.Request.Context(), id)
	if err != nil {
		http_common.WriteError(ctx, "Genre not found", err)
		return
	}
	ctx.JSON(http.StatusOK, ReferenceDTO{ID: g.ID, Name: g.Name})
}

func (c *Controller) getMpaList(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, convertMpa(c.catalog.MpaList(ctx.Request.Context())))
}

func (c *Controller) getMpa(ctx *gin.Context) {
	id, err := http_common.ParamID(ctx, "id")
	if err != nil {
		http_common.WriteError(ctx, "Invalid MPA ID", err)
		return
	}

	m, err := c.catalog.Mpa(ctx.Request.Context(), id)
	if err != nil {
		http_common.WriteError(ctx, "MPA rating not found", err)
		return
	}
	ctx.JSON(http.StatusOK, ReferenceDTO{ID: m.ID, Name: m.Name})
}
