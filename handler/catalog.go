package handler

import (
	"Mirsui/config"
	"Mirsui/middleware"
	"Mirsui/pkg/context"
	"Mirsui/pkg/response"
	"Mirsui/service"
	"Mirsui/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Catalog struct {
	Config         *config.Config
	CatalogService service.ICatalogService
}

func (h *Catalog) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/catalog")
	g.Use(authorize)
	g.GET("/search", context.Wrap(h.Search))
	g.GET("/track", context.Wrap(h.GetTrack))
}

func (h *Catalog) Search(c *gin.Context) error {
	var req types.SearchTracksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "q 不能为空")
	}

	resp, err := h.CatalogService.SearchTracks(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Catalog) GetTrack(c *gin.Context) error {
	trackURI := c.Query("track_uri")
	if trackURI == "" {
		return response.NewError(http.StatusBadRequest, "track_uri 不能为空")
	}

	track, err := h.CatalogService.GetTrack(c.Request.Context(), trackURI)
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}
	response.Success(c, track)
	return nil
}
