package handler

import (
	"Mirsui/config"
	"Mirsui/middleware"
	"Mirsui/pkg/context"
	"Mirsui/pkg/response"
	"Mirsui/service"
	"Mirsui/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Favorite struct {
	Config          *config.Config
	FavoriteService service.IFavoriteService
}

func (h *Favorite) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/favorites")
	g.Use(authorize)
	g.POST("/toggle", context.Wrap(h.Toggle))
	g.GET("", context.Wrap(h.List))
	g.GET("/status", context.Wrap(h.GetStatus))
}

// Toggle 收藏状态翻转
func (h *Favorite) Toggle(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	favorited, err := h.FavoriteService.ToggleFavorite(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"favorited": favorited})
	return nil
}

func (h *Favorite) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	cursor, _ := strconv.ParseInt(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, err := h.FavoriteService.ListFavorites(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Favorite) GetStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	trackURI := c.Query("track_uri")
	if trackURI == "" {
		return response.NewError(http.StatusBadRequest, "track_uri 不能为空")
	}

	favorited, err := h.FavoriteService.IsFavorited(c.Request.Context(), userID, trackURI)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"favorited": favorited})
	return nil
}
