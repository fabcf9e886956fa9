package handler

import (
	"Mirsui/config"
	"Mirsui/middleware"
	"Mirsui/pkg/context"
	"Mirsui/pkg/response"
	"Mirsui/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	Config        *config.Config
	FollowService service.IFollowService
}

func (h *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/follow")
	g.Use(authorize)
	g.POST("/:user_id", context.Wrap(h.Follow))
	g.DELETE("/:user_id", context.Wrap(h.Unfollow))
	g.GET("/following", context.Wrap(h.GetFollowingList))
}

func (h *Follow) Follow(c *gin.Context) error {
	followerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	followeeID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || followeeID == 0 {
		return response.NewError(http.StatusBadRequest, "user_id 无效")
	}

	if err := h.FollowService.Follow(c.Request.Context(), followerID, followeeID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, "关注成功")
	return nil
}

func (h *Follow) Unfollow(c *gin.Context) error {
	followerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	followeeID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil || followeeID == 0 {
		return response.NewError(http.StatusBadRequest, "user_id 无效")
	}

	if err := h.FollowService.Unfollow(c.Request.Context(), followerID, followeeID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, "已取消关注")
	return nil
}

func (h *Follow) GetFollowingList(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	list, err := h.FollowService.GetFollowingList(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, list)
	return nil
}
