package handler

import (
	"Mirsui/config"
	"Mirsui/middleware"
	"Mirsui/pkg/context"
	"Mirsui/pkg/response"
	"Mirsui/pkg/utils"
	"Mirsui/service"
	"Mirsui/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/user")
	g.Use(authorize)
	g.GET("/profile", context.Wrap(h.GetProfile))
	g.POST("/profile", context.Wrap(h.UpdateProfile))
}

// GetProfile 个人主页，支持 ?user_id= 查看他人
func (h *User) GetProfile(c *gin.Context) error {
	userID, err := utils.GetQueryOrTokenUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	profile, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}
	response.Success(c, profile)
	return nil
}

func (h *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := h.UserService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, "更新成功")
	return nil
}
