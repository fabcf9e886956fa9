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

type Upload struct {
	Config     *config.Config
	OssService service.IOssService
}

func (h *Upload) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/upload")
	g.Use(authorize)
	g.POST("/image", context.Wrap(h.UploadImage))
	g.GET("/sign-url", context.Wrap(h.SignURL))
}

// UploadImage 头像/歌单封面上传
func (h *Upload) UploadImage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "请选择图片")
	}
	if header.Size > 10<<20 {
		return response.NewError(http.StatusBadRequest, "图片不能超过10MB")
	}

	resp, err := h.OssService.UploadImage(c.Request.Context(), userID, header)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, resp)
	return nil
}

// SignURL 私有对象临时访问链接
func (h *Upload) SignURL(c *gin.Context) error {
	if _, err := context.GetUserID(c); err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	key := c.Query("key")
	if key == "" {
		return response.NewError(http.StatusBadRequest, "缺少对象 key")
	}
	expire, _ := strconv.ParseInt(c.DefaultQuery("expire", "600"), 10, 64)
	if expire <= 0 || expire > 3600 {
		expire = 600
	}

	url, err := h.OssService.SignURL(c.Request.Context(), key, expire)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, "生成临时链接失败")
	}
	response.Success(c, gin.H{"url": url, "expire": expire})
	return nil
}
