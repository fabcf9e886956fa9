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

type Claim struct {
	Config       *config.Config
	ClaimService service.IClaimService
}

func (h *Claim) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/claims")
	g.Use(authorize)
	g.POST("", context.Wrap(h.ClaimTrack))
	g.GET("/mine", context.Wrap(h.ListMyClaims))
	g.GET("/track", context.Wrap(h.GetTrackClaims))
}

// ClaimTrack 认领曲目，抢占发现名次
func (h *Claim) ClaimTrack(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ClaimTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.ClaimService.ClaimTrack(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, resp)
	return nil
}

func (h *Claim) ListMyClaims(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ListClaimsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	resp, err := h.ClaimService.ListMyClaims(c.Request.Context(), userID, req.Cursor, req.PageSize)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}

// GetTrackClaims 单曲认领概况（名次榜）
func (h *Claim) GetTrackClaims(c *gin.Context) error {
	trackURI := c.Query("track_uri")
	if trackURI == "" {
		return response.NewError(http.StatusBadRequest, "track_uri 不能为空")
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, err := h.ClaimService.GetTrackClaims(c.Request.Context(), trackURI, limit)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, resp)
	return nil
}
