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

type Playlist struct {
	Config          *config.Config
	PlaylistService service.IPlaylistService
}

func (h *Playlist) RegisterRouter(r gin.IRouter) {
	// 分享码访问无需登录
	r.GET("/playlists/shared/:code", context.Wrap(h.GetShared))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/playlists")
	g.Use(authorize)
	g.POST("", context.Wrap(h.Create))
	g.GET("", context.Wrap(h.ListMine))
	g.GET("/:id", context.Wrap(h.GetDetail))
	g.POST("/:id", context.Wrap(h.Update))
	g.DELETE("/:id", context.Wrap(h.Delete))
	g.POST("/:id/tracks", context.Wrap(h.AddTrack))
	g.DELETE("/:id/tracks", context.Wrap(h.RemoveTrack))
}

func parsePlaylistID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, "歌单ID无效")
	}
	return id, nil
}

func (h *Playlist) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	playlist, err := h.PlaylistService.CreatePlaylist(c.Request.Context(), userID, &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, playlist)
	return nil
}

func (h *Playlist) ListMine(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	list, err := h.PlaylistService.ListMyPlaylists(c.Request.Context(), userID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, list)
	return nil
}

func (h *Playlist) GetDetail(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	playlistID, err := parsePlaylistID(c)
	if err != nil {
		return err
	}

	detail, err := h.PlaylistService.GetPlaylistDetail(c.Request.Context(), userID, playlistID)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, detail)
	return nil
}

func (h *Playlist) GetShared(c *gin.Context) error {
	code := c.Param("code")
	detail, err := h.PlaylistService.GetSharedPlaylist(c.Request.Context(), code)
	if err != nil {
		return response.NewError(http.StatusNotFound, err.Error())
	}
	response.Success(c, detail)
	return nil
}

func (h *Playlist) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	playlistID, err := parsePlaylistID(c)
	if err != nil {
		return err
	}

	var req types.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := h.PlaylistService.UpdatePlaylist(c.Request.Context(), userID, playlistID, &req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, "更新成功")
	return nil
}

func (h *Playlist) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	playlistID, err := parsePlaylistID(c)
	if err != nil {
		return err
	}

	if err := h.PlaylistService.DeletePlaylist(c.Request.Context(), userID, playlistID); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, "已删除")
	return nil
}

func (h *Playlist) AddTrack(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	playlistID, err := parsePlaylistID(c)
	if err != nil {
		return err
	}

	var req types.AddPlaylistTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误")
	}

	if err := h.PlaylistService.AddTrack(c.Request.Context(), userID, playlistID, &req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, "已添加")
	return nil
}

func (h *Playlist) RemoveTrack(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	playlistID, err := parsePlaylistID(c)
	if err != nil {
		return err
	}

	trackURI := c.Query("track_uri")
	if trackURI == "" {
		return response.NewError(http.StatusBadRequest, "track_uri 不能为空")
	}

	if err := h.PlaylistService.RemoveTrack(c.Request.Context(), userID, playlistID, trackURI); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	response.Success(c, "已移除")
	return nil
}
