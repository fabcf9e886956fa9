package types

import "Mirsui/models"

// CreatePlaylistRequest 创建歌单请求
type CreatePlaylistRequest struct {
	Name         string `json:"name" binding:"required,max=128"`
	Description  string `json:"description" binding:"max=500"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// UpdatePlaylistRequest 歌单信息修改请求
type UpdatePlaylistRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

// AddPlaylistTrackRequest 歌单添加曲目请求
type AddPlaylistTrackRequest struct {
	TrackURI     string `json:"track_uri" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Artist       string `json:"artist"`
	Album        string `json:"album"`
	ThumbnailURL string `json:"thumbnail_url"`
	DurationMs   int    `json:"duration_ms"`
}

// PlaylistDetailResponse 歌单详情响应
type PlaylistDetailResponse struct {
	Playlist  models.Playlist        `json:"playlist"`
	Tracks    []models.PlaylistTrack `json:"tracks"`
	ShareCode string                 `json:"share_code"`
}
