package types

import "Mirsui/pkg/catalog"

// SearchTracksRequest 曲目搜索请求
type SearchTracksRequest struct {
	Query string `form:"q" binding:"required"`
	Limit int    `form:"limit,default=20"`
}

// SearchTracksResponse 曲目搜索响应
type SearchTracksResponse struct {
	Tracks []catalog.Track `json:"tracks"`
}
