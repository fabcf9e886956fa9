package types

import "Mirsui/models"

// ToggleFavoriteRequest 收藏/取消收藏请求
type ToggleFavoriteRequest struct {
	TrackURI   string `json:"track_uri" binding:"required"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	ArtworkURL string `json:"artwork_url"`
}

// ListFavoritesResponse 收藏列表响应
type ListFavoritesResponse struct {
	Favorites  []models.Favorite `json:"favorites"`
	NextCursor int64             `json:"next_cursor"`
	HasMore    bool              `json:"has_more"`
}
