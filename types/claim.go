package types

import "Mirsui/models"

// ClaimTrackRequest 认领曲目请求
type ClaimTrackRequest struct {
	TrackURI   string `json:"track_uri" binding:"required"`
	TrackURL   string `json:"track_url"`
	Title      string `json:"title" binding:"required"`
	Artist     string `json:"artist" binding:"required"`
	Album      string `json:"album"`
	ArtworkURL string `json:"artwork_url"`
	Popularity int    `json:"popularity" binding:"min=0,max=100"` // 认领时的流行度快照
	Message    string `json:"message" binding:"max=500"`
}

// ClaimTrackResponse 认领结果
type ClaimTrackResponse struct {
	ClaimID        uint64  `json:"claim_id"`
	Position       int     `json:"position"`
	DiscoverRating float64 `json:"discover_rating"`
	AlreadyClaimed bool    `json:"already_claimed"` // true 表示此前已认领，返回的是原记录
}

// ListClaimsRequest 认领列表请求
type ListClaimsRequest struct {
	Cursor   int64 `form:"cursor"`
	PageSize int   `form:"page_size"`
}

// ListClaimsResponse 认领列表响应
type ListClaimsResponse struct {
	Claims     []models.Claim `json:"claims"`
	NextCursor int64          `json:"next_cursor"`
	HasMore    bool           `json:"has_more"`
}

// TrackClaimsResponse 单曲认领概况
type TrackClaimsResponse struct {
	TrackURI   string         `json:"track_uri"`
	ClaimCount int64          `json:"claim_count"`
	Claims     []models.Claim `json:"claims"`
}
