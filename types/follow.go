package types

import "Mirsui/models"

type GetFollowingListRequest struct {
	Cursor   int `form:"cursor"`
	PageSize int `form:"page_size"`
}

type GetFollowingListResponse struct {
	Following  []models.FollowingQueryResult `json:"following"`
	Total      int64                         `json:"total"`
	NextCursor int64                         `json:"next_cursor"`
	HasMore    bool                          `json:"has_more"`
}
