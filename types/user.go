package types

// UpdateProfileRequest 资料修改请求
type UpdateProfileRequest struct {
	Nickname *string `json:"nickname"`
	Avatar   *string `json:"avatar"`
	Motto    *string `json:"motto"`
	Email    *string `json:"email"`
}

// ProfileResponse 个人主页响应
type ProfileResponse struct {
	UserID         uint64  `json:"user_id"`
	Username       string  `json:"username"`
	Nickname       string  `json:"nickname"`
	Avatar         string  `json:"avatar"`
	Motto          string  `json:"motto"`
	FollowerCount  int64   `json:"follower_count"`
	FollowingCount int64   `json:"following_count"`
	ClaimCount     int64   `json:"claim_count"`
	PointsBalance  int64   `json:"points_balance"`
	ProphetStats   Prophet `json:"prophet_stats"`
}

// Prophet 预言家统计
type Prophet struct {
	TotalPredictions   int64   `json:"total_predictions"`
	CorrectPredictions int64   `json:"correct_predictions"`
	Accuracy           float64 `json:"accuracy"`   // 0-100
	NetPoints          int64   `json:"net_points"` // 累计获得 - 累计下注
}
