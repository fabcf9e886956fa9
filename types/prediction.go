package types

import (
	"time"

	"Mirsui/models"
)

// CreatePredictionRequest 创建预言请求
type CreatePredictionRequest struct {
	TrackURI           string `json:"track_uri" binding:"required"`
	Title              string `json:"title" binding:"required"`
	Artist             string `json:"artist"`
	Album              string `json:"album"`
	ArtworkURL         string `json:"artwork_url"`
	CurrentPopularity  int    `json:"current_popularity" binding:"min=0,max=100"`
	TargetPopularity   *int   `json:"target_popularity"`
	PredictedViralDate string `json:"predicted_viral_date" binding:"required"` // YYYY-MM-DD
	PointsBet          int64  `json:"points_bet" binding:"required"`
	Confidence         int    `json:"prediction_confidence" binding:"min=0,max=100"`
	PredictionType     string `json:"prediction_type" binding:"required,oneof=increase decrease"`
}

// CreatePredictionResponse 创建预言响应
type CreatePredictionResponse struct {
	Prediction models.Prediction `json:"prediction"`
	Balance    int64             `json:"balance"` // 扣除下注后的余额
}

// ListPredictionsRequest 预言列表请求
type ListPredictionsRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending won lost expired"`
	Cursor   int64  `form:"cursor"`
	PageSize int    `form:"page_size"`
}

// ListPredictionsResponse 预言列表响应
type ListPredictionsResponse struct {
	Predictions []models.Prediction `json:"predictions"`
	NextCursor  int64               `json:"next_cursor"`
	HasMore     bool                `json:"has_more"`
}

// SettlementResult 单条预言的结算结果
type SettlementResult struct {
	PredictionID    uint64    `json:"prediction_id"`
	Status          string    `json:"status"`
	PointsGained    int64     `json:"points_gained"`
	FinalPopularity int       `json:"final_popularity"`
	SettledAt       time.Time `json:"settled_at"`
}
