package models

import "time"

// 预言状态
const (
	PredictionStatusPending = "pending" // 待结算
	PredictionStatusWon     = "won"     // 预测正确
	PredictionStatusLost    = "lost"    // 预测失败
	PredictionStatusExpired = "expired" // 超期未结算
)

// 预言方向
const (
	PredictionTypeIncrease = "increase"
	PredictionTypeDecrease = "decrease"
)

// Prediction 音乐预言（对曲目未来流行度的积分下注），对应 predictions
type Prediction struct {
	ID                 uint64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID             uint64     `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	TrackURI           string     `gorm:"column:track_uri;not null;size:128" json:"track_uri"`
	Title              string     `gorm:"column:title;size:255" json:"title"`
	Artist             string     `gorm:"column:artist;size:255" json:"artist"`
	Album              string     `gorm:"column:album;size:255" json:"album"`
	ArtworkURL         string     `gorm:"column:artwork_url;size:512" json:"artwork_url"`
	CurrentPopularity  int        `gorm:"column:current_popularity;not null" json:"current_popularity"` // 创建时流行度快照
	TargetPopularity   *int       `gorm:"column:target_popularity" json:"target_popularity"`
	PredictedViralDate time.Time  `gorm:"column:predicted_viral_date;not null;index:idx_due,priority:2" json:"predicted_viral_date"`
	PointsBet          int64      `gorm:"column:points_bet;not null" json:"points_bet"`
	Confidence         int        `gorm:"column:prediction_confidence;default:0" json:"prediction_confidence"`
	PredictionType     string     `gorm:"column:prediction_type;not null;size:16" json:"prediction_type"`
	Status             string     `gorm:"column:status;not null;size:16;default:pending;index:idx_due,priority:1" json:"status"`
	PointsGained       int64      `gorm:"column:points_gained;default:0" json:"points_gained"`
	FinalPopularity    *int       `gorm:"column:final_popularity" json:"final_popularity"`
	PartialReturn      bool       `gorm:"column:partial_return;default:false" json:"partial_return"`
	SourceID           string     `gorm:"column:source_id;size:64;uniqueIndex" json:"-"` // 积分流水幂等键
	SettledAt          *time.Time `gorm:"column:settled_at" json:"settled_at"`
	CreatedAt          time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Prediction) TableName() string {
	return "predictions"
}
