package models

import "time"

// Favorite 曲目收藏记录，对应 favorites
// status: 1=已收藏，0=已取消
// 唯一键: user_id + track_uri
type Favorite struct {
	ID         uint64    `gorm:"column:id;primaryKey;AUTO_INCREMENT" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;index:uk_user_track,priority:1" json:"user_id"`
	TrackURI   string    `gorm:"column:track_uri;not null;size:128;index:uk_user_track,priority:2" json:"track_uri"`
	Title      string    `gorm:"column:title;size:255" json:"title"`
	Artist     string    `gorm:"column:artist;size:255" json:"artist"`
	Album      string    `gorm:"column:album;size:255" json:"album"`
	ArtworkURL string    `gorm:"column:artwork_url;size:512" json:"artwork_url"`
	Status     uint8     `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Favorite) TableName() string { return "favorites" }
