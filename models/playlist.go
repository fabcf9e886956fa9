package models

import "time"

// Playlist 用户歌单，对应 playlists
type Playlist struct {
	ID           uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID       uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Name         string    `gorm:"column:name;not null;size:128" json:"name"`
	Description  string    `gorm:"column:description;size:500" json:"description"`
	ThumbnailURL string    `gorm:"column:thumbnail_url;size:512" json:"thumbnail_url"`
	TrackCount   int       `gorm:"column:track_count;not null;default:0" json:"track_count"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Playlist) TableName() string {
	return "playlists"
}
