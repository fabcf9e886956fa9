package models

import "time"

// PlaylistTrack 歌单内曲目，对应 playlist_tracks
// 唯一键: playlist_id + track_uri
type PlaylistTrack struct {
	ID           uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	PlaylistID   uint64    `gorm:"column:playlist_id;not null;uniqueIndex:uk_playlist_track,priority:1" json:"playlist_id"`
	TrackURI     string    `gorm:"column:track_uri;not null;size:128;uniqueIndex:uk_playlist_track,priority:2" json:"track_uri"`
	Title        string    `gorm:"column:title;size:255" json:"title"`
	Artist       string    `gorm:"column:artist;size:255" json:"artist"`
	Album        string    `gorm:"column:album;size:255" json:"album"`
	ThumbnailURL string    `gorm:"column:thumbnail_url;size:512" json:"thumbnail_url"`
	DurationMs   int       `gorm:"column:duration_ms;default:0" json:"duration_ms"`
	Position     int       `gorm:"column:position;not null" json:"position"` // 歌单内序号，从1开始
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PlaylistTrack) TableName() string {
	return "playlist_tracks"
}
