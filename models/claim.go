package models

import (
	"time"

	"gorm.io/datatypes"
)

// Claim 抢先认领记录，对应 claims
// 唯一键: user_id + track_uri（同一用户同一曲目只认领一次）
// 唯一键: track_uri + position（同一曲目名次不重复）
type Claim struct {
	ID             uint64         `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID         uint64         `gorm:"column:user_id;not null;uniqueIndex:uk_user_track,priority:1" json:"user_id"`
	TrackURI       string         `gorm:"column:track_uri;not null;size:128;uniqueIndex:uk_user_track,priority:2;uniqueIndex:uk_track_position,priority:1" json:"track_uri"`
	TrackURL       string         `gorm:"column:track_url;size:512" json:"track_url"`
	Title          string         `gorm:"column:title;size:255" json:"title"`
	Artist         string         `gorm:"column:artist;size:255" json:"artist"`
	Album          string         `gorm:"column:album;size:255" json:"album"`
	ArtworkURL     string         `gorm:"column:artwork_url;size:512" json:"artwork_url"`
	Popularity     int            `gorm:"column:popularity;not null;default:0" json:"popularity"` // 认领时的流行度快照 0-100
	Position       int            `gorm:"column:position;not null;uniqueIndex:uk_track_position,priority:2" json:"position"`
	DiscoverRating float64        `gorm:"column:discover_rating;not null;default:0" json:"discover_rating"`
	Message        string         `gorm:"column:message;size:500" json:"message"`
	VideoURL       string         `gorm:"column:video_url;size:512" json:"video_url"` // 外部视频链接，解析失败为空
	Tags           string         `gorm:"column:tags;size:255" json:"tags"`           // 生成的发现标签，逗号分隔
	RawMeta        datatypes.JSON `gorm:"column:raw_meta" json:"raw_meta"`            // 曲库原始元数据快照
	ClaimedAt      time.Time      `gorm:"column:claimed_at;not null" json:"claimed_at"`
}

func (Claim) TableName() string {
	return "claims"
}
