package dao

import (
	"Mirsui/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PlaylistTrackDAO struct {
	Repo[models.PlaylistTrack]
}

func NewPlaylistTrackDAO(db *gorm.DB) *PlaylistTrackDAO {
	return &PlaylistTrackDAO{Repo: NewRepo[models.PlaylistTrack](db)}
}

// ListByPlaylist 查询歌单内曲目（按序号正序）
func (d *PlaylistTrackDAO) ListByPlaylist(ctx context.Context, playlistID uint64) ([]models.PlaylistTrack, error) {
	var items []models.PlaylistTrack
	err := d.Db.WithContext(ctx).
		Where("playlist_id = ?", playlistID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}

// AddTrack 追加曲目到歌单末尾，并同步歌单曲目数
func (d *PlaylistTrackDAO) AddTrack(ctx context.Context, track *models.PlaylistTrack) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos int
		err := tx.Model(&models.PlaylistTrack{}).
			Where("playlist_id = ?", track.PlaylistID).
			Select("IFNULL(MAX(position), 0)").
			Scan(&maxPos).Error
		if err != nil {
			return err
		}
		track.Position = maxPos + 1
		if err := tx.Create(track).Error; err != nil {
			return err
		}
		return tx.Model(&models.Playlist{}).
			Where("id = ?", track.PlaylistID).
			Update("track_count", gorm.Expr("track_count + 1")).Error
	})
}

// RemoveTrack 移除歌单内曲目，后续序号前移，并同步歌单曲目数
func (d *PlaylistTrackDAO) RemoveTrack(ctx context.Context, playlistID uint64, trackURI string) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.PlaylistTrack
		err := tx.Where("playlist_id = ? AND track_uri = ?", playlistID, trackURI).
			Limit(1).Find(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || item.ID == 0 {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.PlaylistTrack{}, item.ID).Error; err != nil {
			return err
		}
		// 后续曲目序号补位，保持 1..N 连续
		if err := tx.Model(&models.PlaylistTrack{}).
			Where("playlist_id = ? AND position > ?", playlistID, item.Position).
			Update("position", gorm.Expr("position - 1")).Error; err != nil {
			return err
		}
		return tx.Model(&models.Playlist{}).
			Where("id = ? AND track_count > 0", playlistID).
			Update("track_count", gorm.Expr("track_count - 1")).Error
	})
}

// IsTrackInPlaylist 判断曲目是否已在歌单内
func (d *PlaylistTrackDAO) IsTrackInPlaylist(ctx context.Context, playlistID uint64, trackURI string) (bool, error) {
	return d.IsExist(ctx, "playlist_id = ? AND track_uri = ?", playlistID, trackURI)
}
