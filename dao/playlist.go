package dao

import (
	"Mirsui/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PlaylistDAO struct {
	Repo[models.Playlist]
}

func NewPlaylistDAO(db *gorm.DB) *PlaylistDAO {
	return &PlaylistDAO{Repo: NewRepo[models.Playlist](db)}
}

// GetByID 主键查询，不存在返回 nil
func (d *PlaylistDAO) GetByID(ctx context.Context, playlistID uint64) (*models.Playlist, error) {
	var item models.Playlist
	err := d.Db.WithContext(ctx).Where("id = ?", playlistID).Limit(1).Find(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// ListByUser 查询用户歌单（按更新时间倒序）
func (d *PlaylistDAO) ListByUser(ctx context.Context, userID uint64) ([]models.Playlist, error) {
	var items []models.Playlist
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&items).Error
	return items, err
}

// DeleteCascade 删除歌单并级联删除歌单内曲目
func (d *PlaylistDAO) DeleteCascade(ctx context.Context, playlistID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistID).Delete(&models.PlaylistTrack{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", playlistID).Delete(&models.Playlist{}).Error
	})
}
