package dao

import (
	"Mirsui/models"
	"context"
	"errors"

	"gorm.io/gorm"
)

type FavoriteDAO struct {
	Repo[models.Favorite]
}

func NewFavoriteDAO(db *gorm.DB) *FavoriteDAO {
	return &FavoriteDAO{Repo: NewRepo[models.Favorite](db)}
}

// GetByUserTrack 查询指定用户对指定曲目的收藏记录
func (d *FavoriteDAO) GetByUserTrack(ctx context.Context, userID uint64, trackURI string) (*models.Favorite, error) {
	var item models.Favorite
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND track_uri = ?", userID, trackURI).
		Limit(1).Find(&item).Error
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

// SetStatus 设置收藏状态，不存在则创建
func (d *FavoriteDAO) SetStatus(ctx context.Context, fav *models.Favorite, status uint8) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Favorite
		err := tx.Where("user_id = ? AND track_uri = ?", fav.UserID, fav.TrackURI).
			Limit(1).Find(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = nil
		}
		if err != nil {
			return err
		}
		if item.ID == 0 {
			fav.Status = status
			return tx.Create(fav).Error
		}
		return tx.Model(&models.Favorite{}).Where("id = ?", item.ID).Update("status", status).Error
	})
}

// ListByUser 查询用户收藏（status=1，按收藏时间倒序）
func (d *FavoriteDAO) ListByUser(ctx context.Context, userID uint64, cursor int64, limit int) ([]models.Favorite, error) {
	var items []models.Favorite
	query := d.Db.WithContext(ctx).Where("user_id = ? AND status = 1", userID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&items).Error
	return items, err
}

// IsFavorited 是否已收藏（status=1）
func (d *FavoriteDAO) IsFavorited(ctx context.Context, userID uint64, trackURI string) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND track_uri = ? AND status = 1", userID, trackURI)
}
