package dao

import (
	"Mirsui/models"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClaimDAO struct {
	Repo[models.Claim]
}

func NewClaimDAO(db *gorm.DB) *ClaimDAO {
	return &ClaimDAO{Repo: NewRepo[models.Claim](db)}
}

// GetByUserTrack 查询指定用户对指定曲目的认领记录，不存在返回 nil
func (d *ClaimDAO) GetByUserTrack(ctx context.Context, userID uint64, trackURI string) (*models.Claim, error) {
	var item models.Claim
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

// CountForTrackLocked 事务内带行锁统计曲目认领数，用于名次分配
func (d *ClaimDAO) CountForTrackLocked(ctx context.Context, tx *gorm.DB, trackURI string) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Claim{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("track_uri = ?", trackURI).
		Count(&count).Error
	return count, err
}

// InsertWithPosition 事务内带行锁取已有认领数+1 作为名次后插入，
// 配合 (track_uri, position) 唯一键保证名次 1..N 连续不重复
func (d *ClaimDAO) InsertWithPosition(ctx context.Context, claim *models.Claim, rate func(position int) float64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := d.CountForTrackLocked(ctx, tx, claim.TrackURI)
		if err != nil {
			return err
		}
		claim.Position = int(count) + 1
		claim.DiscoverRating = rate(claim.Position)
		return tx.Create(claim).Error
	})
}

// CountForTrack 统计曲目认领数
func (d *ClaimDAO) CountForTrack(ctx context.Context, trackURI string) (int64, error) {
	return d.CountByWhere(ctx, "track_uri = ?", trackURI)
}

// ListByUser 查询用户的认领记录（游标分页，按认领时间倒序）
func (d *ClaimDAO) ListByUser(ctx context.Context, userID uint64, cursor int64, limit int) ([]models.Claim, error) {
	var claims []models.Claim
	query := d.Db.WithContext(ctx).Where("user_id = ?", userID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&claims).Error
	return claims, err
}

// ListByTrack 查询曲目的认领记录（按名次正序）
func (d *ClaimDAO) ListByTrack(ctx context.Context, trackURI string, limit int) ([]models.Claim, error) {
	var claims []models.Claim
	err := d.Db.WithContext(ctx).
		Where("track_uri = ?", trackURI).
		Order("position ASC").
		Limit(limit).
		Find(&claims).Error
	return claims, err
}

// UpdateEnrichment 回填外部补充信息（视频链接、标签）
func (d *ClaimDAO) UpdateEnrichment(ctx context.Context, claimID uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Claim{}).
		Where("id = ?", claimID).
		Updates(updates).Error
}
