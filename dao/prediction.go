package dao

import (
	"Mirsui/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type PredictionDAO struct {
	Repo[models.Prediction]
}

func NewPredictionDAO(db *gorm.DB) *PredictionDAO {
	return &PredictionDAO{Repo: NewRepo[models.Prediction](db)}
}

// ListByUser 查询用户的预言（可按状态过滤，按创建时间倒序）
func (d *PredictionDAO) ListByUser(ctx context.Context, userID uint64, status string, cursor int64, limit int) ([]models.Prediction, error) {
	var items []models.Prediction
	query := d.Db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&items).Error
	return items, err
}

// ListDuePending 查询已到期待结算的预言
func (d *PredictionDAO) ListDuePending(ctx context.Context, now time.Time, limit int) ([]models.Prediction, error) {
	var items []models.Prediction
	err := d.Db.WithContext(ctx).
		Where("status = ? AND predicted_viral_date <= ?", models.PredictionStatusPending, now).
		Order("predicted_viral_date ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// MarkSettled 状态迁移，仅允许从 pending 出发，防止重复结算
func (d *PredictionDAO) MarkSettled(ctx context.Context, tx *gorm.DB, predictionID uint64, updates map[string]any) (bool, error) {
	res := tx.WithContext(ctx).
		Model(&models.Prediction{}).
		Where("id = ? AND status = ?", predictionID, models.PredictionStatusPending).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetStats 统计用户预言数据（总数、命中数、累计下注、累计获得）
func (d *PredictionDAO) GetStats(ctx context.Context, userID uint64) (total, correct, totalBet, totalGained int64, err error) {
	var res struct {
		Total       int64
		Correct     int64
		TotalBet    int64
		TotalGained int64
	}
	err = d.Db.WithContext(ctx).Table("predictions").
		Select("COUNT(*) AS total, "+
			"SUM(CASE WHEN status = 'won' THEN 1 ELSE 0 END) AS correct, "+
			"IFNULL(SUM(points_bet), 0) AS total_bet, "+
			"IFNULL(SUM(points_gained), 0) AS total_gained").
		Where("user_id = ?", userID).
		Scan(&res).Error
	return res.Total, res.Correct, res.TotalBet, res.TotalGained, err
}
