package dao

import (
	"Mirsui/models"
	"context"

	"gorm.io/gorm"
)

type Point struct {
	Repo[models.UserPoint]
}

func NewPoint(db *gorm.DB) *Point {
	return &Point{
		Repo: NewRepo[models.UserPoint](db),
	}
}

// CheckLogExists 幂等检查：同一业务单号是否已有流水
func (p *Point) CheckLogExists(ctx context.Context, userID uint64, sourceID string, changeType int) (bool, error) {
	var count int64
	err := p.Db.WithContext(ctx).Model(&models.PointsLog{}).
		Where("user_id = ? AND source_id = ? AND change_type = ?", userID, sourceID, changeType).
		Count(&count).Error
	return count > 0, err
}

// GetAccount 获取账户信息
func (p *Point) GetAccount(ctx context.Context, userID uint64) (*models.UserPoint, error) {
	var account models.UserPoint
	err := p.Db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error
	return &account, err
}

// CreateAccount 初始化账户（针对新用户）
func (p *Point) CreateAccount(ctx context.Context, userID uint64, initialPoints int64) error {
	newAccount := &models.UserPoint{
		UserID:      userID,
		Balance:     initialPoints,
		TotalEarned: uint64(initialPoints),
		TotalUsed:   0,
	}
	return p.Db.WithContext(ctx).Create(newAccount).Error
}

func (p *Point) CreatePointLog(ctx context.Context, log *models.PointsLog) error {
	return p.Db.WithContext(ctx).Create(log).Error
}

// UpdateBalance 原子加减余额，amount 为负时累计到 total_used
func (p *Point) UpdateBalance(ctx context.Context, userID uint64, amount int64) (int64, error) {
	updates := map[string]interface{}{
		// gorm.Expr 保证了并发下的原子加减，避免数据覆盖
		"balance": gorm.Expr("balance + ?", amount),
	}
	if amount >= 0 {
		updates["total_earned"] = gorm.Expr("total_earned + ?", amount)
	} else {
		updates["total_used"] = gorm.Expr("total_used + ?", -amount)
	}
	query := p.Db.WithContext(ctx).Model(&models.UserPoint{}).
		Where("user_id = ?", userID)
	if amount < 0 {
		// 扣减时余额不足直接零行命中
		query = query.Where("balance >= ?", -amount)
	}
	result := query.Updates(updates)

	// 返回受影响的行数，用于 Service 判断是否需要自动开户
	return result.RowsAffected, result.Error
}

// ListRecords 分页筛选查询
func (p *Point) ListRecords(ctx context.Context, userID uint64, action string, cursor int64, limit int) ([]models.PointsLog, error) {
	var logs []models.PointsLog
	query := p.Db.WithContext(ctx).Where("user_id = ?", userID)

	switch action {
	case "income":
		query = query.Where("amount > ?", 0)
	case "expense":
		query = query.Where("amount < ?", 0)
	}

	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}

	err := query.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
