package models

import "time"

type UserPoint struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	UserID      uint64    `gorm:"column:user_id;uniqueIndex"`
	Balance     int64     `gorm:"column:balance;default:0"`
	TotalEarned uint64    `gorm:"column:total_earned;default:0"`
	TotalUsed   uint64    `gorm:"column:total_used;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (UserPoint) TableName() string {
	return "user_points"
}

// 积分变动类型常量定义
const (
	// 收入类
	TypeSignupBonus      = 1 // 注册奖励
	TypePredictionPayout = 2 // 预言结算奖励
	TypePredictionRefund = 3 // 预言过期返还

	// 支出类
	TypePredictionBet = 10 // 预言下注
)

type PointsLog struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	UserID     uint64    `gorm:"column:user_id;index:idx_user_id"`
	Amount     int64     `gorm:"column:amount"`      // 变动数额（正负）
	Balance    int64     `gorm:"column:balance"`     // 变动后余额
	ChangeType int8      `gorm:"column:change_type"` // 见上方常量
	Status     int8      `gorm:"column:status"`      // 0-待入账, 1-正式入账
	SourceID   string    `gorm:"column:source_id;index:idx_source_id;size:64"`
	Remark     string    `gorm:"column:remark;size:255"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (PointsLog) TableName() string {
	return "point_logs"
}
