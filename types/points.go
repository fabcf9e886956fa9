package types

// PointRecord 每一条流水的细节
type PointRecord struct {
	ID          int    `json:"id"`          // 流水唯一ID
	Amount      int    `json:"amount"`      // 变动数值（如 +10, -50）
	Description string `json:"description"` // 详细描述（如：注册奖励、预言下注）
	OrderType   string `json:"order_type"`  // 业务类型：INCOME(收入), EXPENSE(支出)
	Status      int    `json:"status"`      // 状态：0-待入账, 1-已入账
	CreatedAt   string `json:"created_at"`  // 发放/变动时间：格式化字符串
}

// ListPointsRecord 流水列表包装
type ListPointsRecord struct {
	Records    []PointRecord `json:"records"`     // 积分流水细节
	NextCursor int64         `json:"next_cursor"` // 游标：用于下一页请求
	HasMore    bool          `json:"has_more"`    // 标记是否还有更多数据
}

// PointsAccount 账户概览统计
type PointsAccount struct {
	Balance     int64 `json:"balance"`      // 当前可用积分余额
	TotalEarned int64 `json:"total_earned"` // 历史累计获得
	TotalUsed   int64 `json:"total_used"`   // 历史累计使用
}

// ListPointRecordsReq 流水列表请求
type ListPointRecordsReq struct {
	Action string `form:"action" binding:"omitempty,oneof=income expense"` // 空-全部, income-仅收入, expense-仅支出
	Cursor int64  `form:"cursor"`                                          // 分页游标 (ID)
	Limit  int    `form:"limit,default=10"`                                // 每页数量
}
