package service

import (
	"Mirsui/dao"
	"Mirsui/models"
	"Mirsui/pkg/catalog"
	"Mirsui/pkg/log"
	"Mirsui/types"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// 结算参数
const (
	DecreaseBonusRate = 1.3                // 看跌命中的额外奖励系数
	ExpiryGrace       = 7 * 24 * time.Hour // 流行度不可查询时的宽限期
	settleBatchSize   = 200
)

// Outcome 单条预言的结算裁决
type Outcome struct {
	Status          string
	PointsGained    int64 // 净收益（won）或退还金额（expired）
	Credit          int64 // 应入账积分（won = 本金+收益，expired = 半额本金）
	FinalPopularity *int
	PartialReturn   bool
	Skip            bool // 暂不结算，等待下次扫描
}

// SettleOutcome 纯结算逻辑：根据最终流行度判定输赢
//   - 看涨且流行度上涨 → won，收益与涨幅成正比
//   - 看跌且流行度下跌 → won，收益额外上浮30%
//   - 其余情况 → lost，本金没收
//
// resolved 为 false 表示流行度查询失败：宽限期内跳过，超期按 expired
// 退还半额本金。
func SettleOutcome(p *models.Prediction, finalPopularity int, resolved bool, now time.Time) Outcome {
	if !resolved {
		if now.Before(p.PredictedViralDate.Add(ExpiryGrace)) {
			return Outcome{Skip: true}
		}
		refund := p.PointsBet / 2
		return Outcome{
			Status:        models.PredictionStatusExpired,
			PointsGained:  refund,
			Credit:        refund,
			PartialReturn: true,
		}
	}

	final := finalPopularity
	delta := final - p.CurrentPopularity

	won := false
	var gain int64
	switch p.PredictionType {
	case models.PredictionTypeIncrease:
		if delta > 0 {
			won = true
			gain = int64(math.Round(float64(p.PointsBet) * float64(delta) / 100))
		}
	case models.PredictionTypeDecrease:
		if delta < 0 {
			won = true
			gain = int64(math.Round(float64(p.PointsBet) * float64(-delta) / 100 * DecreaseBonusRate))
		}
	}

	if !won {
		return Outcome{
			Status:          models.PredictionStatusLost,
			FinalPopularity: &final,
		}
	}

	if gain < 1 {
		gain = 1
	}
	return Outcome{
		Status:          models.PredictionStatusWon,
		PointsGained:    gain,
		Credit:          p.PointsBet + gain,
		FinalPopularity: &final,
	}
}

var _ ISettlementService = (*SettlementService)(nil)

type ISettlementService interface {
	SettleDue(ctx context.Context) ([]types.SettlementResult, error)
}

type SettlementService struct {
	PredictionDAO *dao.PredictionDAO
	PointService  IPointService
	CatalogClient *catalog.Client
}

// SettleDue 扫描到期的 pending 预言并逐条结算
func (s *SettlementService) SettleDue(ctx context.Context) ([]types.SettlementResult, error) {
	now := time.Now()
	due, err := s.PredictionDAO.ListDuePending(ctx, now, settleBatchSize)
	if err != nil {
		return nil, err
	}

	results := make([]types.SettlementResult, 0, len(due))
	for i := range due {
		p := &due[i]
		result, err := s.settleOne(ctx, p, now)
		if err != nil {
			log.L.Error("settle prediction error",
				zap.Uint64("prediction_id", p.ID), zap.Error(err))
			continue
		}
		if result != nil {
			results = append(results, *result)
		}
	}
	return results, nil
}

func (s *SettlementService) settleOne(ctx context.Context, p *models.Prediction, now time.Time) (*types.SettlementResult, error) {
	final, err := s.CatalogClient.GetPopularity(ctx, p.TrackURI)
	resolved := err == nil

	outcome := SettleOutcome(p, final, resolved, now)
	if outcome.Skip {
		return nil, nil
	}

	settledAt := now
	updates := map[string]any{
		"status":         outcome.Status,
		"points_gained":  outcome.PointsGained,
		"partial_return": outcome.PartialReturn,
		"settled_at":     settledAt,
	}
	if outcome.FinalPopularity != nil {
		updates["final_popularity"] = *outcome.FinalPopularity
	}

	// 状态迁移带 pending 守卫，任务重叠时只有一次生效
	ok, err := s.PredictionDAO.MarkSettled(ctx, s.PredictionDAO.Db, p.ID, updates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	// 入账按 source_id 幂等，重复执行不会重复发放
	if outcome.Credit > 0 {
		changeType := models.TypePredictionPayout
		desc := fmt.Sprintf("预言结算：%s", p.Title)
		if outcome.Status == models.PredictionStatusExpired {
			changeType = models.TypePredictionRefund
			desc = fmt.Sprintf("预言超期退还：%s", p.Title)
		}
		if _, err := s.PointService.RewardPoints(ctx, p.UserID, outcome.Credit,
			changeType, "settle:"+p.SourceID, desc); err != nil {
			return nil, err
		}
	}

	finalPop := 0
	if outcome.FinalPopularity != nil {
		finalPop = *outcome.FinalPopularity
	}
	return &types.SettlementResult{
		PredictionID:    p.ID,
		Status:          outcome.Status,
		PointsGained:    outcome.PointsGained,
		FinalPopularity: finalPop,
		SettledAt:       settledAt,
	}, nil
}

// SettlementScheduler 定时触发预言结算
type SettlementScheduler struct {
	scheduler gocron.Scheduler
	service   ISettlementService
}

func NewSettlementScheduler(svc ISettlementService) *SettlementScheduler {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.L.Fatal("create scheduler error", zap.Error(err))
	}
	return &SettlementScheduler{scheduler: scheduler, service: svc}
}

func (s *SettlementScheduler) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Second)
			defer cancel()
			results, err := s.service.SettleDue(ctx)
			if err != nil {
				log.L.Error("settlement job error", zap.Error(err))
				return
			}
			if len(results) > 0 {
				log.L.Info("settlement job done", zap.Int("settled", len(results)))
			}
		}),
	)
	if err != nil {
		return err
	}
	s.scheduler.Start()
	log.L.Info("settlement scheduler started")
	return nil
}

func (s *SettlementScheduler) Stop() error {
	return s.scheduler.Shutdown()
}
