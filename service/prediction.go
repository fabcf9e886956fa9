package service

import (
	"Mirsui/dao"
	"Mirsui/models"
	"Mirsui/pkg/snowflake"
	"Mirsui/types"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// 下注区间与预言窗口
const (
	MinPointsBet = 10
	MaxPointsBet = 1000

	MaxPredictionDays = 365
)

var _ IPredictionService = (*PredictionService)(nil)

type IPredictionService interface {
	CreatePrediction(ctx context.Context, userID uint64, req *types.CreatePredictionRequest) (*types.CreatePredictionResponse, error)
	ListMyPredictions(ctx context.Context, userID uint64, status string, cursor int64, limit int) (*types.ListPredictionsResponse, error)
	GetProphetStats(ctx context.Context, userID uint64) (*types.Prophet, error)
}

type PredictionService struct {
	DB            *gorm.DB
	PredictionDAO *dao.PredictionDAO
	PointService  IPointService
}

// ClampBet 下注积分收敛到配置区间
func ClampBet(bet int64) int64 {
	if bet < MinPointsBet {
		return MinPointsBet
	}
	if bet > MaxPointsBet {
		return MaxPointsBet
	}
	return bet
}

// ValidatePredictionDate 目标日期必须严格晚于当天且不超过365天
func ValidatePredictionDate(date, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	target := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if !target.After(today) {
		return errors.New("预言日期必须晚于今天")
	}
	if target.After(today.AddDate(0, 0, MaxPredictionDays)) {
		return errors.New("预言日期不能超过365天")
	}
	return nil
}

// CreatePrediction 创建预言：校验通过后扣除下注积分并落库 pending 记录
func (s *PredictionService) CreatePrediction(ctx context.Context, userID uint64, req *types.CreatePredictionRequest) (*types.CreatePredictionResponse, error) {
	if req.TrackURI == "" {
		return nil, errors.New("请先选择曲目")
	}

	targetDate, err := time.ParseInLocation("2006-01-02", req.PredictedViralDate, time.Local)
	if err != nil {
		return nil, errors.New("预言日期格式错误")
	}
	if err := ValidatePredictionDate(targetDate, time.Now()); err != nil {
		return nil, err
	}

	bet := ClampBet(req.PointsBet)
	balance, err := s.PointService.GetBalance(ctx, userID)
	if err != nil {
		return nil, errors.New("查询积分余额失败")
	}
	if bet > balance {
		return nil, errors.New("积分余额不足，无法下注")
	}

	sourceID := strconv.FormatInt(snowflake.GenID(), 10)
	prediction := &models.Prediction{
		UserID:             userID,
		TrackURI:           req.TrackURI,
		Title:              req.Title,
		Artist:             req.Artist,
		Album:              req.Album,
		ArtworkURL:         req.ArtworkURL,
		CurrentPopularity:  req.CurrentPopularity,
		TargetPopularity:   req.TargetPopularity,
		PredictedViralDate: targetDate,
		PointsBet:          bet,
		Confidence:         req.Confidence,
		PredictionType:     req.PredictionType,
		Status:             models.PredictionStatusPending,
		SourceID:           sourceID,
	}

	if err := s.DB.WithContext(ctx).Create(prediction).Error; err != nil {
		return nil, errors.New("创建预言失败")
	}

	// 扣除下注积分；失败则回收预言记录，保证无副作用
	account, err := s.PointService.ConsumePoints(ctx, userID, bet,
		models.TypePredictionBet, sourceID,
		fmt.Sprintf("预言下注：%s", req.Title))
	if err != nil {
		_ = s.DB.WithContext(ctx).Delete(&models.Prediction{}, prediction.ID).Error
		return nil, err
	}

	return &types.CreatePredictionResponse{
		Prediction: *prediction,
		Balance:    account.Balance,
	}, nil
}

func (s *PredictionService) ListMyPredictions(ctx context.Context, userID uint64, status string, cursor int64, limit int) (*types.ListPredictionsResponse, error) {
	if limit <= 0 {
		limit = types.DefaultPageSize
	}
	items, err := s.PredictionDAO.ListByUser(ctx, userID, status, cursor, limit+1)
	if err != nil {
		return nil, errors.New("查询预言记录失败")
	}
	resp := &types.ListPredictionsResponse{Predictions: make([]models.Prediction, 0)}
	if len(items) > limit {
		resp.HasMore = true
		items = items[:limit]
		resp.NextCursor = int64(items[len(items)-1].ID)
	}
	resp.Predictions = items
	return resp, nil
}

// GetProphetStats 预言家统计，无预言时各项为0
func (s *PredictionService) GetProphetStats(ctx context.Context, userID uint64) (*types.Prophet, error) {
	total, correct, totalBet, totalGained, err := s.PredictionDAO.GetStats(ctx, userID)
	if err != nil {
		return nil, errors.New("查询预言统计失败")
	}
	return &types.Prophet{
		TotalPredictions:   total,
		CorrectPredictions: correct,
		Accuracy:           ProphetAccuracy(correct, total),
		NetPoints:          totalGained - totalBet,
	}, nil
}

// ProphetAccuracy 命中率（0-100），无预言时为0
func ProphetAccuracy(correct, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
