package service

import (
	"Mirsui/models"
	"Mirsui/pkg/llm"
	"Mirsui/pkg/log"
	"Mirsui/pkg/video"
	"Mirsui/types"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IClaimService = (*ClaimService)(nil)

type IClaimService interface {
	ClaimTrack(ctx context.Context, userID uint64, req *types.ClaimTrackRequest) (*types.ClaimTrackResponse, error)
	ListMyClaims(ctx context.Context, userID uint64, cursor int64, limit int) (*types.ListClaimsResponse, error)
	GetTrackClaims(ctx context.Context, trackURI string, limit int) (*types.TrackClaimsResponse, error)
	GetTrackClaimCount(ctx context.Context, trackURI string) (int64, error)
}

type claimStore interface {
	GetByUserTrack(ctx context.Context, userID uint64, trackURI string) (*models.Claim, error)
	InsertWithPosition(ctx context.Context, claim *models.Claim, rate func(position int) float64) error
	CountForTrack(ctx context.Context, trackURI string) (int64, error)
	ListByUser(ctx context.Context, userID uint64, cursor int64, limit int) ([]models.Claim, error)
	ListByTrack(ctx context.Context, trackURI string, limit int) ([]models.Claim, error)
	UpdateEnrichment(ctx context.Context, claimID uint64, updates map[string]any) error
}

type claimCounter interface {
	IncrClaimCount(ctx context.Context, userID uint64, delta int) error
}

type trackCountCache interface {
	GetClaimCount(ctx context.Context, trackURI string) int64
	SetClaimCount(ctx context.Context, trackURI string, count int64)
	Del(ctx context.Context, trackURI string)
}

type ClaimService struct {
	ClaimDAO    claimStore
	StatsDAO    claimCounter
	TrackStats  trackCountCache
	VideoClient *video.Client
	LlmClient   *llm.Client
}

// DiscoverRating 发现评分：冷门程度 + 先手加成
// 第一项奖励认领低流行度曲目，第二项奖励更早的名次（随名次递减）
func DiscoverRating(popularity int, position int) float64 {
	if position < 1 {
		position = 1
	}
	return float64(100-popularity) + 100/float64(position)
}

// ClaimTrack 认领曲目
// 同一用户重复认领为幂等软拒绝，返回原记录；名次在事务内带行锁分配，
// 配合 (track_uri, position) 唯一键，并发下名次保持 1..N 连续不重复
func (s *ClaimService) ClaimTrack(ctx context.Context, userID uint64, req *types.ClaimTrackRequest) (*types.ClaimTrackResponse, error) {
	if req.TrackURI == "" {
		return nil, errors.New("track_uri 不能为空")
	}

	// 已认领过：返回已有名次
	existing, err := s.ClaimDAO.GetByUserTrack(ctx, userID, req.TrackURI)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return alreadyClaimedResp(existing), nil
	}

	rawMeta, _ := json.Marshal(req)

	claim := &models.Claim{
		UserID:     userID,
		TrackURI:   req.TrackURI,
		TrackURL:   req.TrackURL,
		Title:      req.Title,
		Artist:     req.Artist,
		Album:      req.Album,
		ArtworkURL: req.ArtworkURL,
		Popularity: req.Popularity,
		Message:    req.Message,
		RawMeta:    rawMeta,
		ClaimedAt:  time.Now(),
	}

	rate := func(position int) float64 {
		return DiscoverRating(claim.Popularity, position)
	}

	// 唯一键冲突先区分来源：uk_user_track 是同用户并发重复认领，
	// 返回已有记录保持幂等；uk_track_position 是名次竞争，重取名次再试一次
	if err := s.ClaimDAO.InsertWithPosition(ctx, claim, rate); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		if prior, e := s.ClaimDAO.GetByUserTrack(ctx, userID, req.TrackURI); e == nil && prior != nil {
			return alreadyClaimedResp(prior), nil
		}
		if err := s.ClaimDAO.InsertWithPosition(ctx, claim, rate); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				if prior, e := s.ClaimDAO.GetByUserTrack(ctx, userID, req.TrackURI); e == nil && prior != nil {
					return alreadyClaimedResp(prior), nil
				}
			}
			return nil, err
		}
	}

	// 用户维度认领计数入库；曲目维度计数缓存直接失效，下次读取回源重建
	if err := s.StatsDAO.IncrClaimCount(ctx, userID, 1); err != nil {
		log.L.Error("incr user claim count", zap.Uint64("user_id", userID), zap.Error(err))
	}
	s.TrackStats.Del(ctx, claim.TrackURI)

	// 视频链接和发现标签异步回填，失败不影响认领
	if s.VideoClient != nil || s.LlmClient != nil {
		go s.enrichClaim(claim.ID, req)
	}

	return &types.ClaimTrackResponse{
		ClaimID:        claim.ID,
		Position:       claim.Position,
		DiscoverRating: claim.DiscoverRating,
	}, nil
}

func alreadyClaimedResp(claim *models.Claim) *types.ClaimTrackResponse {
	return &types.ClaimTrackResponse{
		ClaimID:        claim.ID,
		Position:       claim.Position,
		DiscoverRating: claim.DiscoverRating,
		AlreadyClaimed: true,
	}
}

func (s *ClaimService) enrichClaim(claimID uint64, req *types.ClaimTrackRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	updates := make(map[string]any)
	if s.VideoClient != nil {
		url, err := s.VideoClient.FindWatchURL(ctx, req.Title, req.Artist)
		if err != nil {
			log.L.Warn("resolve video url", zap.String("title", req.Title), zap.Error(err))
		} else if url != "" {
			updates["video_url"] = url
		}
	}
	if s.LlmClient != nil {
		if tags := s.LlmClient.GenDiscoveryTags(ctx, req.Title, req.Artist, req.Message); len(tags) > 0 {
			updates["tags"] = strings.Join(tags, ",")
		}
	}
	if len(updates) == 0 {
		return
	}

	if err := s.ClaimDAO.UpdateEnrichment(ctx, claimID, updates); err != nil {
		log.L.Warn("backfill claim enrichment", zap.Uint64("claim_id", claimID), zap.Error(err))
	}
}

func (s *ClaimService) ListMyClaims(ctx context.Context, userID uint64, cursor int64, limit int) (*types.ListClaimsResponse, error) {
	if limit <= 0 {
		limit = types.DefaultPageSize
	}
	claims, err := s.ClaimDAO.ListByUser(ctx, userID, cursor, limit+1)
	if err != nil {
		return nil, errors.New("查询认领记录失败")
	}
	resp := &types.ListClaimsResponse{Claims: make([]models.Claim, 0)}
	if len(claims) > limit {
		resp.HasMore = true
		claims = claims[:limit]
		resp.NextCursor = int64(claims[len(claims)-1].ID)
	}
	resp.Claims = claims
	return resp, nil
}

func (s *ClaimService) GetTrackClaims(ctx context.Context, trackURI string, limit int) (*types.TrackClaimsResponse, error) {
	if trackURI == "" {
		return nil, errors.New("track_uri 不能为空")
	}
	if limit <= 0 {
		limit = types.DefaultPageSize
	}
	count, err := s.GetTrackClaimCount(ctx, trackURI)
	if err != nil {
		return nil, err
	}
	claims, err := s.ClaimDAO.ListByTrack(ctx, trackURI, limit)
	if err != nil {
		return nil, errors.New("查询曲目认领记录失败")
	}
	return &types.TrackClaimsResponse{
		TrackURI:   trackURI,
		ClaimCount: count,
		Claims:     claims,
	}, nil
}

// GetTrackClaimCount 曲目认领数，优先读缓存，未命中回源并回填
func (s *ClaimService) GetTrackClaimCount(ctx context.Context, trackURI string) (int64, error) {
	if cached := s.TrackStats.GetClaimCount(ctx, trackURI); cached >= 0 {
		return cached, nil
	}
	count, err := s.ClaimDAO.CountForTrack(ctx, trackURI)
	if err != nil {
		return 0, err
	}
	s.TrackStats.SetClaimCount(ctx, trackURI, count)
	return count, nil
}
