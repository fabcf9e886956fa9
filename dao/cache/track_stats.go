package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 曲目认领计数缓存过期时间 - 24小时
const trackStatsExpireAt = 24 * time.Hour

type TrackStatsStorage struct {
	redis *redis.Client
}

func NewTrackStatsStorage(rds *redis.Client) *TrackStatsStorage {
	return &TrackStatsStorage{rds}
}

// SetClaimCount 写入曲目认领数
// @params trackURI 曲目标识
func (t *TrackStatsStorage) SetClaimCount(ctx context.Context, trackURI string, count int64) {
	pipe := t.redis.Pipeline()
	name := t.name(trackURI)
	pipe.Set(ctx, name, count, trackStatsExpireAt)
	_, _ = pipe.Exec(ctx)
}

// Del 失效曲目认领数缓存，下次读取回源重建
// INCR 会把过期后缺失的键从 1 重新累计，与库内计数脱节，所以写路径只做失效
// @params trackURI 曲目标识
func (t *TrackStatsStorage) Del(ctx context.Context, trackURI string) {
	t.redis.Del(ctx, t.name(trackURI))
}

// GetClaimCount 读取曲目认领数，未命中返回 -1
// @params trackURI 曲目标识
func (t *TrackStatsStorage) GetClaimCount(ctx context.Context, trackURI string) int64 {
	i, err := t.redis.Get(ctx, t.name(trackURI)).Int64()
	if err != nil {
		return -1
	}
	return i
}

// 认领数缓存
// mirsui:track:claims:<trackURI>
func (t *TrackStatsStorage) name(trackURI string) string {
	return fmt.Sprintf("mirsui:track:claims:%s", trackURI)
}
