package service

import (
	"Mirsui/models"
	"Mirsui/types"
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

type fakeClaimStore struct {
	existing   []*models.Claim // GetByUserTrack 依次返回的结果
	insertErrs []error         // InsertWithPosition 依次返回的错误
	count      int64

	gets    int
	inserts int
}

func (f *fakeClaimStore) GetByUserTrack(ctx context.Context, userID uint64, trackURI string) (*models.Claim, error) {
	f.gets++
	if len(f.existing) == 0 {
		return nil, nil
	}
	item := f.existing[0]
	f.existing = f.existing[1:]
	return item, nil
}

func (f *fakeClaimStore) InsertWithPosition(ctx context.Context, claim *models.Claim, rate func(position int) float64) error {
	f.inserts++
	if len(f.insertErrs) > 0 {
		err := f.insertErrs[0]
		f.insertErrs = f.insertErrs[1:]
		if err != nil {
			return err
		}
	}
	f.count++
	claim.ID = uint64(f.count)
	claim.Position = int(f.count)
	claim.DiscoverRating = rate(claim.Position)
	return nil
}

func (f *fakeClaimStore) CountForTrack(ctx context.Context, trackURI string) (int64, error) {
	return f.count, nil
}

func (f *fakeClaimStore) ListByUser(ctx context.Context, userID uint64, cursor int64, limit int) ([]models.Claim, error) {
	return nil, nil
}

func (f *fakeClaimStore) ListByTrack(ctx context.Context, trackURI string, limit int) ([]models.Claim, error) {
	return nil, nil
}

func (f *fakeClaimStore) UpdateEnrichment(ctx context.Context, claimID uint64, updates map[string]any) error {
	return nil
}

type fakeClaimCounter struct {
	incrs int
}

func (f *fakeClaimCounter) IncrClaimCount(ctx context.Context, userID uint64, delta int) error {
	f.incrs++
	return nil
}

type fakeTrackCountCache struct {
	counts map[string]int64
	sets   int
	dels   int
}

func newFakeTrackCountCache() *fakeTrackCountCache {
	return &fakeTrackCountCache{counts: make(map[string]int64)}
}

func (f *fakeTrackCountCache) GetClaimCount(ctx context.Context, trackURI string) int64 {
	if v, ok := f.counts[trackURI]; ok {
		return v
	}
	return -1
}

func (f *fakeTrackCountCache) SetClaimCount(ctx context.Context, trackURI string, count int64) {
	f.counts[trackURI] = count
	f.sets++
}

func (f *fakeTrackCountCache) Del(ctx context.Context, trackURI string) {
	delete(f.counts, trackURI)
	f.dels++
}

func newClaimService(store *fakeClaimStore, counter *fakeClaimCounter, cache *fakeTrackCountCache) *ClaimService {
	return &ClaimService{
		ClaimDAO:   store,
		StatsDAO:   counter,
		TrackStats: cache,
	}
}

// 同一用户并发重复认领：插入撞 uk_user_track 后应复查并返回已有记录，而不是报错
func TestClaimTrackConcurrentSameUser(t *testing.T) {
	store := &fakeClaimStore{
		// 预检查未命中，冲突后复查命中并发写入的记录
		existing:   []*models.Claim{nil, {ID: 7, Position: 2, DiscoverRating: 110}},
		insertErrs: []error{gorm.ErrDuplicatedKey},
	}
	cache := newFakeTrackCountCache()
	svc := newClaimService(store, &fakeClaimCounter{}, cache)

	resp, err := svc.ClaimTrack(context.Background(), 1, &types.ClaimTrackRequest{TrackURI: "spotify:track:x"})
	if err != nil {
		t.Fatalf("ClaimTrack: %v", err)
	}
	if !resp.AlreadyClaimed {
		t.Error("expected already-claimed outcome")
	}
	if resp.ClaimID != 7 || resp.Position != 2 {
		t.Errorf("expected prior record (id=7, position=2), got id=%d position=%d", resp.ClaimID, resp.Position)
	}
	if store.inserts != 1 {
		t.Errorf("expected no retry after user-level conflict, inserts = %d", store.inserts)
	}
	if cache.dels != 0 {
		t.Error("repeat claim must not touch the track count cache")
	}
}

// 名次竞争冲突：复查无同用户记录时重取名次再试一次
func TestClaimTrackPositionConflictRetry(t *testing.T) {
	store := &fakeClaimStore{
		count:      4,
		insertErrs: []error{gorm.ErrDuplicatedKey, nil},
	}
	cache := newFakeTrackCountCache()
	cache.counts["spotify:track:x"] = 4
	counter := &fakeClaimCounter{}
	svc := newClaimService(store, counter, cache)

	resp, err := svc.ClaimTrack(context.Background(), 1, &types.ClaimTrackRequest{TrackURI: "spotify:track:x", Popularity: 40})
	if err != nil {
		t.Fatalf("ClaimTrack: %v", err)
	}
	if resp.AlreadyClaimed {
		t.Error("fresh claim must not report already-claimed")
	}
	if store.inserts != 2 {
		t.Errorf("expected one retry, inserts = %d", store.inserts)
	}
	if resp.Position != 5 {
		t.Errorf("position = %d, want 5", resp.Position)
	}
	if counter.incrs != 1 {
		t.Errorf("user claim counter incrs = %d, want 1", counter.incrs)
	}
	if cache.dels != 1 {
		t.Errorf("track count cache dels = %d, want 1", cache.dels)
	}
}

// 非唯一键错误不重试，原样返回
func TestClaimTrackInsertErrorNoRetry(t *testing.T) {
	dbErr := errors.New("connection refused")
	store := &fakeClaimStore{insertErrs: []error{dbErr}}
	svc := newClaimService(store, &fakeClaimCounter{}, newFakeTrackCountCache())

	_, err := svc.ClaimTrack(context.Background(), 1, &types.ClaimTrackRequest{TrackURI: "spotify:track:x"})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected the insert error, got %v", err)
	}
	if store.inserts != 1 {
		t.Errorf("expected no retry, inserts = %d", store.inserts)
	}
}

// 缓存命中直接返回，未命中回源并回填
func TestGetTrackClaimCount(t *testing.T) {
	store := &fakeClaimStore{count: 6}
	cache := newFakeTrackCountCache()
	svc := newClaimService(store, &fakeClaimCounter{}, cache)

	count, err := svc.GetTrackClaimCount(context.Background(), "spotify:track:x")
	if err != nil {
		t.Fatalf("GetTrackClaimCount: %v", err)
	}
	if count != 6 {
		t.Errorf("count = %d, want 6", count)
	}
	if cache.sets != 1 || cache.counts["spotify:track:x"] != 6 {
		t.Error("expected the miss to seed the cache from the database")
	}

	store.count = 99 // 缓存命中时不应回源
	count, err = svc.GetTrackClaimCount(context.Background(), "spotify:track:x")
	if err != nil {
		t.Fatalf("GetTrackClaimCount: %v", err)
	}
	if count != 6 {
		t.Errorf("cached count = %d, want 6", count)
	}
}

// 认领后曲目计数缓存失效，下一次读取回源拿到新值
func TestTrackClaimCountRefreshAfterClaim(t *testing.T) {
	store := &fakeClaimStore{count: 5}
	cache := newFakeTrackCountCache()
	svc := newClaimService(store, &fakeClaimCounter{}, cache)

	count, _ := svc.GetTrackClaimCount(context.Background(), "spotify:track:x")
	if count != 5 {
		t.Fatalf("count = %d, want 5", count)
	}

	if _, err := svc.ClaimTrack(context.Background(), 9, &types.ClaimTrackRequest{TrackURI: "spotify:track:x"}); err != nil {
		t.Fatalf("ClaimTrack: %v", err)
	}

	count, _ = svc.GetTrackClaimCount(context.Background(), "spotify:track:x")
	if count != 6 {
		t.Errorf("count after claim = %d, want 6", count)
	}
}
