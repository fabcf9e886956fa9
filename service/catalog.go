package service

import (
	"Mirsui/pkg/catalog"
	"Mirsui/types"
	"context"
	"errors"
)

var _ ICatalogService = (*CatalogService)(nil)

type ICatalogService interface {
	SearchTracks(ctx context.Context, query string, limit int) (*types.SearchTracksResponse, error)
	GetTrack(ctx context.Context, trackURI string) (*catalog.Track, error)
}

type CatalogService struct {
	Client *catalog.Client
}

func (s *CatalogService) SearchTracks(ctx context.Context, query string, limit int) (*types.SearchTracksResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = types.DefaultPageSize
	}
	tracks, err := s.Client.SearchTracks(ctx, query, limit)
	if err != nil {
		return nil, errors.New("曲库搜索失败")
	}
	return &types.SearchTracksResponse{Tracks: tracks}, nil
}

func (s *CatalogService) GetTrack(ctx context.Context, trackURI string) (*catalog.Track, error) {
	track, err := s.Client.GetTrack(ctx, trackURI)
	if err != nil {
		if errors.Is(err, catalog.ErrTrackNotFound) {
			return nil, errors.New("曲目不存在")
		}
		return nil, errors.New("查询曲目失败")
	}
	return track, nil
}
