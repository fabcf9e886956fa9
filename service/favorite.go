package service

import (
	"Mirsui/dao"
	"Mirsui/models"
	"Mirsui/types"
	"context"
	"errors"
)

var _ IFavoriteService = (*FavoriteService)(nil)

type IFavoriteService interface {
	ToggleFavorite(ctx context.Context, userID uint64, req *types.ToggleFavoriteRequest) (bool, error)
	ListFavorites(ctx context.Context, userID uint64, cursor int64, limit int) (*types.ListFavoritesResponse, error)
	IsFavorited(ctx context.Context, userID uint64, trackURI string) (bool, error)
}

type FavoriteService struct {
	FavoriteDAO *dao.FavoriteDAO
}

// ToggleFavorite 收藏/取消收藏翻转，返回翻转后是否处于收藏状态
func (s *FavoriteService) ToggleFavorite(ctx context.Context, userID uint64, req *types.ToggleFavoriteRequest) (bool, error) {
	fav, err := s.FavoriteDAO.GetByUserTrack(ctx, userID, req.TrackURI)
	if err != nil {
		return false, errors.New("查询收藏状态失败")
	}

	if fav == nil {
		fav = &models.Favorite{
			UserID:     userID,
			TrackURI:   req.TrackURI,
			Title:      req.Title,
			Artist:     req.Artist,
			Album:      req.Album,
			ArtworkURL: req.ArtworkURL,
			Status:     1,
		}
		if err := s.FavoriteDAO.Create(ctx, fav); err != nil {
			return false, errors.New("收藏失败")
		}
		return true, nil
	}

	next := uint8(1)
	if fav.Status == 1 {
		next = 0
	}
	if err := s.FavoriteDAO.SetStatus(ctx, fav, next); err != nil {
		return false, errors.New("更新收藏状态失败")
	}
	return next == 1, nil
}

func (s *FavoriteService) ListFavorites(ctx context.Context, userID uint64, cursor int64, limit int) (*types.ListFavoritesResponse, error) {
	if limit <= 0 {
		limit = types.DefaultPageSize
	}
	items, err := s.FavoriteDAO.ListByUser(ctx, userID, cursor, limit+1)
	if err != nil {
		return nil, errors.New("查询收藏列表失败")
	}
	resp := &types.ListFavoritesResponse{Favorites: make([]models.Favorite, 0)}
	if len(items) > limit {
		resp.HasMore = true
		items = items[:limit]
		resp.NextCursor = int64(items[len(items)-1].ID)
	}
	resp.Favorites = items
	return resp, nil
}

func (s *FavoriteService) IsFavorited(ctx context.Context, userID uint64, trackURI string) (bool, error) {
	return s.FavoriteDAO.IsFavorited(ctx, userID, trackURI)
}
