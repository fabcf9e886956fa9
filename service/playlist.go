package service

import (
	"Mirsui/config"
	"Mirsui/dao"
	"Mirsui/models"
	"Mirsui/pkg/utils"
	"Mirsui/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IPlaylistService = (*PlaylistService)(nil)

type IPlaylistService interface {
	CreatePlaylist(ctx context.Context, userID uint64, req *types.CreatePlaylistRequest) (*models.Playlist, error)
	UpdatePlaylist(ctx context.Context, userID, playlistID uint64, req *types.UpdatePlaylistRequest) error
	DeletePlaylist(ctx context.Context, userID, playlistID uint64) error
	ListMyPlaylists(ctx context.Context, userID uint64) ([]models.Playlist, error)
	GetPlaylistDetail(ctx context.Context, userID, playlistID uint64) (*types.PlaylistDetailResponse, error)
	GetSharedPlaylist(ctx context.Context, shareCode string) (*types.PlaylistDetailResponse, error)
	AddTrack(ctx context.Context, userID, playlistID uint64, req *types.AddPlaylistTrackRequest) error
	RemoveTrack(ctx context.Context, userID, playlistID uint64, trackURI string) error
}

type PlaylistService struct {
	Config      *config.Config
	PlaylistDAO *dao.PlaylistDAO
	TrackDAO    *dao.PlaylistTrackDAO
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, userID uint64, req *types.CreatePlaylistRequest) (*models.Playlist, error) {
	playlist := &models.Playlist{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
	}
	if err := s.PlaylistDAO.Create(ctx, playlist); err != nil {
		return nil, errors.New("创建歌单失败")
	}
	return playlist, nil
}

// getOwned 加载歌单并校验归属
func (s *PlaylistService) getOwned(ctx context.Context, userID, playlistID uint64) (*models.Playlist, error) {
	playlist, err := s.PlaylistDAO.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("歌单不存在")
		}
		return nil, errors.New("查询歌单失败")
	}
	if playlist.UserID != userID {
		return nil, errors.New("无权操作该歌单")
	}
	return playlist, nil
}

func (s *PlaylistService) UpdatePlaylist(ctx context.Context, userID, playlistID uint64, req *types.UpdatePlaylistRequest) error {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return err
	}

	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ThumbnailURL != nil {
		updates["thumbnail_url"] = *req.ThumbnailURL
	}
	if len(updates) == 0 {
		return nil
	}
	if err := s.PlaylistDAO.UpdateByWhere(ctx, updates, "id = ?", playlistID); err != nil {
		return errors.New("更新歌单失败")
	}
	return nil
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, userID, playlistID uint64) error {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return err
	}
	if err := s.PlaylistDAO.DeleteCascade(ctx, playlistID); err != nil {
		return errors.New("删除歌单失败")
	}
	return nil
}

func (s *PlaylistService) ListMyPlaylists(ctx context.Context, userID uint64) ([]models.Playlist, error) {
	list, err := s.PlaylistDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.New("查询歌单失败")
	}
	return list, nil
}

func (s *PlaylistService) GetPlaylistDetail(ctx context.Context, userID, playlistID uint64) (*types.PlaylistDetailResponse, error) {
	playlist, err := s.getOwned(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, playlist)
}

// GetSharedPlaylist 通过分享码查看歌单，无需归属校验
func (s *PlaylistService) GetSharedPlaylist(ctx context.Context, shareCode string) (*types.PlaylistDetailResponse, error) {
	id := utils.DecodeHashID(s.Config.App.Salt, shareCode)
	if id <= 0 {
		return nil, errors.New("分享码无效")
	}
	playlist, err := s.PlaylistDAO.GetByID(ctx, uint64(id))
	if err != nil {
		return nil, errors.New("歌单不存在")
	}
	return s.buildDetail(ctx, playlist)
}

func (s *PlaylistService) buildDetail(ctx context.Context, playlist *models.Playlist) (*types.PlaylistDetailResponse, error) {
	tracks, err := s.TrackDAO.ListByPlaylist(ctx, playlist.ID)
	if err != nil {
		return nil, errors.New("查询歌单曲目失败")
	}
	return &types.PlaylistDetailResponse{
		Playlist:  *playlist,
		Tracks:    tracks,
		ShareCode: utils.GenHashID(s.Config.App.Salt, int(playlist.ID)),
	}, nil
}

func (s *PlaylistService) AddTrack(ctx context.Context, userID, playlistID uint64, req *types.AddPlaylistTrackRequest) error {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return err
	}

	exists, err := s.TrackDAO.IsTrackInPlaylist(ctx, playlistID, req.TrackURI)
	if err != nil {
		return errors.New("查询歌单曲目失败")
	}
	if exists {
		return errors.New("曲目已在歌单中")
	}

	track := &models.PlaylistTrack{
		PlaylistID:   playlistID,
		TrackURI:     req.TrackURI,
		Title:        req.Title,
		Artist:       req.Artist,
		Album:        req.Album,
		ThumbnailURL: req.ThumbnailURL,
		DurationMs:   req.DurationMs,
	}
	if err := s.TrackDAO.AddTrack(ctx, track); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.New("曲目已在歌单中")
		}
		return errors.New("添加曲目失败")
	}
	return nil
}

func (s *PlaylistService) RemoveTrack(ctx context.Context, userID, playlistID uint64, trackURI string) error {
	if _, err := s.getOwned(ctx, userID, playlistID); err != nil {
		return err
	}
	if err := s.TrackDAO.RemoveTrack(ctx, playlistID, trackURI); err != nil {
		return errors.New("移除曲目失败")
	}
	return nil
}
