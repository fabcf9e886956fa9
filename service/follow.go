package service

import (
	"Mirsui/dao"
	"Mirsui/types"
	"context"
	"errors"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followeeID uint64) error
	Unfollow(ctx context.Context, followerID, followeeID uint64) error
	GetFollowingList(ctx context.Context, userID uint64, page, pageSize int) (*types.GetFollowingListResponse, error)
	IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error)
}

type FollowService struct {
	FollowDAO *dao.UserFollowDAO
	StatsDAO  *dao.UserStatsDAO
	UsersDAO  *dao.Users
}

// Follow 关注用户，重复关注视为成功
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint64) error {
	if followerID == followeeID {
		return errors.New("不能关注自己")
	}
	if _, err := s.UsersDAO.FindById(ctx, followeeID); err != nil {
		return errors.New("用户不存在")
	}

	following, err := s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return errors.New("查询关注状态失败")
	}
	if following {
		return nil
	}

	if err := s.FollowDAO.SetStatus(ctx, followerID, followeeID, 1); err != nil {
		return errors.New("关注失败")
	}
	// 计数更新失败不影响关注关系本身
	_ = s.StatsDAO.IncrFollowingCount(ctx, followerID, 1)
	_ = s.StatsDAO.IncrFollowerCount(ctx, followeeID, 1)
	return nil
}

// Unfollow 取消关注，未关注时视为成功
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uint64) error {
	if followerID == followeeID {
		return errors.New("不能取关自己")
	}

	following, err := s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return errors.New("查询关注状态失败")
	}
	if !following {
		return nil
	}

	if err := s.FollowDAO.SetStatus(ctx, followerID, followeeID, 0); err != nil {
		return errors.New("取关失败")
	}
	_ = s.StatsDAO.IncrFollowingCount(ctx, followerID, -1)
	_ = s.StatsDAO.IncrFollowerCount(ctx, followeeID, -1)
	return nil
}

// GetFollowingList 关注列表（分页），并标注互关状态
func (s *FollowService) GetFollowingList(ctx context.Context, userID uint64, page, pageSize int) (*types.GetFollowingListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}

	list, total, err := s.FollowDAO.GetFollowingList(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, errors.New("查询关注列表失败")
	}

	for i := range list {
		mutual, err := s.FollowDAO.IsFollowing(ctx, list[i].UserID, userID)
		if err != nil {
			continue
		}
		list[i].IsMutual = mutual
	}

	return &types.GetFollowingListResponse{
		Following: list,
		Total:     total,
		HasMore:   int64(page*pageSize) < total,
	}, nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
}
