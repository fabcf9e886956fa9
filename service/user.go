package service

import (
	"Mirsui/config"
	"Mirsui/dao"
	"Mirsui/models"
	"Mirsui/pkg/encrypt"
	"Mirsui/pkg/jwt"
	"Mirsui/pkg/log"
	"Mirsui/pkg/snowflake"
	"Mirsui/types"
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SignupBonusPoints 注册赠送积分
const SignupBonusPoints = 500

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error)
	GetProfile(ctx context.Context, userID uint64) (*types.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error
}

type UserService struct {
	Config            *config.Config
	UsersDAO          *dao.Users
	StatsDAO          *dao.UserStatsDAO
	PointService      IPointService
	PredictionService IPredictionService
}

// Register 注册新用户并发放初始积分
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	if s.UsersDAO.IsUsernameExist(ctx, req.Username) {
		return nil, errors.New("用户名已被占用")
	}

	hashed, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, errors.New("注册失败")
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = req.Username
	}
	user := &models.Users{
		Username: req.Username,
		Password: hashed,
		Nickname: nickname,
	}
	if err := s.UsersDAO.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("用户名已被占用")
		}
		return nil, errors.New("注册失败")
	}

	// 注册奖励入账失败不拦截注册，留日志人工补发
	sourceID := "signup:" + strconv.FormatInt(snowflake.GenID(), 10)
	if _, err := s.PointService.RewardPoints(ctx, user.ID, SignupBonusPoints,
		models.TypeSignupBonus, sourceID, "注册奖励"); err != nil {
		log.L.Error("grant signup bonus error",
			zap.Uint64("user_id", user.ID), zap.Error(err))
	}

	token, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}
	return &types.AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Token:    *token,
	}, nil
}

// Login 密码登录
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	user, err := s.UsersDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.New("用户名或密码错误")
	}
	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, errors.New("用户名或密码错误")
	}

	token, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}
	return &types.AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Token:    *token,
	}, nil
}

// RefreshToken 用刷新令牌换取新的访问令牌
// 刷新令牌剩余有效期不足一天时才轮换，否则沿用原令牌
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), "refresh", refreshToken)
	if err != nil {
		return nil, errors.New("刷新令牌无效")
	}
	if _, err := s.UsersDAO.FindById(ctx, claims.UserID); err != nil {
		return nil, errors.New("用户不存在")
	}
	resp, err := s.issueTokens(claims.UserID)
	if err != nil {
		return nil, err
	}
	if !jwt.ShouldRotateRefreshToken(claims, 24*time.Hour) {
		resp.RefreshToken = refreshToken
	}
	return resp, nil
}

func (s *UserService) issueTokens(userID uint64) (*types.TokenResponse, error) {
	secret := []byte(s.Config.Jwt.Secret)
	accessExpire := time.Duration(s.Config.Jwt.AccessExpire) * time.Second
	access, err := jwt.GenerateToken(secret, userID, "access", accessExpire)
	if err != nil {
		return nil, errors.New("生成令牌失败")
	}
	refresh, err := jwt.GenerateToken(secret, userID, "refresh",
		time.Duration(s.Config.Jwt.RefreshExpire)*time.Second)
	if err != nil {
		return nil, errors.New("生成令牌失败")
	}
	return &types.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    s.Config.Jwt.AccessExpire,
	}, nil
}

// GetProfile 个人主页聚合：基础资料 + 关注/认领计数 + 积分 + 预言家统计
func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*types.ProfileResponse, error) {
	user, err := s.UsersDAO.FindById(ctx, userID)
	if err != nil {
		return nil, errors.New("用户不存在")
	}

	resp := &types.ProfileResponse{
		UserID:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Avatar:   user.Avatar,
		Motto:    user.Motto,
	}

	if stats, err := s.StatsDAO.GetByUserID(ctx, userID); err == nil && stats != nil {
		resp.FollowerCount = int64(stats.FollowerCount)
		resp.FollowingCount = int64(stats.FollowingCount)
		resp.ClaimCount = int64(stats.ClaimCount)
	}
	if balance, err := s.PointService.GetBalance(ctx, userID); err == nil {
		resp.PointsBalance = balance
	}
	if prophet, err := s.PredictionService.GetProphetStats(ctx, userID); err == nil {
		resp.ProphetStats = *prophet
	}
	return resp, nil
}

// UpdateProfile 仅更新请求里出现的字段
func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error {
	updates := make(map[string]interface{})
	if req.Nickname != nil {
		updates["nickname"] = *req.Nickname
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Motto != nil {
		updates["motto"] = *req.Motto
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if len(updates) == 0 {
		return nil
	}
	if err := s.UsersDAO.Update(ctx, userID, updates); err != nil {
		return errors.New("更新资料失败")
	}
	return nil
}
