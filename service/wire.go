package service

import (
	"Mirsui/dao"
	"Mirsui/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(ClaimService), "*"),
	wire.Bind(new(IClaimService), new(*ClaimService)),
	wire.Bind(new(claimStore), new(*dao.ClaimDAO)),
	wire.Bind(new(claimCounter), new(*dao.UserStatsDAO)),
	wire.Bind(new(trackCountCache), new(*cache.TrackStatsStorage)),

	wire.Struct(new(PredictionService), "*"),
	wire.Bind(new(IPredictionService), new(*PredictionService)),

	wire.Struct(new(PointService), "*"),
	wire.Bind(new(IPointService), new(*PointService)),

	wire.Struct(new(PlaylistService), "*"),
	wire.Bind(new(IPlaylistService), new(*PlaylistService)),

	wire.Struct(new(FavoriteService), "*"),
	wire.Bind(new(IFavoriteService), new(*FavoriteService)),

	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	wire.Struct(new(SettlementService), "*"),
	wire.Bind(new(ISettlementService), new(*SettlementService)),

	wire.Struct(new(OssService), "*"),
	wire.Bind(new(IOssService), new(*OssService)),

	NewSettlementScheduler,
)
