//go:build wireinject
// +build wireinject

package main

import (
	"Mirsui/config"
	"Mirsui/dao"
	"Mirsui/dao/cache"
	"Mirsui/handler"
	"Mirsui/pkg/catalog"
	"Mirsui/pkg/client"
	"Mirsui/pkg/database"
	"Mirsui/pkg/llm"
	"Mirsui/pkg/oss"
	"Mirsui/pkg/server"
	"Mirsui/pkg/video"
	"Mirsui/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideCatalogConfig,
		config.ProvideVideoConfig,
		config.ProvideLlmConfig,
		oss.GetOssClient,
		catalog.NewClient,
		video.NewClient,
		llm.NewClient,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Claim), "*"),
		wire.Struct(new(handler.Playlist), "*"),
		wire.Struct(new(handler.Prediction), "*"),
		wire.Struct(new(handler.Point), "*"),
		wire.Struct(new(handler.Favorite), "*"),
		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Upload), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
