//go:build wireinject
// +build wireinject

package main

import (
	"Donghwa/config"
	"Donghwa/dao"
	"Donghwa/handler"
	"Donghwa/middleware"
	"Donghwa/pkg/client"
	"Donghwa/pkg/database"
	"Donghwa/pkg/server"
	"Donghwa/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		middleware.NewRateLimiter,
		server.NewGinEngine,

		wire.Struct(new(handler.Usage), "*"),
		wire.Struct(new(handler.FairyTale), "*"),
		wire.Struct(new(handler.Admin), "*"),

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
