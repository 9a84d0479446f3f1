//go:build wireinject
// +build wireinject

package di

import (
	"charter/config"
	"charter/infras/opensheet"
	"charter/infras/otel"
	"charter/infras/redis"
	catalogHandler "charter/internal/handlers/catalog"
	exportHandler "charter/internal/handlers/export"
	"charter/shared/cache"
	"charter/transport/http"
	"charter/transport/http/middleware"
	"charter/transport/http/router"

	catalogRepository "charter/internal/domains/catalog/repository"
	catalogService "charter/internal/domains/catalog/service"
	exportService "charter/internal/domains/export/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	opensheet.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var exportDomain = wire.NewSet(
	exportService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	exportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	exportHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
