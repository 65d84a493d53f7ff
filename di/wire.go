//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"guesthouse/config"
	"guesthouse/infras/otel"
	"guesthouse/infras/redis"
	"guesthouse/infras/sqlite"
	bookingRepository "guesthouse/internal/domains/booking/repository"
	bookingService "guesthouse/internal/domains/booking/service"
	roomRepository "guesthouse/internal/domains/room/repository"
	roomService "guesthouse/internal/domains/room/service"
	bookingHandler "guesthouse/internal/handlers/booking"
	roomHandler "guesthouse/internal/handlers/room"
	"guesthouse/shared/cache"
	"guesthouse/transport/http"
	"guesthouse/transport/http/middleware"
	"guesthouse/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
