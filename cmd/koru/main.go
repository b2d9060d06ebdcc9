package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DiegoG0477/koru-api/config"
	"github.com/DiegoG0477/koru-api/internal/delivery"
	"github.com/DiegoG0477/koru-api/internal/delivery/http"
	"github.com/DiegoG0477/koru-api/internal/delivery/http/middleware"
	"github.com/DiegoG0477/koru-api/internal/delivery/http/router/handler"
	"github.com/DiegoG0477/koru-api/internal/infra/auth"
	logs "github.com/DiegoG0477/koru-api/internal/infra/log"
	"github.com/DiegoG0477/koru-api/internal/infra/persistence/mysql"
	"github.com/DiegoG0477/koru-api/internal/infra/storage"
	"github.com/DiegoG0477/koru-api/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mysql.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mysql.NewBusinessRepository,
			mysql.NewUserRepository,
			mysql.NewAuthRepository,
			mysql.NewLocationRepository,
			mysql.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewFirebaseStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewBusinessService,
			impl.NewUserService,
			impl.NewLocationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBusinessHandler,
			handler.NewUserHandler,
			handler.NewLocationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
