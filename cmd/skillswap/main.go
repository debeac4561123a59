package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"skillswap/config"
	"skillswap/internal/delivery"
	"skillswap/internal/delivery/http"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/delivery/http/router/handler"
	"skillswap/internal/infra/auth"
	"skillswap/internal/infra/jsonstore"
	logs "skillswap/internal/infra/log"
	"skillswap/internal/infra/upload"
	"skillswap/internal/usecase"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// A local .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

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
		jsonstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			jsonstore.NewUserRepository,
			jsonstore.NewRefreshTokenRepository,
			jsonstore.NewSkillRepository,
			jsonstore.NewCategoryRepository,
			jsonstore.NewSubcategoryRepository,
			jsonstore.NewCityRepository,
			jsonstore.NewLikeRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			upload.NewAvatarService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			usecase.NewAuthService,
			usecase.NewUserService,
			usecase.NewSkillService,
			usecase.NewCategoryService,
			usecase.NewSubcategoryService,
			usecase.NewCityService,
			usecase.NewLikeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewSkillHandler,
			handler.NewCategoryHandler,
			handler.NewSubcategoryHandler,
			handler.NewCityHandler,
			handler.NewLikeHandler,
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
