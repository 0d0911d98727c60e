// Command seed creates the initial CMS author account. It is idempotent:
// when any account already exists it does nothing, so it is safe to run on
// every deploy.
package main

import (
	"context"
	"log/slog"
	"os"

	"warta/config"
	"warta/internal/domain/entity"
	"warta/internal/domain/repository"
	"warta/internal/domain/service"
	"warta/internal/infra/auth"
	logs "warta/internal/infra/log"
	"warta/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

type seedParams struct {
	fx.In
	fx.Shutdowner

	Logger   *slog.Logger
	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewUserRepository,
			auth.NewBcryptHasher,
		),
		fx.Invoke(
			seedAdmin,
		),
	).Run()
}

func seedAdmin(ctx context.Context, params seedParams) error {
	defer func() {
		if err := params.Shutdown(); err != nil {
			params.Logger.Error("Failed to shut down", slog.Any("error", err))
		}
	}()

	count, err := params.UserRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		params.Logger.Info("Users already exist, skipping seed", slog.Int64("count", count))

		return nil
	}

	username := envOr("SEED_USERNAME", "laziza")
	password := envOr("SEED_PASSWORD", "laziza24434")
	name := envOr("SEED_NAME", "Laziza Iklima Khairatun")

	hash, err := params.Hasher.Hash(password)
	if err != nil {
		return err
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
		Name:         name,
	}
	if err := params.UserRepo.Create(ctx, user); err != nil {
		return err
	}

	params.Logger.Info("Seeded admin account", slog.String("username", username), slog.Int64("id", user.ID))

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
