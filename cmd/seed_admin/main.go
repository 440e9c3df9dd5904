// seed_admin crea la primera cuenta admin. Es idempotente: si el correo ya existe no hace nada.
//
//	SEED_ADMIN_EMAIL=admin@empresa.com SEED_ADMIN_PASSWORD=... go run ./cmd/seed_admin
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
	"github.com/jhoicas/catalogo-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	in := dto.CreateUserRequest{
		Name:     cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Role:     entity.RoleAdmin.String(),
	}
	if err := in.Validate(); err != nil {
		log.Fatal().Err(err).Msg("SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son obligatorios y deben ser válidos")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	users := usecase.NewUserUseCase(postgres.NewUserRepository(pool), password.NewHasher(cfg.Hash.BcryptCost))
	// el bootstrap actúa como admin: todavía no existe ninguna cuenta que pueda autorizarlo
	out, err := users.Create(ctx, entity.RoleAdmin, in)
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Info().Str("correo", entity.NormalizeEmail(in.Email)).Msg("la cuenta admin ya existe")
		return
	case err != nil:
		log.Error().Err(err).Msg("crear cuenta admin")
		os.Exit(1)
	}
	log.Info().Str("id", out.ID).Str("correo", out.Email).Msg("cuenta admin creada")
}
