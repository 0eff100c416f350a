// migrate aplica el esquema de la base y, opcionalmente, crea el primer administrador.
//
// Uso: go run ./cmd/migrate [-admin usuario]
// La contraseña del admin se lee de ADMIN_PASSWORD para no dejarla en el historial del shell.
// Si el usuario ya existe no es error: la herramienta se puede correr en cada despliegue.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/dto"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/usecase"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/infrastructure/postgres"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/infrastructure/retry"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/pkg/config"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/pkg/hash"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/pkg/logger"
)

func main() {
	adminUser := flag.String("admin", "", "crear un administrador con este username (contraseña en ADMIN_PASSWORD)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := retry.Do(ctx, retry.StartupConfig(cfg.App.StartupRetries), log.Zerolog(), "postgres",
		func(ctx context.Context) (*pgxpool.Pool, error) { return postgres.NewPool(ctx, cfg.DB) })
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Int("categorias", len(postgres.DefaultCategories)).Msg("esquema aplicado")

	if *adminUser == "" {
		return
	}
	admins := usecase.NewAdminUseCase(postgres.NewTxRunner(pool), postgres.NewRepositories(pool), hash.New(bcrypt.DefaultCost))
	out, err := admins.Create(ctx, dto.CreateAdminRequest{Username: *adminUser, Password: os.Getenv("ADMIN_PASSWORD")})
	switch {
	case errors.Is(err, domain.ErrConflict):
		log.Info().Str("username", *adminUser).Msg("administrador ya existe")
	case err != nil:
		log.Fatal().Err(err).Str("username", *adminUser).Msg("crear administrador")
	default:
		log.Info().Int64("id", out.ID).Str("username", out.Username).Msg("administrador creado")
	}
}
