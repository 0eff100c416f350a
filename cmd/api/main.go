package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	appanalytics "github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/analytics"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/auth"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/usecase"
	infrakafka "github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/infrastructure/kafka"
	infrapdf "github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/infrastructure/pdf"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/infrastructure/postgres"
	infraredis "github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/infrastructure/redis"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/infrastructure/retry"
	httpRouter "github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/interfaces/http"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/observability/tracing"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/pkg/config"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/pkg/hash"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, log.Named("tracing"), cfg.Tracing.Endpoint, cfg.App.Name, cfg.App.Env)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar tracing")
	}

	// Postgres y Redis pueden tardar en estar listos (docker compose); se reintenta solo al arrancar.
	startup := retry.StartupConfig(cfg.App.StartupRetries)
	pool, err := retry.Do(ctx, startup, log.Named("startup"), "postgres", func(ctx context.Context) (*pgxpool.Pool, error) {
		return postgres.NewPool(ctx, cfg.DB)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		log.Info().Msg("esquema aplicado")
	}

	redisClient, err := retry.Do(ctx, startup, log.Named("startup"), "redis", func(ctx context.Context) (*infraredis.Client, error) {
		return infraredis.NewClient(ctx, cfg.Redis.URL)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	// Eventos de inventario: Kafka si hay brokers, descarte si no.
	var events usecase.EventPublisher = usecase.NopPublisher{}
	if cfg.Kafka.Enabled() {
		publisher := infrakafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log.Named("kafka"))
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar publisher kafka")
			}
		}()
		events = publisher
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("eventos de inventario hacia kafka")
	}

	txRunner := postgres.NewTxRunner(pool)
	repos := postgres.NewRepositories(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	hasher := hash.New(bcrypt.DefaultCost)

	sessions := auth.NewSessionManager(infraredis.NewSessionStore(redisClient), cfg.Session.TTL)
	authUC := auth.NewAuthUseCase(repos.Users, repos.Customers, hasher, sessions)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Log:         log.Named("http"),
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inventário API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Sessions:    sessions,
		Cookie:      httpRouter.CookieConfig{TTL: cfg.Session.TTL, Secure: cfg.Session.CookieSecure},
		CategoryUC:  usecase.NewCategoryUseCase(txRunner, repos),
		ProductUC:   usecase.NewProductUseCase(txRunner, repos, events),
		CustomerUC:  usecase.NewCustomerUseCase(txRunner, repos, hasher),
		VendorUC:    usecase.NewVendorUseCase(txRunner, repos),
		ManagerUC:   usecase.NewManagerUseCase(txRunner, repos),
		AdminUC:     usecase.NewAdminUseCase(txRunner, repos, hasher),
		DashboardUC: appanalytics.NewDashboardUseCase(analyticsRepo, cfg.App.LowStockThreshold),
		ReportUC: appanalytics.NewReportUseCase(
			repos.Products, analyticsRepo, infrapdf.NewMarotoReportGenerator(), cfg.App.LowStockThreshold,
		),
		Health: map[string]httpRouter.Pinger{
			"postgres": pool,
			"redis":    redisClient,
		},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del tracing")
	}

	log.Info().Msg("aplicación detenida")
}
