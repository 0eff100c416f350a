package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appanalytics "github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/analytics"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/auth"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/usecase"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/observability/metrics"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/observability/tracing"
)

// AppConfig opciones de la aplicación Fiber.
type AppConfig struct {
	Name        string
	CORSOrigins string // lista separada por comas; vacío = sin CORS
	Log         zerolog.Logger
}

// NewApp construye la app con el stack de middlewares común:
// recover → requestid → tracing → request log → métricas → CORS.
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: LocalRequestID,
	}))
	app.Use(tracing.Middleware())
	app.Use(RequestLogger(cfg.Log))
	app.Use(metrics.Middleware())
	if cfg.CORSOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept",
			AllowCredentials: true,
		}))
	}
	return app
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Sessions    *auth.SessionManager
	Cookie      CookieConfig
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	VendorUC    *usecase.VendorUseCase
	ManagerUC   *usecase.ManagerUseCase
	AdminUC     *usecase.AdminUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *appanalytics.ReportUseCase
	Health      map[string]Pinger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	session := SessionMiddleware(deps.Sessions)
	admin := RequireRole(entity.RoleAdmin)

	// Operación
	health := NewHealthHandler(deps.Health)
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)
	app.Get("/metrics", metrics.Handler())

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/profile", session, authHandler.Profile)
	app.Get("/admin", session, admin, authHandler.AdminArea)
	app.Post("/clientes/login", authHandler.CustomerLogin)

	// Administradores (solo admin)
	admins := app.Group("/admins", session, admin)
	adminHandler := NewAdminHandler(deps.AdminUC)
	admins.Post("/", adminHandler.Create)
	admins.Get("/", adminHandler.List)
	admins.Delete("/:id", adminHandler.Delete)

	// Productos: lectura pública, escritura admin.
	// relatorio.pdf se registra antes de /:id.
	products := app.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	products.Get("/relatorio.pdf", session, admin, reportHandler.InventoryPDF)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", session, admin, productHandler.Create)
	products.Patch("/:id", session, admin, productHandler.Update)
	products.Put("/:id", session, admin, productHandler.Update)
	products.Delete("/:id", session, admin, productHandler.Delete)

	categories := app.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", session, admin, categoryHandler.Create)
	categories.Delete("/:id", session, admin, categoryHandler.Delete)

	// Clientes: alta pública; lectura y cambios solo admin.
	// Un cliente ve sus propios datos en /profile.
	customers := app.Group("/clientes")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", session, admin, customerHandler.List)
	customers.Get("/:id", session, admin, customerHandler.GetByID)
	customers.Patch("/:id", session, admin, customerHandler.Update)
	customers.Delete("/:id", session, admin, customerHandler.Delete)

	vendors := app.Group("/vendedores", session, admin)
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Post("/", vendorHandler.Create)
	vendors.Patch("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)

	managers := app.Group("/gerentes", session, admin)
	managerHandler := NewManagerHandler(deps.ManagerUC)
	managers.Get("/", managerHandler.List)
	managers.Get("/:id", managerHandler.GetByID)
	managers.Post("/", managerHandler.Create)
	managers.Patch("/:id", managerHandler.Update)
	managers.Delete("/:id", managerHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	app.Get("/dashboard/stats", dashboardHandler.GetStats)
}
