package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appalertas "github.com/farmaplus/farmacia-api/internal/application/alertas"
	"github.com/farmaplus/farmacia-api/internal/application/auth"
	"github.com/farmaplus/farmacia-api/internal/application/pedidos"
	"github.com/farmaplus/farmacia-api/internal/application/reportes"
	"github.com/farmaplus/farmacia-api/internal/application/usecase"
	"github.com/farmaplus/farmacia-api/internal/application/ventas"
	"github.com/farmaplus/farmacia-api/internal/infrastructure/export"
	infrapdf "github.com/farmaplus/farmacia-api/internal/infrastructure/pdf"
	"github.com/farmaplus/farmacia-api/internal/infrastructure/postgres"
	httpRouter "github.com/farmaplus/farmacia-api/internal/interfaces/http"
	"github.com/farmaplus/farmacia-api/pkg/config"
	"github.com/farmaplus/farmacia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productoUC := usecase.NewProductoUseCase(productoRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	authUC := auth.NewUseCase(usuarioRepo, auth.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})
	ventasUC := ventas.NewUseCase(txRunner, ventaRepo, nil)
	pedidosUC := pedidos.NewUseCase(txRunner, pedidoRepo, proveedorRepo, nil)
	alertasUC := appalertas.NewUseCase(productoRepo, pedidoRepo, proveedorRepo, appalertas.Config{
		DiasAvisoCaducidad:  cfg.Alertas.DiasAvisoCaducidad,
		DiasPedidoRetrasado: cfg.Alertas.DiasPedidoRetrasado,
	}, nil)
	reportesUC := reportes.NewUseCase(
		ventasUC, pedidosUC, alertasUC, productoRepo, ventaRepo,
		infrapdf.NewMarotoReporteGenerator(), export.NewCSVExporter(), nil,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FarmaPlus API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:  productoUC,
		ProveedorUC: proveedorUC,
		ClienteUC:   clienteUC,
		UsuarioUC:   usuarioUC,
		AuthUC:      authUC,
		VentasUC:    ventasUC,
		PedidosUC:   pedidosUC,
		AlertasUC:   alertasUC,
		ReportesUC:  reportesUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	// Refresco periódico de alertas en segundo plano
	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()
	refresher := appalertas.NewRefresher(alertasUC, log,
		time.Duration(cfg.Alertas.RefrescoSegundos)*time.Second)
	go refresher.Run(refreshCtx)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
