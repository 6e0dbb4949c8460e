package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmaplus/farmacia-api/internal/application/alertas"
	"github.com/farmaplus/farmacia-api/internal/application/auth"
	"github.com/farmaplus/farmacia-api/internal/application/pedidos"
	"github.com/farmaplus/farmacia-api/internal/application/reportes"
	"github.com/farmaplus/farmacia-api/internal/application/usecase"
	"github.com/farmaplus/farmacia-api/internal/application/ventas"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC  *usecase.ProductoUseCase
	ProveedorUC *usecase.ProveedorUseCase
	ClienteUC   *usecase.ClienteUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	AuthUC      *auth.UseCase
	VentasUC    *ventas.UseCase
	PedidosUC   *pedidos.UseCase
	AlertasUC   *alertas.UseCase
	ReportesUC  *reportes.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Solo el login es público; la gestión
// de usuarios exige además rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/stock-bajo", productoHandler.StockBajo)
	productos.Get("/caducados", productoHandler.Caducados)
	productos.Get("/proximos-caducar", productoHandler.ProximosACaducar)
	productos.Get("/codigo/:codigo", productoHandler.GetByCodigo)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Proveedores (protegido)
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/documento/:documento", clienteHandler.GetByDocumento)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Ventas (protegido)
	ventasGroup := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentasUC)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Get("/", ventaHandler.List)
	ventasGroup.Get("/dia", ventaHandler.ListDelDia)
	ventasGroup.Get("/ultimas", ventaHandler.ListUltimas)
	ventasGroup.Get("/estadisticas", ventaHandler.Estadisticas)
	ventasGroup.Get("/:id", ventaHandler.GetByID)
	ventasGroup.Post("/:id/anular", ventaHandler.Anular)

	// Pedidos a proveedor (protegido)
	pedidosGroup := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidosUC)
	pedidosGroup.Post("/", pedidoHandler.Create)
	pedidosGroup.Get("/", pedidoHandler.List)
	pedidosGroup.Get("/pendientes", pedidoHandler.ListPendientes)
	pedidosGroup.Get("/estadisticas", pedidoHandler.Estadisticas)
	pedidosGroup.Get("/:id", pedidoHandler.GetByID)
	pedidosGroup.Put("/:id", pedidoHandler.Update)
	pedidosGroup.Put("/:id/estado", pedidoHandler.CambiarEstado)
	pedidosGroup.Post("/:id/recibir", pedidoHandler.Recibir)
	pedidosGroup.Post("/:id/cancelar", pedidoHandler.Cancelar)
	pedidosGroup.Delete("/:id", pedidoHandler.Delete)

	// Alertas (protegido)
	alertasGroup := protected.Group("/alertas")
	alertaHandler := NewAlertaHandler(deps.AlertasUC)
	alertasGroup.Get("/", alertaHandler.List)
	alertasGroup.Get("/criticas", alertaHandler.ListCriticas)
	alertasGroup.Get("/estadisticas", alertaHandler.Estadisticas)

	// Reportes (protegido)
	reportesGroup := protected.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReportesUC)
	reportesGroup.Get("/ventas", reporteHandler.Ventas)
	reportesGroup.Get("/ventas/pdf", reporteHandler.VentasPDF)
	reportesGroup.Get("/ventas/csv", reporteHandler.VentasCSV)
	reportesGroup.Get("/inventario", reporteHandler.Inventario)
	reportesGroup.Get("/inventario/pdf", reporteHandler.InventarioPDF)
	reportesGroup.Get("/inventario/csv", reporteHandler.InventarioCSV)
	reportesGroup.Get("/dashboard", reporteHandler.Dashboard)

	// Panel principal
	protected.Get("/dashboard", reporteHandler.Dashboard)

	// Usuarios (protegido, solo admin)
	usuarios := protected.Group("/usuarios", RequireRole(entity.RolAdmin))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Put("/:id/password", usuarioHandler.CambiarPassword)
}
