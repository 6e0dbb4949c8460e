package alertas

import (
	"time"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/domain/alertas"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
)

// Config umbrales del motor de alertas.
type Config struct {
	DiasAvisoCaducidad  int
	DiasPedidoRetrasado int
}

// UseCase evalúa las reglas de alertas sobre el estado actual de productos
// y pedidos. Sin caché: cada llamada reevalúa desde cero contra el snapshot
// vivo; el volumen de alertas está acotado por el tamaño del catálogo.
type UseCase struct {
	productoRepo  repository.ProductoRepository
	pedidoRepo    repository.PedidoRepository
	proveedorRepo repository.ProveedorRepository
	cfg           Config
	ahora         func() time.Time
}

// NewUseCase construye el caso de uso. ahora permite inyectar un reloj fijo
// en tests; nil usa time.Now.
func NewUseCase(
	productoRepo repository.ProductoRepository,
	pedidoRepo repository.PedidoRepository,
	proveedorRepo repository.ProveedorRepository,
	cfg Config,
	ahora func() time.Time,
) *UseCase {
	if ahora == nil {
		ahora = time.Now
	}
	if cfg.DiasAvisoCaducidad <= 0 {
		cfg.DiasAvisoCaducidad = alertas.DiasAvisoCaducidad
	}
	if cfg.DiasPedidoRetrasado <= 0 {
		cfg.DiasPedidoRetrasado = alertas.DiasPedidoRetrasado
	}
	return &UseCase{
		productoRepo:  productoRepo,
		pedidoRepo:    pedidoRepo,
		proveedorRepo: proveedorRepo,
		cfg:           cfg,
		ahora:         ahora,
	}
}

// ObtenerTodas ejecuta las cinco reglas, concatena y ordena: críticas
// primero, después fecha descendente.
func (uc *UseCase) ObtenerTodas() ([]entity.Alerta, error) {
	ahora := uc.ahora()

	productos, err := uc.productoRepo.ListActivos()
	if err != nil {
		return nil, err
	}
	pedidos, err := uc.snapshotPedidosPendientes()
	if err != nil {
		return nil, err
	}

	var todas []entity.Alerta
	todas = append(todas, alertas.DetectarStockBajo(productos, ahora)...)
	todas = append(todas, alertas.DetectarCaducados(productos, ahora)...)
	todas = append(todas, alertas.DetectarProximosACaducar(productos, ahora, uc.cfg.DiasAvisoCaducidad)...)
	todas = append(todas, alertas.DetectarPedidosPendientes(pedidos, ahora)...)
	todas = append(todas, alertas.DetectarPedidosRetrasados(pedidos, ahora, uc.cfg.DiasPedidoRetrasado)...)

	alertas.Ordenar(todas)
	return todas, nil
}

// ObtenerCriticas devuelve solo las alertas críticas, ya ordenadas.
func (uc *UseCase) ObtenerCriticas() ([]entity.Alerta, error) {
	todas, err := uc.ObtenerTodas()
	if err != nil {
		return nil, err
	}
	criticas := make([]entity.Alerta, 0, len(todas))
	for _, a := range todas {
		if a.Critica {
			criticas = append(criticas, a)
		}
	}
	return criticas, nil
}

// ObtenerEstadisticas devuelve el conteo de alertas por tipo.
func (uc *UseCase) ObtenerEstadisticas() (*dto.EstadisticasAlertasResponse, error) {
	todas, err := uc.ObtenerTodas()
	if err != nil {
		return nil, err
	}
	stats := &dto.EstadisticasAlertasResponse{Total: len(todas)}
	for _, a := range todas {
		if a.Critica {
			stats.Criticas++
		}
		switch a.Tipo {
		case entity.AlertaStockBajo:
			stats.StockBajo++
		case entity.AlertaProductoCaducado:
			stats.Caducados++
		case entity.AlertaProximoCaducar:
			stats.ProximosCaducar++
		case entity.AlertaPedidoPendiente:
			stats.PedidosPendientes++
		case entity.AlertaPedidoRetrasado:
			stats.PedidosRetrasados++
		}
	}
	return stats, nil
}

// snapshotPedidosPendientes carga los pedidos pendientes y resuelve el
// nombre de empresa del proveedor de cada uno (con memo por proveedor).
func (uc *UseCase) snapshotPedidosPendientes() ([]alertas.PedidoConProveedor, error) {
	pedidos, err := uc.pedidoRepo.ListPendientes()
	if err != nil {
		return nil, err
	}
	empresas := make(map[string]string)
	out := make([]alertas.PedidoConProveedor, 0, len(pedidos))
	for _, p := range pedidos {
		empresa, ok := empresas[p.ProveedorID]
		if !ok {
			prov, err := uc.proveedorRepo.GetByID(p.ProveedorID)
			if err != nil {
				return nil, err
			}
			if prov != nil {
				empresa = prov.Empresa
			}
			empresas[p.ProveedorID] = empresa
		}
		out = append(out, alertas.PedidoConProveedor{Pedido: p, Empresa: empresa})
	}
	return out, nil
}

// ToResponse convierte alertas de dominio al DTO de salida.
func ToResponse(lista []entity.Alerta) []dto.AlertaResponse {
	items := make([]dto.AlertaResponse, 0, len(lista))
	for _, a := range lista {
		items = append(items, dto.AlertaResponse{
			Tipo:      string(a.Tipo),
			Nivel:     a.Tipo.Nivel(),
			Mensaje:   a.Mensaje,
			Detalle:   a.Detalle,
			Fecha:     a.Fecha,
			EntidadID: a.EntidadID,
			Critica:   a.Critica,
		})
	}
	return items
}
