// Package ventas implementa el registro y anulación de ventas de mostrador.
// El descuento de stock es transaccional: o se registra la venta completa con
// todas sus líneas descontadas, o no se toca nada.
package ventas

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmaplus/farmacia-api/internal/application/dto"
	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
	"github.com/farmaplus/farmacia-api/internal/domain/repository"
	"github.com/farmaplus/farmacia-api/internal/domain/stock"
)

// UseCase caso de uso de ventas.
type UseCase struct {
	txRunner  TxRunner
	ventaRepo repository.VentaRepository
	ahora     func() time.Time
}

// NewUseCase construye el caso de uso. ahora permite inyectar un reloj fijo
// en tests; nil usa time.Now.
func NewUseCase(txRunner TxRunner, ventaRepo repository.VentaRepository, ahora func() time.Time) *UseCase {
	if ahora == nil {
		ahora = time.Now
	}
	return &UseCase{txRunner: txRunner, ventaRepo: ventaRepo, ahora: ahora}
}

// RegistrarVenta valida y persiste una venta descontando stock de forma
// atómica. La validación de disponibilidad agrega las cantidades por
// producto antes de mutar nada: si cualquier línea no puede servirse, la
// venta entera se rechaza y ningún stock cambia.
func (uc *UseCase) RegistrarVenta(ctx context.Context, usuarioID string, req *dto.CreateVentaRequest) (*entity.Venta, error) {
	if usuarioID == "" || len(req.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !metodoPagoValido(req.MetodoPago) {
		return nil, domain.ErrInvalidInput
	}
	if req.Descuento.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	// Cantidad total por producto: una misma referencia puede venir en
	// varias líneas y la disponibilidad se comprueba sobre la suma.
	porProducto := make(map[string]int)
	for _, linea := range req.Detalles {
		if linea.ProductoID == "" || linea.Cantidad <= 0 || linea.Descuento.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		porProducto[linea.ProductoID] += linea.Cantidad
	}

	ahora := uc.ahora()
	venta := &entity.Venta{
		ID:            uuid.New().String(),
		Fecha:         ahora,
		Descuento:     req.Descuento,
		MetodoPago:    req.MetodoPago,
		Cliente:       req.Cliente,
		Observaciones: req.Observaciones,
		UsuarioID:     usuarioID,
		Activo:        true,
	}

	err := uc.txRunner.RunVenta(ctx, func(ventaRepo repository.VentaRepository, productoRepo repository.ProductoRepository) error {
		// Bloquea en orden estable para no interbloquear ventas concurrentes.
		ids := make([]string, 0, len(porProducto))
		for id := range porProducto {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		productos := make(map[string]*entity.Producto, len(ids))
		for _, id := range ids {
			p, err := productoRepo.GetForUpdate(id)
			if err != nil {
				return err
			}
			if p == nil || !p.Activo {
				return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
			}
			if porProducto[id] > p.Stock {
				return fmt.Errorf("producto %s: %w", p.Nombre, domain.ErrInsufficientStock)
			}
			productos[id] = p
		}

		// Todas las líneas son servibles: ahora sí se muta.
		for _, linea := range req.Detalles {
			p := productos[linea.ProductoID]
			if err := stock.AplicarVenta(p, linea.Cantidad); err != nil {
				return err
			}
			venta.Detalles = append(venta.Detalles, entity.DetalleVenta{
				ID:             uuid.New().String(),
				ProductoID:     p.ID,
				NombreProducto: p.Nombre,
				Cantidad:       linea.Cantidad,
				PrecioUnitario: p.Precio,
				Descuento:      linea.Descuento,
			})
		}
		for _, id := range ids {
			if err := productoRepo.UpdateStock(id, productos[id].Stock); err != nil {
				return err
			}
		}
		venta.CalcularTotal()
		return ventaRepo.Create(venta)
	})
	if err != nil {
		return nil, err
	}
	return venta, nil
}

// AnularVenta marca la venta como anulada y restaura el stock de todas sus
// líneas en la misma transacción. Anular dos veces devuelve ErrVentaAnulada.
func (uc *UseCase) AnularVenta(ctx context.Context, id, motivo string) (*entity.Venta, error) {
	var anulada *entity.Venta
	err := uc.txRunner.RunVenta(ctx, func(ventaRepo repository.VentaRepository, productoRepo repository.ProductoRepository) error {
		venta, err := ventaRepo.GetByID(id)
		if err != nil {
			return err
		}
		if venta == nil {
			return domain.ErrNotFound
		}
		if !venta.Activo {
			return domain.ErrVentaAnulada
		}
		for _, linea := range venta.Detalles {
			p, err := productoRepo.GetForUpdate(linea.ProductoID)
			if err != nil {
				return err
			}
			if p == nil {
				// producto dado de baja después de la venta: no hay stock que restaurar
				continue
			}
			stock.RevertirVenta(p, linea.Cantidad)
			if err := productoRepo.UpdateStock(p.ID, p.Stock); err != nil {
				return err
			}
		}
		venta.Activo = false
		if motivo != "" {
			if venta.Observaciones != "" {
				venta.Observaciones += " | "
			}
			venta.Observaciones += "ANULADA: " + motivo
		}
		if err := ventaRepo.Update(venta); err != nil {
			return err
		}
		anulada = venta
		return nil
	})
	if err != nil {
		return nil, err
	}
	return anulada, nil
}

// ObtenerPorID devuelve la venta o ErrNotFound.
func (uc *UseCase) ObtenerPorID(id string) (*entity.Venta, error) {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	return venta, nil
}

// ListarActivas devuelve todas las ventas no anuladas, más recientes primero.
func (uc *UseCase) ListarActivas() ([]*entity.Venta, error) {
	return uc.ventaRepo.ListActivas()
}

// ListarDelDia devuelve las ventas del día en curso.
func (uc *UseCase) ListarDelDia() ([]*entity.Venta, error) {
	desde, hasta := rangoDia(uc.ahora())
	return uc.ventaRepo.ListPorRango(desde, hasta)
}

// ListarPorRango devuelve ventas con fecha en [desde, hasta).
func (uc *UseCase) ListarPorRango(desde, hasta time.Time) ([]*entity.Venta, error) {
	if hasta.Before(desde) {
		return nil, domain.ErrInvalidInput
	}
	return uc.ventaRepo.ListPorRango(desde, hasta)
}

// ListarPorMetodoPago devuelve ventas activas pagadas con el método dado.
func (uc *UseCase) ListarPorMetodoPago(metodoPago string) ([]*entity.Venta, error) {
	if !metodoPagoValido(metodoPago) {
		return nil, domain.ErrInvalidInput
	}
	return uc.ventaRepo.ListPorMetodoPago(metodoPago)
}

// ListarUltimas devuelve las n ventas más recientes.
func (uc *UseCase) ListarUltimas(n int) ([]*entity.Venta, error) {
	if n <= 0 {
		n = 10
	}
	return uc.ventaRepo.ListUltimas(n)
}

// EstadisticasDelDia resume las ventas del día en curso.
func (uc *UseCase) EstadisticasDelDia() (*dto.EstadisticasVentasResponse, error) {
	desde, hasta := rangoDia(uc.ahora())
	return uc.EstadisticasPorRango(desde, hasta)
}

// EstadisticasPorRango resume las ventas de un rango de fechas.
func (uc *UseCase) EstadisticasPorRango(desde, hasta time.Time) (*dto.EstadisticasVentasResponse, error) {
	lista, err := uc.ventaRepo.ListPorRango(desde, hasta)
	if err != nil {
		return nil, err
	}
	stats := &dto.EstadisticasVentasResponse{
		TotalVentas:   decimal.Zero,
		PromedioVenta: decimal.Zero,
		NumeroVentas:  len(lista),
	}
	for _, v := range lista {
		stats.TotalVentas = stats.TotalVentas.Add(v.Total)
		for _, linea := range v.Detalles {
			stats.ProductosVendidos += linea.Cantidad
		}
	}
	if stats.NumeroVentas > 0 {
		stats.PromedioVenta = stats.TotalVentas.Div(decimal.NewFromInt(int64(stats.NumeroVentas))).Round(2)
	}
	return stats, nil
}

func metodoPagoValido(metodo string) bool {
	switch metodo {
	case entity.PagoEfectivo, entity.PagoTarjeta, entity.PagoTransferencia:
		return true
	}
	return false
}

// rangoDia devuelve [medianoche, medianoche+24h) del instante dado.
func rangoDia(t time.Time) (time.Time, time.Time) {
	desde := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return desde, desde.Add(24 * time.Hour)
}

// ToResponse convierte una venta de dominio al DTO de salida.
func ToResponse(v *entity.Venta) dto.VentaResponse {
	detalles := make([]dto.DetalleVentaResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		detalles = append(detalles, dto.DetalleVentaResponse{
			ProductoID:     d.ProductoID,
			NombreProducto: d.NombreProducto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Descuento:      d.Descuento,
			Subtotal:       d.Subtotal,
		})
	}
	return dto.VentaResponse{
		ID:            v.ID,
		Fecha:         v.Fecha,
		Detalles:      detalles,
		Subtotal:      v.Subtotal,
		Descuento:     v.Descuento,
		Total:         v.Total,
		MetodoPago:    v.MetodoPago,
		Cliente:       v.Cliente,
		Observaciones: v.Observaciones,
		UsuarioID:     v.UsuarioID,
		Activo:        v.Activo,
	}
}

// ToListResponse convierte una lista de ventas al DTO de salida.
func ToListResponse(lista []*entity.Venta) dto.VentaListResponse {
	items := make([]dto.VentaResponse, 0, len(lista))
	for _, v := range lista {
		items = append(items, ToResponse(v))
	}
	return dto.VentaListResponse{Items: items, Total: len(items)}
}
