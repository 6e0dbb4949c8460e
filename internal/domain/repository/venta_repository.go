package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/farmaplus/farmacia-api/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para Venta y sus detalles.
type VentaRepository interface {
	// Create persiste la venta con todas sus líneas.
	Create(venta *entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	// Update reescribe la cabecera (anulación, observaciones); las líneas no cambian.
	Update(venta *entity.Venta) error
	ListActivas() ([]*entity.Venta, error)
	ListPorRango(desde, hasta time.Time) ([]*entity.Venta, error)
	ListPorMetodoPago(metodoPago string) ([]*entity.Venta, error)
	ListUltimas(n int) ([]*entity.Venta, error)
	// TotalPorRango suma el total de ventas activas en [desde, hasta).
	TotalPorRango(desde, hasta time.Time) (decimal.Decimal, error)
	CountPorRango(desde, hasta time.Time) (int, error)
}
