package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PagoEfectivo      = "EFECTIVO"
	PagoTarjeta       = "TARJETA"
	PagoTransferencia = "TRANSFERENCIA"
)

// DetalleVenta es una línea de venta.
type DetalleVenta struct {
	ID             string
	ProductoID     string
	NombreProducto string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Descuento      decimal.Decimal
	Subtotal       decimal.Decimal
}

// CalcularSubtotal recalcula Subtotal = precio × cantidad − descuento.
func (d *DetalleVenta) CalcularSubtotal() {
	d.Subtotal = d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
	if d.Descuento.GreaterThan(decimal.Zero) {
		d.Subtotal = d.Subtotal.Sub(d.Descuento)
	}
}

// Venta representa una venta de mostrador. Activo=false significa anulada
// (el stock de sus líneas ya fue restaurado).
type Venta struct {
	ID            string
	Fecha         time.Time
	Detalles      []DetalleVenta
	Subtotal      decimal.Decimal
	Descuento     decimal.Decimal
	Total         decimal.Decimal
	MetodoPago    string
	Cliente       string // nombre libre, opcional
	Observaciones string
	UsuarioID     string // usuario que realizó la venta
	Activo        bool
}

// CalcularTotal recalcula subtotal y total a partir de las líneas.
func (v *Venta) CalcularTotal() {
	subtotal := decimal.Zero
	for i := range v.Detalles {
		v.Detalles[i].CalcularSubtotal()
		subtotal = subtotal.Add(v.Detalles[i].Subtotal)
	}
	v.Subtotal = subtotal
	v.Total = subtotal.Sub(v.Descuento)
}
