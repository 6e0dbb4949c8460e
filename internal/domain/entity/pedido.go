package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoPedido es el estado del ciclo de vida de un pedido a proveedor.
type EstadoPedido string

// Estados del pedido. RECIBIDO y CANCELADO son terminales.
const (
	EstadoBorrador   EstadoPedido = "BORRADOR"
	EstadoEnviado    EstadoPedido = "ENVIADO"
	EstadoConfirmado EstadoPedido = "CONFIRMADO"
	EstadoEnTransito EstadoPedido = "EN_TRANSITO"
	EstadoRecibido   EstadoPedido = "RECIBIDO"
	EstadoCancelado  EstadoPedido = "CANCELADO"
)

// Valida indica si el valor corresponde a un estado conocido.
func (e EstadoPedido) Valida() bool {
	switch e {
	case EstadoBorrador, EstadoEnviado, EstadoConfirmado, EstadoEnTransito, EstadoRecibido, EstadoCancelado:
		return true
	}
	return false
}

// Terminal indica si el estado no admite más transiciones.
func (e EstadoPedido) Terminal() bool {
	return e == EstadoRecibido || e == EstadoCancelado
}

// Descripcion devuelve el nombre legible del estado.
func (e EstadoPedido) Descripcion() string {
	switch e {
	case EstadoBorrador:
		return "Borrador"
	case EstadoEnviado:
		return "Enviado"
	case EstadoConfirmado:
		return "Confirmado"
	case EstadoEnTransito:
		return "En Tránsito"
	case EstadoRecibido:
		return "Recibido"
	case EstadoCancelado:
		return "Cancelado"
	}
	return string(e)
}

// siguiente devuelve el paso natural de avance del pedido, o "" si no hay.
func (e EstadoPedido) siguiente() EstadoPedido {
	switch e {
	case EstadoBorrador:
		return EstadoEnviado
	case EstadoEnviado:
		return EstadoConfirmado
	case EstadoConfirmado:
		return EstadoEnTransito
	}
	return ""
}

// PuedeTransicionarA decide si la transición e -> destino es legal.
// Reglas: desde cualquier estado no terminal se puede pasar a RECIBIDO o
// CANCELADO; el avance normal es de un paso en la cadena
// BORRADOR -> ENVIADO -> CONFIRMADO -> EN_TRANSITO. Los estados terminales
// no tienen salidas.
func (e EstadoPedido) PuedeTransicionarA(destino EstadoPedido) bool {
	if !destino.Valida() || e.Terminal() {
		return false
	}
	switch destino {
	case EstadoRecibido, EstadoCancelado:
		return true
	default:
		return e.siguiente() == destino
	}
}

// DetallePedido es una línea de pedido. Puede referenciar un producto del
// catálogo o solo llevar nombre/código cuando el producto aún no existe.
type DetallePedido struct {
	ID               string
	ProductoID       string // vacío = producto aún no dado de alta
	NombreProducto   string
	CodigoProducto   string
	Cantidad         int
	PrecioUnitario   decimal.Decimal
	Descuento        decimal.Decimal
	Subtotal         decimal.Decimal
	Observaciones    string
	Recibido         bool
	CantidadRecibida int // 0 = aún sin recibir; al recibir queda la cantidad real
}

// CalcularSubtotal recalcula Subtotal = precio × cantidad − descuento.
func (d *DetallePedido) CalcularSubtotal() {
	d.Subtotal = d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
	if d.Descuento.GreaterThan(decimal.Zero) {
		d.Subtotal = d.Subtotal.Sub(d.Descuento)
	}
}

// Pedido representa un pedido a proveedor. El pedido es dueño de sus
// detalles por valor; las líneas nunca se consultan fuera de su pedido.
type Pedido struct {
	ID                   string
	ProveedorID          string
	NumeroPedido         string // único, formato PED-YYYYMMDD-XXXX
	FechaPedido          time.Time
	FechaEntregaEstimada *time.Time
	FechaEntregaReal     *time.Time
	Estado               EstadoPedido
	Detalles             []DetallePedido
	Subtotal             decimal.Decimal
	IVA                  decimal.Decimal
	Descuento            decimal.Decimal
	Total                decimal.Decimal
	Observaciones        string
	Activo               bool
	CreadoPor            string
	FechaCreacion        time.Time
	FechaActualizacion   time.Time
}

// CalcularTotal recalcula subtotal y total a partir de las líneas.
// Se invoca en cada alta/modificación, no solo al recibir.
func (p *Pedido) CalcularTotal() {
	subtotal := decimal.Zero
	for i := range p.Detalles {
		p.Detalles[i].CalcularSubtotal()
		subtotal = subtotal.Add(p.Detalles[i].Subtotal)
	}
	p.Subtotal = subtotal
	p.Total = subtotal.Add(p.IVA).Sub(p.Descuento)
}
