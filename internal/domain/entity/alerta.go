package entity

import "time"

// TipoAlerta clasifica las alertas del sistema.
type TipoAlerta string

// Tipos de alerta.
const (
	AlertaStockBajo        TipoAlerta = "STOCK_BAJO"
	AlertaProductoCaducado TipoAlerta = "PRODUCTO_CADUCADO"
	AlertaProximoCaducar   TipoAlerta = "PROXIMO_CADUCAR"
	AlertaPedidoPendiente  TipoAlerta = "PEDIDO_PENDIENTE"
	AlertaPedidoRetrasado  TipoAlerta = "PEDIDO_RETRASADO"
)

// Descripcion devuelve el nombre legible del tipo.
func (t TipoAlerta) Descripcion() string {
	switch t {
	case AlertaStockBajo:
		return "Stock Bajo"
	case AlertaProductoCaducado:
		return "Producto Caducado"
	case AlertaProximoCaducar:
		return "Próximo a Caducar"
	case AlertaPedidoPendiente:
		return "Pedido Pendiente"
	case AlertaPedidoRetrasado:
		return "Pedido Retrasado"
	}
	return string(t)
}

// Nivel devuelve la severidad del tipo: info, warning o error.
func (t TipoAlerta) Nivel() string {
	switch t {
	case AlertaProductoCaducado, AlertaPedidoRetrasado:
		return "error"
	case AlertaStockBajo, AlertaProximoCaducar:
		return "warning"
	case AlertaPedidoPendiente:
		return "info"
	}
	return "info"
}

// Alerta es una notificación derivada de las reglas del sistema. No se
// persiste: se recalcula en cada evaluación sobre el estado actual de
// productos y pedidos.
type Alerta struct {
	Tipo      TipoAlerta
	Mensaje   string
	Detalle   string
	Fecha     time.Time
	EntidadID string // producto o pedido que origina la alerta
	Critica   bool
}

// NuevaAlerta construye una alerta; la criticidad se deriva del nivel del tipo.
func NuevaAlerta(tipo TipoAlerta, mensaje, detalle, entidadID string, fecha time.Time) Alerta {
	return Alerta{
		Tipo:      tipo,
		Mensaje:   mensaje,
		Detalle:   detalle,
		Fecha:     fecha,
		EntidadID: entidadID,
		Critica:   tipo.Nivel() == "error",
	}
}
