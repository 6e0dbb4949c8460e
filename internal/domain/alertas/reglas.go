// Package alertas contiene las reglas de evaluación de alertas como
// servicios de dominio puros: reciben un snapshot de productos o pedidos y
// la fecha de referencia, y devuelven cero o más alertas. No tienen efectos
// secundarios y son deterministas dado el mismo snapshot y la misma fecha.
package alertas

import (
	"fmt"
	"sort"
	"time"

	"github.com/farmaplus/farmacia-api/internal/domain/entity"
)

// Umbrales por defecto de las reglas.
const (
	DiasAvisoCaducidad  = 30
	DiasPedidoRetrasado = 7
)

// DetectarStockBajo emite una alerta por cada producto activo cuyo stock
// está en o por debajo de su mínimo.
func DetectarStockBajo(productos []*entity.Producto, ahora time.Time) []entity.Alerta {
	var alertas []entity.Alerta
	for _, p := range productos {
		if !p.Activo || !p.StockBajo() {
			continue
		}
		alertas = append(alertas, entity.NuevaAlerta(
			entity.AlertaStockBajo,
			fmt.Sprintf("Stock bajo: %s", p.Nombre),
			fmt.Sprintf("Stock actual: %d unidades (Mínimo: %d)", p.Stock, p.StockMinimo),
			p.ID,
			ahora,
		))
	}
	return alertas
}

// DetectarCaducados emite una alerta crítica por cada producto activo cuya
// fecha de vencimiento es anterior a hoy. Un producto que vence exactamente
// hoy no está caducado: cae en la regla de próximos a caducar.
func DetectarCaducados(productos []*entity.Producto, ahora time.Time) []entity.Alerta {
	var alertas []entity.Alerta
	for _, p := range productos {
		if !p.Activo || !p.Vencido(ahora) {
			continue
		}
		alertas = append(alertas, entity.NuevaAlerta(
			entity.AlertaProductoCaducado,
			fmt.Sprintf("Producto caducado: %s", p.Nombre),
			fmt.Sprintf("Caducado hace %d días (Fecha: %s)", p.DiasVencido(ahora), p.FechaVencimiento.Format("2006-01-02")),
			p.ID,
			ahora,
		))
	}
	return alertas
}

// DetectarProximosACaducar emite una alerta por cada producto activo que
// vence dentro de la ventana [hoy, hoy+diasAviso).
func DetectarProximosACaducar(productos []*entity.Producto, ahora time.Time, diasAviso int) []entity.Alerta {
	if diasAviso <= 0 {
		diasAviso = DiasAvisoCaducidad
	}
	var alertas []entity.Alerta
	for _, p := range productos {
		if !p.Activo || !p.ProximoAVencer(ahora, diasAviso) {
			continue
		}
		alertas = append(alertas, entity.NuevaAlerta(
			entity.AlertaProximoCaducar,
			fmt.Sprintf("Próximo a caducar: %s", p.Nombre),
			fmt.Sprintf("Caduca en %d días (Fecha: %s)", p.DiasParaVencer(ahora), p.FechaVencimiento.Format("2006-01-02")),
			p.ID,
			ahora,
		))
	}
	return alertas
}

// DetectarPedidosPendientes emite una alerta por cada pedido cuyo estado no
// es RECIBIDO ni CANCELADO. El nombre de empresa del proveedor llega ya
// resuelto en el pedido (campo informativo del snapshot).
func DetectarPedidosPendientes(pedidos []PedidoConProveedor, ahora time.Time) []entity.Alerta {
	var alertas []entity.Alerta
	for _, pp := range pedidos {
		p := pp.Pedido
		if p.Estado.Terminal() {
			continue
		}
		alertas = append(alertas, entity.NuevaAlerta(
			entity.AlertaPedidoPendiente,
			fmt.Sprintf("Pedido pendiente: %s", p.NumeroPedido),
			fmt.Sprintf("Proveedor: %s | Estado: %s | Total: €%s", pp.Empresa, p.Estado.Descripcion(), p.Total.StringFixed(2)),
			p.ID,
			ahora,
		))
	}
	return alertas
}

// DetectarPedidosRetrasados emite una alerta crítica por cada pedido
// pendiente con más de diasRetraso días desde la fecha de pedido. Se emite
// además de la alerta de pendiente, no en su lugar: un pedido retrasado
// aparece en ambas listas.
func DetectarPedidosRetrasados(pedidos []PedidoConProveedor, ahora time.Time, diasRetraso int) []entity.Alerta {
	if diasRetraso <= 0 {
		diasRetraso = DiasPedidoRetrasado
	}
	limite := ahora.AddDate(0, 0, -diasRetraso)
	var alertas []entity.Alerta
	for _, pp := range pedidos {
		p := pp.Pedido
		if p.Estado.Terminal() || !p.FechaPedido.Before(limite) {
			continue
		}
		dias := int(ahora.Sub(p.FechaPedido).Hours() / 24)
		alertas = append(alertas, entity.NuevaAlerta(
			entity.AlertaPedidoRetrasado,
			fmt.Sprintf("Pedido retrasado: %s", p.NumeroPedido),
			fmt.Sprintf("Proveedor: %s | Pedido hace %d días | Total: €%s", pp.Empresa, dias, p.Total.StringFixed(2)),
			p.ID,
			ahora,
		))
	}
	return alertas
}

// PedidoConProveedor es el snapshot que consumen las reglas de pedidos:
// el pedido más el nombre de empresa del proveedor para el detalle.
type PedidoConProveedor struct {
	Pedido  *entity.Pedido
	Empresa string
}

// Ordenar ordena alertas in place: críticas primero (orden estable entre
// ellas) y después por fecha descendente.
func Ordenar(alertas []entity.Alerta) {
	sort.SliceStable(alertas, func(i, j int) bool {
		if alertas[i].Critica != alertas[j].Critica {
			return alertas[i].Critica
		}
		return alertas[i].Fecha.After(alertas[j].Fecha)
	})
}
