// Package stock implementa la reconciliación de inventario: los ajustes de
// stock asociados a ventas, anulaciones y recepciones de pedido. Son
// servicios de dominio puros; la persistencia de los productos mutados es
// responsabilidad del caso de uso que los invoca.
package stock

import (
	"github.com/farmaplus/farmacia-api/internal/domain"
	"github.com/farmaplus/farmacia-api/internal/domain/entity"
)

// AplicarVenta descuenta cantidad unidades del stock del producto.
// Devuelve ErrInsufficientStock sin tocar el stock cuando la cantidad
// solicitada supera la disponible.
func AplicarVenta(p *entity.Producto, cantidad int) error {
	if cantidad <= 0 {
		return domain.ErrInvalidInput
	}
	if cantidad > p.Stock {
		return domain.ErrInsufficientStock
	}
	p.Stock -= cantidad
	return nil
}

// RevertirVenta restaura cantidad unidades al stock del producto. Se usa al
// anular una venta; el incremento es incondicional, el stock no tiene techo.
func RevertirVenta(p *entity.Producto, cantidad int) {
	if cantidad <= 0 {
		return
	}
	p.Stock += cantidad
}

// AplicarRecepcion marca la línea de pedido como recibida e incrementa el
// stock del producto con la cantidad recibida. Si la línea no trae cantidad
// recibida (cero), se asume que llegó la cantidad pedida completa. Si la
// línea no referencia un producto del catálogo, el stock no se toca pero la
// línea igualmente queda marcada como recibida.
func AplicarRecepcion(detalle *entity.DetallePedido, p *entity.Producto) int {
	recibida := detalle.CantidadRecibida
	if recibida <= 0 {
		recibida = detalle.Cantidad
	}
	if p != nil {
		p.Stock += recibida
	}
	detalle.Recibido = true
	detalle.CantidadRecibida = recibida
	return recibida
}
