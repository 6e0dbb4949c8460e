package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMinimoPorDefecto se aplica al crear productos sin umbral propio.
const StockMinimoPorDefecto = 10

// Producto representa un producto del catálogo de la farmacia.
// Stock es unidades enteras; Precio siempre en decimal.
type Producto struct {
	ID                 string
	Nombre             string
	Descripcion        string
	Codigo             string // código único de producto
	Precio             decimal.Decimal
	Stock              int
	StockMinimo        int
	Laboratorio        string
	Categoria          string
	FechaVencimiento   *time.Time // nil = no caduca
	RequiereReceta     bool
	Activo             bool
	FechaCreacion      time.Time
	FechaActualizacion time.Time
}

// StockBajo indica si el stock actual está en o por debajo del mínimo.
func (p *Producto) StockBajo() bool {
	return p.Stock <= p.StockMinimo
}

// Vencido indica si la fecha de vencimiento es anterior a hoy.
// Un producto que vence exactamente hoy NO está vencido todavía.
func (p *Producto) Vencido(hoy time.Time) bool {
	if p.FechaVencimiento == nil {
		return false
	}
	return soloFecha(*p.FechaVencimiento).Before(soloFecha(hoy))
}

// ProximoAVencer indica si el producto vence dentro de la ventana de aviso.
// La ventana es [hoy, hoy+dias): vencer hoy cuenta como próximo a vencer.
func (p *Producto) ProximoAVencer(hoy time.Time, dias int) bool {
	if p.FechaVencimiento == nil {
		return false
	}
	v := soloFecha(*p.FechaVencimiento)
	h := soloFecha(hoy)
	limite := h.AddDate(0, 0, dias)
	return !v.Before(h) && v.Before(limite)
}

// DiasVencido devuelve cuántos días lleva vencido el producto.
func (p *Producto) DiasVencido(hoy time.Time) int {
	if p.FechaVencimiento == nil {
		return 0
	}
	return int(soloFecha(hoy).Sub(soloFecha(*p.FechaVencimiento)).Hours() / 24)
}

// DiasParaVencer devuelve cuántos días faltan para el vencimiento.
func (p *Producto) DiasParaVencer(hoy time.Time) int {
	if p.FechaVencimiento == nil {
		return 0
	}
	return int(soloFecha(*p.FechaVencimiento).Sub(soloFecha(hoy)).Hours() / 24)
}

// soloFecha trunca un instante a medianoche UTC para comparar por día calendario.
func soloFecha(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
