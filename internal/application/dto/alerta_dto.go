package dto

import "time"

// AlertaResponse salida de una alerta evaluada.
type AlertaResponse struct {
	Tipo      string    `json:"tipo"`
	Nivel     string    `json:"nivel"` // info, warning, error
	Mensaje   string    `json:"mensaje"`
	Detalle   string    `json:"detalle"`
	Fecha     time.Time `json:"fecha"`
	EntidadID string    `json:"entidad_id"`
	Critica   bool      `json:"critica"`
}

// AlertaListResponse lista ordenada de alertas.
type AlertaListResponse struct {
	Items []AlertaResponse `json:"items"`
	Total int              `json:"total"`
}

// EstadisticasAlertasResponse conteo de alertas por tipo.
type EstadisticasAlertasResponse struct {
	Total             int `json:"total"`
	Criticas          int `json:"criticas"`
	StockBajo         int `json:"stock_bajo"`
	Caducados         int `json:"caducados"`
	ProximosCaducar   int `json:"proximos_caducar"`
	PedidosPendientes int `json:"pedidos_pendientes"`
	PedidosRetrasados int `json:"pedidos_retrasados"`
}
