package alertas

import (
	"context"
	"time"

	"github.com/farmaplus/farmacia-api/pkg/logger"
)

// Refresher reevalúa las alertas en un intervalo fijo y deja el resumen en
// el log. Sustituye al temporizador de refresco del panel de alertas: la
// evaluación es la misma llamada síncrona, solo que disparada por reloj.
type Refresher struct {
	uc       *UseCase
	log      *logger.Logger
	interval time.Duration
}

// NewRefresher construye el refresco periódico.
func NewRefresher(uc *UseCase, log *logger.Logger, interval time.Duration) *Refresher {
	return &Refresher{uc: uc, log: log, interval: interval}
}

// Run bloquea hasta que el contexto se cancele.
func (r *Refresher) Run(ctx context.Context) {
	if r.interval <= 0 {
		return
	}
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats, err := r.uc.ObtenerEstadisticas()
			if err != nil {
				r.log.Error().Err(err).Msg("refresco de alertas")
				continue
			}
			evt := r.log.Info()
			if stats.Criticas > 0 {
				evt = r.log.Warn()
			}
			evt.
				Int("total", stats.Total).
				Int("criticas", stats.Criticas).
				Int("stock_bajo", stats.StockBajo).
				Int("caducados", stats.Caducados).
				Int("pedidos_retrasados", stats.PedidosRetrasados).
				Msg("alertas evaluadas")
		}
	}
}
