package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	historialKey = "notificaciones:historial"
	historialMax = 500
)

// NotificacionPayload is the job envelope for domain event notifications.
type NotificacionPayload struct {
	Evento      string `json:"evento"`
	PedidoID    int64  `json:"pedido_id,omitempty"`
	FacturaID   int64  `json:"factura_id,omitempty"`
	CodigoAnual string `json:"codigo_anual,omitempty"`
	Email       string `json:"email,omitempty"`
}

// notificacionWorker records domain events in a capped Redis history list
// and logs them. External delivery (email, webhooks) hangs off this point.
type notificacionWorker struct {
	rdb *redis.Client
}

func (w *notificacionWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload NotificacionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacion_worker: invalid payload")
		return
	}
	if payload.Evento == "" {
		log.Warn().Msg("notificacion_worker: empty evento — skipping")
		return
	}

	entry, err := json.Marshal(struct {
		NotificacionPayload
		RecibidoEn string `json:"recibido_en"`
	}{payload, time.Now().UTC().Format(time.RFC3339)})
	if err == nil {
		pipe := w.rdb.Pipeline()
		pipe.LPush(ctx, historialKey, entry)
		pipe.LTrim(ctx, historialKey, 0, historialMax-1)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn().Err(err).Msg("notificacion_worker: failed to record history")
		}
	}

	log.Info().
		Str("evento", payload.Evento).
		Int64("pedido_id", payload.PedidoID).
		Str("codigo_anual", payload.CodigoAnual).
		Msg("notificacion_worker: evento procesado")
}
