// Package notifications avisa al equipo de voluntarios de cada solicitud nueva
// o verificada. Consume los eventos request.* desde Kafka o desde el bus en memoria.
package notifications

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	sharedEvents "github.com/davicafu/humanidadunida/internal/shared/events"
	sharedUtils "github.com/davicafu/humanidadunida/internal/shared/infra/utils"
)

// Tamaño de la ventana de eventos ya vistos; Kafka puede entregar duplicados.
const seenWindow = 1024

type RequestNotifier struct {
	log *zap.Logger

	mu    sync.Mutex
	seen  map[string]struct{}
	order []string
}

func NewRequestNotifier(log *zap.Logger) *RequestNotifier {
	return &RequestNotifier{
		log:  log,
		seen: make(map[string]struct{}, seenWindow),
	}
}

func (n *RequestNotifier) HandleMessage(ctx context.Context, key string, payload []byte) {
	var base sharedEvents.IntegrationEvent
	if err := json.Unmarshal(payload, &base); err != nil {
		n.log.Warn("Failed to unmarshal integration event", zap.String("key", key), zap.Error(err))
		return
	}

	if n.duplicate(base.Type + "/" + base.Key) {
		n.log.Debug("Evento duplicado ignorado", zap.String("type", base.Type), zap.String("key", base.Key))
		return
	}

	switch base.Type {
	case sharedEvents.RequestCreatedType:
		sharedUtils.UnmarshalAndHandle(n.log, base.Data, func(evt sharedEvents.RequestCreated) {
			n.log.Info("Nueva solicitud de ayuda",
				zap.String("collection", evt.Collection),
				zap.String("request_id", evt.RequestID))

			// datos personales sólo en debug
			if len(evt.Contact) > 0 && n.log.Core().Enabled(zap.DebugLevel) {
				n.log.Debug("Contacto de la solicitud",
					zap.String("request_id", evt.RequestID),
					zap.Any("contact", evt.Contact))
			}
		})

	case sharedEvents.RequestVerifiedType:
		sharedUtils.UnmarshalAndHandle(n.log, base.Data, func(evt sharedEvents.RequestVerified) {
			n.log.Info("Solicitud verificada",
				zap.String("collection", evt.Collection),
				zap.String("request_id", evt.RequestID))
		})

	default:
		n.log.Warn("Unknown event type", zap.String("type", base.Type))
	}
}

// duplicate registra id y dice si ya se había visto. Olvida los más antiguos al llenarse.
func (n *RequestNotifier) duplicate(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.seen[id]; ok {
		return true
	}
	if len(n.order) >= seenWindow {
		delete(n.seen, n.order[0])
		n.order = n.order[1:]
	}
	n.seen[id] = struct{}{}
	n.order = append(n.order, id)
	return false
}
