package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
	sharedEvents "github.com/davicafu/humanidadunida/internal/shared/events"
	sharedBus "github.com/davicafu/humanidadunida/internal/shared/infra/platform/bus"
	"github.com/davicafu/humanidadunida/internal/shared/infra/metrics"
)

const (
	DefaultListLimit = 1000
	publishTimeout   = 2 * time.Second
)

// Deps son las dependencias comunes a todos los servicios de solicitudes.
// Events, Recorder, Clock e IDs son opcionales.
type Deps struct {
	Store     sharedDomain.RecordStore
	Events    sharedBus.EventBus
	Recorder  metrics.Recorder
	ListLimit int
	Log       *zap.Logger
	Clock     func() time.Time
	IDs       func() string
}

func (d Deps) withDefaults() Deps {
	if d.Recorder == nil {
		d.Recorder = metrics.NopRecorder{}
	}
	if d.ListLimit <= 0 {
		d.ListLimit = DefaultListLimit
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = func() time.Time { return time.Now().UTC() }
	}
	if d.IDs == nil {
		d.IDs = uuid.NewString
	}
	return d
}

// publish envía el evento sin afectar a la petición: no hereda su cancelación
// y un fallo sólo se registra.
func (d Deps) publish(ctx context.Context, eventType, key string, payload interface{}) {
	if d.Events == nil {
		return
	}

	evt, err := sharedEvents.NewIntegrationEvent(eventType, key, payload, d.Clock())
	if err != nil {
		d.Log.Warn("Could not build event", zap.String("type", eventType), zap.Error(err))
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := d.Events.Publish(pubCtx, evt); err != nil {
		d.Log.Warn("Event publish failed",
			zap.String("type", eventType),
			zap.String("request_id", key),
			zap.Error(err))
	}
}
