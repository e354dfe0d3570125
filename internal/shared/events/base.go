package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Base de todos los eventos de integración
type IntegrationEvent struct {
	Type      string          `json:"type"`
	Key       string          `json:"key"` // clave de partición (id de la solicitud)
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"` // contenido específico del evento
}

// PartitionKey implementa bus.Keyer: los eventos de una misma solicitud van a la misma partición.
func (e IntegrationEvent) PartitionKey() string {
	return e.Key
}

// NewIntegrationEvent serializa el payload y lo envuelve en un IntegrationEvent.
func NewIntegrationEvent(eventType, key string, payload interface{}, ts time.Time) (IntegrationEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return IntegrationEvent{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return IntegrationEvent{
		Type:      eventType,
		Key:       key,
		Timestamp: ts.UTC(),
		Data:      data,
	}, nil
}
