package events

import (
	"context"
	"encoding/json"
	"sync"

	sharedBus "github.com/davicafu/humanidadunida/internal/shared/infra/platform/bus"
)

// Message es lo que reciben los suscriptores del bus en memoria: la misma pareja
// clave/valor que viajaría por Kafka.
type Message struct {
	Key   string
	Value []byte
}

// InMemoryEventBus implementa un bus de eventos para UN solo topic.
type InMemoryEventBus struct {
	subscribers []chan Message
	mu          sync.RWMutex
	once        sync.Once
	closed      bool
	topic       string
}

// Verifica en tiempo de compilación que cumple la interfaz
var _ sharedBus.EventBus = (*InMemoryEventBus)(nil)

// NewInMemoryEventBus crea un bus de eventos para un topic específico.
func NewInMemoryEventBus(topic string) *InMemoryEventBus {
	return &InMemoryEventBus{
		subscribers: make([]chan Message, 0),
		topic:       topic,
	}
}

// Topic devuelve el topic que maneja este bus.
func (b *InMemoryEventBus) Topic() string {
	return b.topic
}

// Publish envía un evento a todos los suscriptores de este bus.
// Si un suscriptor tiene el buffer lleno, el evento se descarta para él.
func (b *InMemoryEventBus) Publish(ctx context.Context, event interface{}) error {
	payloadBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	var key string
	if keyer, ok := event.(sharedBus.Keyer); ok {
		key = keyer.PartitionKey()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil
	}

	msg := Message{Key: key, Value: payloadBytes}
	for _, subChan := range b.subscribers {
		select {
		case subChan <- msg:
		default:
		}
	}
	return nil
}

// Subscribe suscribe un nuevo oyente a este bus.
func (b *InMemoryEventBus) Subscribe(bufferSize int) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	subChan := make(chan Message, bufferSize)
	b.subscribers = append(b.subscribers, subChan)
	return subChan
}

// Close cierra los canales de todos los suscriptores. Es idempotente.
func (b *InMemoryEventBus) Close() error {
	b.once.Do(func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.closed = true
		for _, ch := range b.subscribers {
			close(ch)
		}
	})
	return nil
}

// BackgroundConsumerChan entrega los mensajes del canal al handler hasta que
// el canal se cierre o se cancele ctx.
func BackgroundConsumerChan(ctx context.Context, ch <-chan Message, handler MessageHandler) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				handler.HandleMessage(ctx, msg.Key, msg.Value)
			}
		}
	}()
}
