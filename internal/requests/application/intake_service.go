package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/davicafu/humanidadunida/internal/requests/domain"
	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
	sharedEvents "github.com/davicafu/humanidadunida/internal/shared/events"
)

// IntakeService implementa los casos de uso comunes a todas las solicitudes:
// crear (validar, normalizar, derivar, persistir) y listar.
type IntakeService[In any, E any] struct {
	schema domain.Schema[In, E]
	deps   Deps
}

func NewIntakeService[In any, E any](schema domain.Schema[In, E], deps Deps) *IntakeService[In, E] {
	return &IntakeService[In, E]{schema: schema, deps: deps.withDefaults()}
}

func (s *IntakeService[In, E]) Collection() string {
	return s.schema.Collection
}

// Create devuelve el registro tal como quedó guardado. Si la validación falla
// no se escribe nada.
func (s *IntakeService[In, E]) Create(ctx context.Context, in In) (E, error) {
	var zero E

	in, err := s.schema.Prepare(in)
	if err != nil {
		return zero, err
	}

	meta := domain.Meta{ID: s.deps.IDs(), Timestamp: s.deps.Clock()}
	record := s.schema.Build(in, meta)

	doc, err := sharedDomain.ToDocument(record)
	if err != nil {
		return zero, err
	}
	if err := s.deps.Store.Insert(ctx, s.schema.Collection, doc); err != nil {
		return zero, fmt.Errorf("persist %s: %w", s.schema.Collection, err)
	}

	s.deps.Log.Info("Request created",
		zap.String("collection", s.schema.Collection),
		zap.String("request_id", meta.ID))
	s.deps.Recorder.RequestCreated(s.schema.Collection)
	s.deps.publish(ctx, sharedEvents.RequestCreatedType, meta.ID,
		sharedEvents.NewRequestCreated(s.schema.Collection, meta.ID, doc))

	return record, nil
}

// List devuelve los registros de la colección en orden de inserción, hasta el límite configurado.
func (s *IntakeService[In, E]) List(ctx context.Context) ([]E, error) {
	docs, err := s.deps.Store.Find(ctx, s.schema.Collection, s.deps.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.schema.Collection, err)
	}
	return sharedDomain.FromDocuments[E](docs)
}
