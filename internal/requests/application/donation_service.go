package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/davicafu/humanidadunida/internal/requests/domain"
	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
	sharedEvents "github.com/davicafu/humanidadunida/internal/shared/events"
)

// DonationService añade a las solicitudes de apoyo CFE la transición a "verified".
type DonationService struct {
	*IntakeService[domain.UtilityDonationInput, domain.UtilityDonationRequest]
}

func NewDonationService(deps Deps) *DonationService {
	return &DonationService{
		IntakeService: NewIntakeService(domain.UtilityDonationSchema, deps),
	}
}

// Verify marca la solicitud como verificada sin mirar su estado previo.
// Devuelve ErrRequestNotFound si ningún registro tiene ese id.
func (s *DonationService) Verify(ctx context.Context, id string) error {
	collection := s.Collection()

	matched, err := s.deps.Store.Update(ctx, collection, id, sharedDomain.Document{"status": domain.StatusVerified})
	if err != nil {
		return fmt.Errorf("verify %s/%s: %w", collection, id, err)
	}
	if matched == 0 {
		return sharedDomain.ErrRequestNotFound
	}

	s.deps.Log.Info("Request verified", zap.String("collection", collection), zap.String("request_id", id))
	s.deps.Recorder.RequestVerified(collection)
	s.deps.publish(ctx, sharedEvents.RequestVerifiedType, id, sharedEvents.RequestVerified{
		Collection: collection,
		RequestID:  id,
	})
	return nil
}
