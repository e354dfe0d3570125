package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/davicafu/humanidadunida/internal/analytics/domain"
	requestsDomain "github.com/davicafu/humanidadunida/internal/requests/domain"
	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
)

// DashboardService cuenta las colecciones en cada llamada; no guarda nada entre llamadas.
type DashboardService struct {
	counter sharedDomain.Counter
	log     *zap.Logger
	clock   func() time.Time
}

func NewDashboardService(counter sharedDomain.Counter, log *zap.Logger) *DashboardService {
	return &DashboardService{
		counter: counter,
		log:     log,
		clock:   func() time.Time { return time.Now().UTC() },
	}
}

// Dashboard lanza los seis conteos en paralelo. Si uno falla se cancelan los demás.
// No hay aislamiento entre conteos: cada uno ve el estado del store en su momento.
func (s *DashboardService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	g, ctx := errgroup.WithContext(ctx)

	var totals domain.Totals
	targets := []struct {
		collection string
		dest       *int64
	}{
		{requestsDomain.CollectionUtilityDonations, &totals.CFE},
		{requestsDomain.CollectionCertificates, &totals.Certificates},
		{requestsDomain.CollectionFiscal, &totals.Fiscal},
		{requestsDomain.CollectionContacts, &totals.Contacts},
		{requestsDomain.CollectionSocialSecurity, &totals.IMSSSemanas},
		{requestsDomain.CollectionEmailRecovery, &totals.EmailRecovery},
	}

	for _, t := range targets {
		t := t
		g.Go(func() error {
			n, err := s.counter.Count(ctx, t.collection)
			if err != nil {
				return fmt.Errorf("count %s: %w", t.collection, err)
			}
			*t.dest = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.log.Error("Dashboard counts failed", zap.Error(err))
		return domain.Dashboard{}, err
	}

	return domain.NewDashboard(totals, s.clock()), nil
}
