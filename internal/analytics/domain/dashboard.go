package domain

import "time"

// Totals es el número de solicitudes por área.
type Totals struct {
	CFE           int64 `json:"cfe"`
	Certificates  int64 `json:"certificates"`
	Fiscal        int64 `json:"fiscal"`
	Contacts      int64 `json:"contacts"`
	IMSSSemanas   int64 `json:"imss_semanas"`
	EmailRecovery int64 `json:"email_recovery"`
}

// Dashboard es el resumen que muestra el panel de analíticas.
type Dashboard struct {
	TotalRequests   Totals `json:"total_requests"`
	TotalHelped     int64  `json:"total_helped"`
	ElderlySpecific int64  `json:"elderly_specific"`
	LastUpdated     string `json:"last_updated"`
}

// NewDashboard calcula los agregados. Los mensajes de contacto no cuentan como
// personas ayudadas; IMSS y recuperación de correo son los trámites para adultos mayores.
func NewDashboard(t Totals, at time.Time) Dashboard {
	return Dashboard{
		TotalRequests:   t,
		TotalHelped:     t.CFE + t.Certificates + t.Fiscal + t.IMSSSemanas + t.EmailRecovery,
		ElderlySpecific: t.IMSSSemanas + t.EmailRecovery,
		LastUpdated:     at.UTC().Format(time.RFC3339Nano),
	}
}
