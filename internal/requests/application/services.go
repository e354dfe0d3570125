package application

import "github.com/davicafu/humanidadunida/internal/requests/domain"

// Services reúne un servicio por tipo de solicitud, todos sobre las mismas dependencias.
type Services struct {
	StatusChecks   *IntakeService[domain.StatusCheckInput, domain.StatusCheck]
	Donations      *DonationService
	Certificates   *IntakeService[domain.CertificateInput, domain.CertificateRequest]
	Fiscal         *IntakeService[domain.FiscalInput, domain.FiscalRequest]
	Invoices       *IntakeService[domain.InvoiceInput, domain.InvoiceVerification]
	Downloads      *IntakeService[domain.DownloadInput, domain.DocumentDownload]
	Contacts       *IntakeService[domain.ContactInput, domain.ContactMessage]
	SocialSecurity *IntakeService[domain.SocialSecurityWeeksInput, domain.SocialSecurityWeeksRequest]
	EmailRecovery  *IntakeService[domain.EmailRecoveryInput, domain.EmailRecoveryRequest]
}

func NewServices(deps Deps) *Services {
	return &Services{
		StatusChecks:   NewIntakeService(domain.StatusCheckSchema, deps),
		Donations:      NewDonationService(deps),
		Certificates:   NewIntakeService(domain.CertificateSchema, deps),
		Fiscal:         NewIntakeService(domain.FiscalSchema, deps),
		Invoices:       NewIntakeService(domain.InvoiceSchema, deps),
		Downloads:      NewIntakeService(domain.DownloadSchema, deps),
		Contacts:       NewIntakeService(domain.ContactSchema, deps),
		SocialSecurity: NewIntakeService(domain.SocialSecurityWeeksSchema, deps),
		EmailRecovery:  NewIntakeService(domain.EmailRecoverySchema, deps),
	}
}
