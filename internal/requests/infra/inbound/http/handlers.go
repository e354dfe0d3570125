package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davicafu/humanidadunida/internal/reference"
	"github.com/davicafu/humanidadunida/internal/requests/application"
	"github.com/davicafu/humanidadunida/internal/requests/domain"
	"github.com/davicafu/humanidadunida/pkg/utils"
)

const RootMessage = "HUMANIDAD UNIDA - Sistema de Ayuda Humanitaria"

// Handlers agrupa los handlers de todas las solicitudes y del contenido estático.
type Handlers struct {
	StatusChecks   *IntakeHandler[domain.StatusCheckInput, domain.StatusCheck]
	Donations      *IntakeHandler[domain.UtilityDonationInput, domain.UtilityDonationRequest]
	Certificates   *IntakeHandler[domain.CertificateInput, domain.CertificateRequest]
	Fiscal         *IntakeHandler[domain.FiscalInput, domain.FiscalRequest]
	Invoices       *IntakeHandler[domain.InvoiceInput, domain.InvoiceVerification]
	Downloads      *IntakeHandler[domain.DownloadInput, domain.DocumentDownload]
	Contacts       *IntakeHandler[domain.ContactInput, domain.ContactMessage]
	SocialSecurity *IntakeHandler[domain.SocialSecurityWeeksInput, domain.SocialSecurityWeeksRequest]
	EmailRecovery  *IntakeHandler[domain.EmailRecoveryInput, domain.EmailRecoveryRequest]

	donations *application.DonationService
	catalog   *reference.Catalog
	log       *zap.Logger
}

func NewHandlers(services *application.Services, catalog *reference.Catalog, log *zap.Logger) *Handlers {
	return &Handlers{
		StatusChecks: NewIntakeHandler(services.StatusChecks, log),
		Donations:    NewIntakeHandler(services.Donations.IntakeService, log),
		Certificates: NewIntakeHandler(services.Certificates, log),
		Fiscal:       NewIntakeHandler(services.Fiscal, log),
		Invoices: NewIntakeHandler(services.Invoices, log).
			WithEnrich(func(c *gin.Context, in *domain.InvoiceInput) { in.UserIP = c.ClientIP() }).
			WithPresenter(func(v domain.InvoiceVerification) interface{} { return v.VerificationResult }),
		Downloads: NewIntakeHandler(services.Downloads, log).
			WithEnrich(func(c *gin.Context, in *domain.DownloadInput) { in.UserIP = c.ClientIP() }).
			WithPresenter(func(d domain.DocumentDownload) interface{} {
				return gin.H{"message": fmt.Sprintf("Download registered for %s", d.DocumentType)}
			}),
		Contacts:       NewIntakeHandler(services.Contacts, log),
		SocialSecurity: NewIntakeHandler(services.SocialSecurity, log),
		EmailRecovery:  NewIntakeHandler(services.EmailRecovery, log),

		donations: services.Donations,
		catalog:   catalog,
		log:       log,
	}
}

// Root endpoint GET /
func (h *Handlers) Root(c *gin.Context) {
	utils.SendMessage(c, http.StatusOK, RootMessage)
}

// VerifyDonation endpoint PUT /utility-donation/request/:id/verify
func (h *Handlers) VerifyDonation(c *gin.Context) {
	if err := h.donations.Verify(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	utils.SendMessage(c, http.StatusOK, "Request verified successfully")
}

// static devuelve siempre el mismo contenido del catálogo.
func static(payload interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.SendSuccess(c, http.StatusOK, payload)
	}
}

func (h *Handlers) CertificateLinks() gin.HandlerFunc { return static(h.catalog.CertificateLinks) }
func (h *Handlers) SATGuide() gin.HandlerFunc { return static(h.catalog.SATGuide) }
func (h *Handlers) FraudGuide() gin.HandlerFunc { return static(h.catalog.FraudGuide) }
func (h *Handlers) Documents() gin.HandlerFunc { return static(h.catalog.Documents) }
func (h *Handlers) ContactInfo() gin.HandlerFunc { return static(h.catalog.Contact) }
func (h *Handlers) SocialSecurityGuide() gin.HandlerFunc {
	return static(h.catalog.SocialSecurityGuide)
}
func (h *Handlers) EmailRecoveryGuide() gin.HandlerFunc {
	return static(h.catalog.EmailRecoveryGuide)
}
