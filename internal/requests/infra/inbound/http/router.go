package http

import "github.com/gin-gonic/gin"

// RegisterRequestRoutes monta todas las rutas de solicitudes bajo r.
// Las rutas antiguas (/cfe, /cfdi, /imss/semanas, /email/recovery) siguen
// registradas porque el frontend actual las usa.
func RegisterRequestRoutes(r gin.IRouter, h *Handlers) {
	r.GET("/", h.Root)
	r.GET("/status-root", h.Root)

	status := r.Group("/status")
	{
		status.POST("", h.StatusChecks.Create)
		status.GET("", h.StatusChecks.List)
	}

	for _, prefix := range []string{"/utility-donation", "/cfe"} {
		g := r.Group(prefix)
		g.POST("/request", h.Donations.Create)
		g.GET("/requests", h.Donations.List)
		g.PUT("/request/:id/verify", h.VerifyDonation)
	}

	certificates := r.Group("/certificates")
	{
		certificates.POST("/request", h.Certificates.Create)
		certificates.GET("/requests", h.Certificates.List)
		certificates.GET("/links", h.CertificateLinks())
	}

	fiscal := r.Group("/fiscal")
	{
		fiscal.POST("/request", h.Fiscal.Create)
		fiscal.GET("/requests", h.Fiscal.List)
		fiscal.GET("/guide", h.SATGuide())
		fiscal.GET("/sat-guide", h.SATGuide())
	}

	for _, prefix := range []string{"/invoice", "/cfdi"} {
		g := r.Group(prefix)
		g.POST("/verify", h.Invoices.Create)
		g.GET("/fraud-guide", h.FraudGuide())
	}

	tramites := r.Group("/tramites")
	{
		tramites.POST("/download", h.Downloads.Create)
		tramites.GET("/documents", h.Documents())
	}

	contact := r.Group("/contact")
	{
		contact.POST("/message", h.Contacts.Create)
		contact.GET("/info", h.ContactInfo())
	}

	for _, prefix := range []string{"/social-security-weeks", "/imss/semanas"} {
		g := r.Group(prefix)
		g.POST("/request", h.SocialSecurity.Create)
		g.GET("/requests", h.SocialSecurity.List)
		g.GET("/guide", h.SocialSecurityGuide())
	}

	for _, prefix := range []string{"/email-recovery", "/email/recovery"} {
		g := r.Group(prefix)
		g.POST("/request", h.EmailRecovery.Create)
		g.GET("/requests", h.EmailRecovery.List)
		g.GET("/guide", h.EmailRecoveryGuide())
	}
}
