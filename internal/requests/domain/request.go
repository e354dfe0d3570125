package domain

import (
	"time"

	"github.com/davicafu/humanidadunida/internal/shared/infra/utils"
)

// Colecciones, una por tipo de solicitud.
const (
	CollectionStatusChecks     = "status_checks"
	CollectionUtilityDonations = "cfe_requests"
	CollectionCertificates     = "certificate_requests"
	CollectionFiscal           = "fiscal_requests"
	CollectionInvoices         = "cfdi_verifications"
	CollectionDownloads        = "tramite_downloads"
	CollectionContacts         = "contact_messages"
	CollectionSocialSecurity   = "imss_semanas_requests"
	CollectionEmailRecovery    = "email_recovery_requests"
)

const (
	StatusPending  = "pending"
	StatusVerified = "verified"
)

const (
	FirstTimeDonation   = 10.0
	RepeatDonation      = 20.0
	CertificateDonation = 80.0
)

// DonationAmount se fija al crear la solicitud y no se recalcula.
func DonationAmount(isFirstTime bool) float64 {
	return utils.Ternary(isFirstTime, FirstTimeDonation, RepeatDonation)
}

// Meta son los campos que asigna el servidor al crear cualquier registro.
type Meta struct {
	ID        string
	Timestamp time.Time
}

type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

type StatusCheckInput struct {
	ClientName string `json:"client_name" binding:"required"`
}

// UtilityDonationRequest es la solicitud de apoyo con el recibo de luz (CFE).
type UtilityDonationRequest struct {
	ID             string    `json:"id"`
	ServiceNumber  string    `json:"service_number"`
	UserName       string    `json:"user_name"`
	Phone          string    `json:"phone"`
	DonationAmount float64   `json:"donation_amount"`
	IsFirstTime    bool      `json:"is_first_time"`
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
}

type UtilityDonationInput struct {
	ServiceNumber string `json:"service_number" binding:"required"`
	UserName      string `json:"user_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	// nil equivale a primera vez
	IsFirstTime *bool `json:"is_first_time"`
}

func (in UtilityDonationInput) FirstTime() bool {
	return utils.ValueOr(in.IsFirstTime, true)
}

type CertificateRequest struct {
	ID              string    `json:"id"`
	UserName        string    `json:"user_name"`
	Phone           string    `json:"phone"`
	CertificateType string    `json:"certificate_type"`
	DonationPaid    bool      `json:"donation_paid"`
	DonationAmount  float64   `json:"donation_amount"`
	Timestamp       time.Time `json:"timestamp"`
}

type CertificateInput struct {
	UserName        string `json:"user_name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	CertificateType string `json:"certificate_type" binding:"required"`
}

type FiscalRequest struct {
	ID        string    `json:"id"`
	CURP      string    `json:"curp"`
	UserName  string    `json:"user_name"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type FiscalInput struct {
	CURP     string `json:"curp"`
	UserName string `json:"user_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

type DocumentDownload struct {
	ID           string    `json:"id"`
	DocumentType string    `json:"document_type"`
	UserIP       string    `json:"user_ip"`
	Timestamp    time.Time `json:"timestamp"`
}

type DownloadInput struct {
	DocumentType string `json:"document_type" binding:"required"`
	UserIP       string `json:"-"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SocialSecurityWeeksRequest es la consulta de semanas cotizadas del IMSS.
type SocialSecurityWeeksRequest struct {
	ID        string    `json:"id"`
	NSS       string    `json:"nss"`
	CURP      string    `json:"curp"`
	UserName  string    `json:"user_name"`
	BirthDate string    `json:"birth_date"` // DD/MM/YYYY
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type SocialSecurityWeeksInput struct {
	NSS       string `json:"nss"`
	CURP      string `json:"curp"`
	UserName  string `json:"user_name" binding:"required"`
	BirthDate string `json:"birth_date"`
	Phone     string `json:"phone" binding:"required"`
}

type EmailRecoveryRequest struct {
	ID             string    `json:"id"`
	EmailToRecover string    `json:"email_to_recover"`
	UserName       string    `json:"user_name"`
	BirthDate      string    `json:"birth_date"`
	Phone          string    `json:"phone"`
	CURP           string    `json:"curp"`
	EmailProvider  string    `json:"email_provider"`
	AdditionalInfo string    `json:"additional_info"`
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
}

type EmailRecoveryInput struct {
	EmailToRecover string `json:"email_to_recover"`
	UserName       string `json:"user_name" binding:"required"`
	BirthDate      string `json:"birth_date"`
	Phone          string `json:"phone" binding:"required"`
	CURP           string `json:"curp"`
	EmailProvider  string `json:"email_provider" binding:"required"`
	AdditionalInfo string `json:"additional_info"`
}
