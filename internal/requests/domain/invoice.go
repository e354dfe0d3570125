package domain

import "time"

// Sólo se guarda el principio del XML recibido.
const MaxStoredXMLRunes = 1000

const (
	mockRFC     = "XAXX010101000"
	mockStatus  = "Activo"
	mockWarning = "Este es un ejemplo de verificación"
)

// VerificationResult es el resultado simulado de la verificación de un CFDI.
// No se consulta al SAT: cualquier XML bien encabezado devuelve lo mismo.
type VerificationResult struct {
	IsValid      bool     `json:"is_valid"`
	Status       string   `json:"status"`
	RFCEmisor    string   `json:"rfc_emisor"`
	RFCReceptor  string   `json:"rfc_receptor"`
	FechaEmision string   `json:"fecha_emision"`
	Warnings     []string `json:"warnings"`
}

func MockVerification(at time.Time) VerificationResult {
	return VerificationResult{
		IsValid:      true,
		Status:       mockStatus,
		RFCEmisor:    mockRFC,
		RFCReceptor:  mockRFC,
		FechaEmision: at.UTC().Format(time.RFC3339Nano),
		Warnings:     []string{mockWarning},
	}
}

type InvoiceVerification struct {
	ID                 string             `json:"id"`
	XMLContent         string             `json:"xml_content"`
	VerificationResult VerificationResult `json:"verification_result"`
	UserIP             string             `json:"user_ip"`
	Timestamp          time.Time          `json:"timestamp"`
}

type InvoiceInput struct {
	XMLContent string `json:"xml_content"`
	UserIP     string `json:"-"`
}

// truncateRunes corta s a n caracteres sin partir un carácter multibyte.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
