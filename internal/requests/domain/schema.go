package domain

import (
	"github.com/davicafu/humanidadunida/internal/shared/validation"
)

// Schema describe un tipo de solicitud: dónde se guarda, cómo se normaliza y
// valida la entrada y cómo se construye el registro final.
type Schema[In any, E any] struct {
	Collection string
	// Normalize se aplica antes de validar.
	Normalize func(*In)
	// Validators se ejecutan en orden; el primero que falla corta.
	Validators []func(In) error
	Build      func(In, Meta) E
}

// Prepare normaliza y valida la entrada.
func (s Schema[In, E]) Prepare(in In) (In, error) {
	if s.Normalize != nil {
		s.Normalize(&in)
	}
	for _, v := range s.Validators {
		if err := v(in); err != nil {
			return in, err
		}
	}
	return in, nil
}

var StatusCheckSchema = Schema[StatusCheckInput, StatusCheck]{
	Collection: CollectionStatusChecks,
	Build: func(in StatusCheckInput, m Meta) StatusCheck {
		return StatusCheck{ID: m.ID, ClientName: in.ClientName, Timestamp: m.Timestamp}
	},
}

var UtilityDonationSchema = Schema[UtilityDonationInput, UtilityDonationRequest]{
	Collection: CollectionUtilityDonations,
	Build: func(in UtilityDonationInput, m Meta) UtilityDonationRequest {
		first := in.FirstTime()
		return UtilityDonationRequest{
			ID:             m.ID,
			ServiceNumber:  in.ServiceNumber,
			UserName:       in.UserName,
			Phone:          in.Phone,
			DonationAmount: DonationAmount(first),
			IsFirstTime:    first,
			Status:         StatusPending,
			Timestamp:      m.Timestamp,
		}
	},
}

var CertificateSchema = Schema[CertificateInput, CertificateRequest]{
	Collection: CollectionCertificates,
	Build: func(in CertificateInput, m Meta) CertificateRequest {
		return CertificateRequest{
			ID:              m.ID,
			UserName:        in.UserName,
			Phone:           in.Phone,
			CertificateType: in.CertificateType,
			DonationAmount:  CertificateDonation,
			Timestamp:       m.Timestamp,
		}
	},
}

var FiscalSchema = Schema[FiscalInput, FiscalRequest]{
	Collection: CollectionFiscal,
	Normalize:  func(in *FiscalInput) { in.CURP = validation.NormalizeCURP(in.CURP) },
	Validators: []func(FiscalInput) error{
		func(in FiscalInput) error { return validation.CURP(in.CURP) },
	},
	Build: func(in FiscalInput, m Meta) FiscalRequest {
		return FiscalRequest{
			ID:        m.ID,
			CURP:      in.CURP,
			UserName:  in.UserName,
			Phone:     in.Phone,
			Status:    StatusPending,
			Timestamp: m.Timestamp,
		}
	},
}

var InvoiceSchema = Schema[InvoiceInput, InvoiceVerification]{
	Collection: CollectionInvoices,
	Validators: []func(InvoiceInput) error{
		func(in InvoiceInput) error { return validation.XMLProlog(in.XMLContent) },
	},
	Build: func(in InvoiceInput, m Meta) InvoiceVerification {
		return InvoiceVerification{
			ID:                 m.ID,
			XMLContent:         truncateRunes(in.XMLContent, MaxStoredXMLRunes),
			VerificationResult: MockVerification(m.Timestamp),
			UserIP:             in.UserIP,
			Timestamp:          m.Timestamp,
		}
	},
}

var DownloadSchema = Schema[DownloadInput, DocumentDownload]{
	Collection: CollectionDownloads,
	Build: func(in DownloadInput, m Meta) DocumentDownload {
		return DocumentDownload{
			ID:           m.ID,
			DocumentType: in.DocumentType,
			UserIP:       in.UserIP,
			Timestamp:    m.Timestamp,
		}
	},
}

var ContactSchema = Schema[ContactInput, ContactMessage]{
	Collection: CollectionContacts,
	Build: func(in ContactInput, m Meta) ContactMessage {
		return ContactMessage{
			ID:        m.ID,
			Name:      in.Name,
			Email:     in.Email,
			Phone:     in.Phone,
			Message:   in.Message,
			Timestamp: m.Timestamp,
		}
	},
}

var SocialSecurityWeeksSchema = Schema[SocialSecurityWeeksInput, SocialSecurityWeeksRequest]{
	Collection: CollectionSocialSecurity,
	Normalize:  func(in *SocialSecurityWeeksInput) { in.CURP = validation.NormalizeCURP(in.CURP) },
	Validators: []func(SocialSecurityWeeksInput) error{
		func(in SocialSecurityWeeksInput) error { return validation.NSS(in.NSS) },
		func(in SocialSecurityWeeksInput) error { return validation.CURP(in.CURP) },
		func(in SocialSecurityWeeksInput) error { return validation.BirthDate(in.BirthDate) },
	},
	Build: func(in SocialSecurityWeeksInput, m Meta) SocialSecurityWeeksRequest {
		return SocialSecurityWeeksRequest{
			ID:        m.ID,
			NSS:       in.NSS,
			CURP:      in.CURP,
			UserName:  in.UserName,
			BirthDate: in.BirthDate,
			Phone:     in.Phone,
			Status:    StatusPending,
			Timestamp: m.Timestamp,
		}
	},
}

var EmailRecoverySchema = Schema[EmailRecoveryInput, EmailRecoveryRequest]{
	Collection: CollectionEmailRecovery,
	Normalize:  func(in *EmailRecoveryInput) { in.CURP = validation.NormalizeCURP(in.CURP) },
	Validators: []func(EmailRecoveryInput) error{
		func(in EmailRecoveryInput) error { return validation.Email(in.EmailToRecover) },
		func(in EmailRecoveryInput) error { return validation.CURP(in.CURP) },
		func(in EmailRecoveryInput) error { return validation.BirthDate(in.BirthDate) },
	},
	Build: func(in EmailRecoveryInput, m Meta) EmailRecoveryRequest {
		return EmailRecoveryRequest{
			ID:             m.ID,
			EmailToRecover: in.EmailToRecover,
			UserName:       in.UserName,
			BirthDate:      in.BirthDate,
			Phone:          in.Phone,
			CURP:           in.CURP,
			EmailProvider:  in.EmailProvider,
			AdditionalInfo: in.AdditionalInfo,
			Status:         StatusPending,
			Timestamp:      m.Timestamp,
		}
	},
}
