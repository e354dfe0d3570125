// Package reference carga el contenido estático (enlaces, guías y datos de contacto)
// que sirven los endpoints informativos.
package reference

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

type SATGuide struct {
	Steps        []string `yaml:"steps" json:"steps"`
	SATURL       string   `yaml:"sat_url" json:"sat_url"`
	Requirements []string `yaml:"requirements" json:"requirements"`
}

type FraudGuide struct {
	CommonFrauds     []string          `yaml:"common_frauds" json:"common_frauds"`
	VerificationTips []string          `yaml:"verification_tips" json:"verification_tips"`
	OfficialLinks    map[string]string `yaml:"official_links" json:"official_links"`
}

type DocumentFormat struct {
	Type        string `yaml:"type" json:"type"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	URL         string `yaml:"url" json:"url"`
}

type DocumentList struct {
	Formats []DocumentFormat `yaml:"formats" json:"formats"`
}

type ContactInfo struct {
	WhatsApp      string `yaml:"whatsapp" json:"whatsapp"`
	WhatsAppURL   string `yaml:"whatsapp_url" json:"whatsapp_url"`
	Email         string `yaml:"email" json:"email"`
	BusinessHours string `yaml:"business_hours" json:"business_hours"`
	ResponseTime  string `yaml:"response_time" json:"response_time"`
}

type SocialSecurityGuide struct {
	Title       string   `yaml:"title" json:"title"`
	WhatYouNeed []string `yaml:"what_you_need" json:"what_you_need"`
	Steps       []string `yaml:"steps" json:"steps"`
	OfficialURL string   `yaml:"official_url" json:"official_url"`
	Important   []string `yaml:"important" json:"important"`
}

type EmailProvider struct {
	Name          string   `yaml:"name" json:"name"`
	Icon          string   `yaml:"icon" json:"icon"`
	HowToIdentify string   `yaml:"how_to_identify" json:"how_to_identify"`
	SimpleSteps   []string `yaml:"simple_steps" json:"simple_steps"`
	RecoveryURL   string   `yaml:"recovery_url" json:"recovery_url"`
}

type EmailRecoveryGuide struct {
	EmailProviders    map[string]EmailProvider `yaml:"email_providers" json:"email_providers"`
	ImportantSecurity []string                 `yaml:"important_security" json:"important_security"`
}

// Catalog es todo el contenido estático. Se carga una vez al arrancar y no cambia.
type Catalog struct {
	CertificateLinks    map[string]string   `yaml:"certificate_links"`
	SATGuide            SATGuide            `yaml:"sat_guide"`
	FraudGuide          FraudGuide          `yaml:"fraud_guide"`
	Documents           DocumentList        `yaml:"documents"`
	Contact             ContactInfo         `yaml:"contact"`
	SocialSecurityGuide SocialSecurityGuide `yaml:"social_security_guide"`
	EmailRecoveryGuide  EmailRecoveryGuide  `yaml:"email_recovery_guide"`
}

var ErrIncompleteCatalog = errors.New("reference catalog is incomplete")

// Load devuelve el catálogo embebido en el binario.
func Load() (*Catalog, error) {
	return Parse(defaultContent)
}

// Parse decodifica un catálogo YAML. Rechaza claves desconocidas y secciones vacías.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode reference catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	switch {
	case len(c.CertificateLinks) == 0:
		return fmt.Errorf("%w: certificate_links", ErrIncompleteCatalog)
	case len(c.SATGuide.Steps) == 0:
		return fmt.Errorf("%w: sat_guide", ErrIncompleteCatalog)
	case len(c.FraudGuide.CommonFrauds) == 0:
		return fmt.Errorf("%w: fraud_guide", ErrIncompleteCatalog)
	case len(c.Documents.Formats) == 0:
		return fmt.Errorf("%w: documents", ErrIncompleteCatalog)
	case c.Contact.WhatsApp == "":
		return fmt.Errorf("%w: contact", ErrIncompleteCatalog)
	case len(c.SocialSecurityGuide.WhatYouNeed) == 0:
		return fmt.Errorf("%w: social_security_guide", ErrIncompleteCatalog)
	case len(c.EmailRecoveryGuide.EmailProviders) == 0:
		return fmt.Errorf("%w: email_recovery_guide", ErrIncompleteCatalog)
	}
	return nil
}
