// Package validation agrupa los validadores de formato compartidos por todos los
// formularios: CURP, NSS, correo, fecha DD/MM/AAAA y prólogo XML.
// Son funciones puras; la normalización (p. ej. CURP a mayúsculas) la hace quien llama.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

// Campos reconocidos en FormatError.Field.
const (
	FieldCURP      = "CURP"
	FieldNSS       = "NSS"
	FieldBirthDate = "birthDate"
	FieldEmail     = "email"
	FieldXML       = "xml"
)

var ErrInvalidFormat = errors.New("invalid format")

var (
	curpPattern      = regexp.MustCompile(`^[A-Z]{4}[0-9]{6}[HM][A-Z]{5}[0-9A-Z][0-9]$`)
	nssPattern       = regexp.MustCompile(`^[0-9]{11}$`)
	birthDatePattern = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{4}$`)
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

var messages = map[string]string{
	FieldCURP:      "El formato de CURP no es válido",
	FieldNSS:       "El NSS debe tener exactamente 11 dígitos",
	FieldBirthDate: "La fecha de nacimiento debe tener el formato DD/MM/AAAA",
	FieldEmail:     "El correo electrónico no es válido",
	FieldXML:       "El contenido no es un XML válido",
}

// FormatError indica qué campo no tiene el formato esperado.
type FormatError struct {
	Field string
}

func (e *FormatError) Error() string {
	if msg, ok := messages[e.Field]; ok {
		return msg
	}
	return "Formato inválido: " + e.Field
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

func invalid(field string) error { return &FormatError{Field: field} }

// CURP valida la gramática de 18 caracteres. Espera la entrada ya en mayúsculas.
func CURP(s string) error {
	if !curpPattern.MatchString(s) {
		return invalid(FieldCURP)
	}
	return nil
}

// NSS valida exactamente 11 dígitos decimales.
func NSS(s string) error {
	if !nssPattern.MatchString(s) {
		return invalid(FieldNSS)
	}
	return nil
}

// BirthDate valida el agrupamiento DD/MM/AAAA. No comprueba que la fecha exista.
func BirthDate(s string) error {
	if !birthDatePattern.MatchString(s) {
		return invalid(FieldBirthDate)
	}
	return nil
}

// Email valida la forma local@dominio.tld.
func Email(s string) error {
	if !emailPattern.MatchString(s) {
		return invalid(FieldEmail)
	}
	return nil
}

// XMLProlog exige que el contenido, sin espacios alrededor, empiece por "<?xml".
func XMLProlog(s string) error {
	if !strings.HasPrefix(strings.TrimSpace(s), "<?xml") {
		return invalid(FieldXML)
	}
	return nil
}

// NormalizeCURP pasa la CURP a mayúsculas.
func NormalizeCURP(s string) string {
	return strings.ToUpper(s)
}
