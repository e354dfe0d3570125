package events

// Tipos de evento publicados por el servicio de solicitudes.
const (
	RequestCreatedType  = "request.created"
	RequestVerifiedType = "request.verified"
)

// ContactFields son los únicos campos del registro que viajan en RequestCreated.
// CURP, NSS, fechas y el resto de datos de la solicitud se quedan en el store.
var ContactFields = []string{"user_name", "name", "phone", "email"}

// Contratos de integración, NO entidades del dominio.
// Se definen planos para intercambio entre contextos.
type RequestCreated struct {
	Collection string            `json:"collection"`
	RequestID  string            `json:"request_id"`
	Contact    map[string]string `json:"contact,omitempty"`
}

type RequestVerified struct {
	Collection string `json:"collection"`
	RequestID  string `json:"request_id"`
}

// NewRequestCreated arma el evento copiando sólo los datos de contacto de record.
func NewRequestCreated(collection, id string, record map[string]interface{}) RequestCreated {
	evt := RequestCreated{Collection: collection, RequestID: id}
	for _, f := range ContactFields {
		if v, ok := record[f].(string); ok && v != "" {
			if evt.Contact == nil {
				evt.Contact = make(map[string]string, len(ContactFields))
			}
			evt.Contact[f] = v
		}
	}
	return evt
}
