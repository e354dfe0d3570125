package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/davicafu/humanidadunida/internal/reference"
	"github.com/davicafu/humanidadunida/internal/requests/application"
	"github.com/davicafu/humanidadunida/internal/requests/domain"
	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
	"github.com/davicafu/humanidadunida/internal/shared/infra/platform/store/memory"
	"github.com/davicafu/humanidadunida/tests/mocks"
)

func setupRouter(t *testing.T, store sharedDomain.RecordStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := reference.Load()
	require.NoError(t, err)

	services := application.NewServices(application.Deps{Store: store, Log: zap.NewNop()})
	r := gin.New()
	RegisterRequestRoutes(r.Group("/api"), NewHandlers(services, catalog, zap.NewNop()))
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRoot(t *testing.T) {
	r := setupRouter(t, memory.NewStore())

	for _, path := range []string{"/api/", "/api/status-root"} {
		w := doJSON(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"message":"HUMANIDAD UNIDA - Sistema de Ayuda Humanitaria"}`, w.Body.String())
	}
}

func TestStatusChecks_CreateAndList(t *testing.T) {
	r := setupRouter(t, memory.NewStore())

	w := doJSON(r, http.MethodPost, "/api/status", gin.H{"client_name": "smoke-test"})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[domain.StatusCheck](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "smoke-test", created.ClientName)

	w = doJSON(r, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode[[]domain.StatusCheck](t, w)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestUtilityDonation_AmountAndRoundTrip(t *testing.T) {
	r := setupRouter(t, memory.NewStore())

	// Arrange / Act
	w := doJSON(r, http.MethodPost, "/api/utility-donation/request", gin.H{
		"service_number": "123456789012", "user_name": "María", "phone": "5512345678", "is_first_time": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[domain.UtilityDonationRequest](t, w)

	w = doJSON(r, http.MethodPost, "/api/utility-donation/request", gin.H{
		"service_number": "123456789012", "user_name": "María", "phone": "5512345678", "is_first_time": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	repeat := decode[domain.UtilityDonationRequest](t, w)

	// Assert
	assert.Equal(t, 10.0, first.DonationAmount)
	assert.Equal(t, 20.0, repeat.DonationAmount)
	assert.Equal(t, "pending", first.Status)

	w = doJSON(r, http.MethodGet, "/api/utility-donation/requests", nil)
	listed := decode[[]domain.UtilityDonationRequest](t, w)
	require.Len(t, listed, 2)
	assert.Equal(t, first, listed[0])
	assert.Equal(t, repeat, listed[1])
}

func TestUtilityDonation_FirstTimeDefaultsToTrue(t *testing.T) {
	r := setupRouter(t, memory.NewStore())

	w := doJSON(r, http.MethodPost, "/api/cfe/request", gin.H{
		"service_number": "1", "user_name": "Ana", "phone": "5",
	})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[domain.UtilityDonationRequest](t, w)
	assert.True(t, got.IsFirstTime)
	assert.Equal(t, 10.0, got.DonationAmount)
}

func TestUtilityDonation_VerifyTwiceAndUnknown(t *testing.T) {
	r := setupRouter(t, memory.NewStore())

	w := doJSON(r, http.MethodPost, "/api/utility-donation/request", gin.H{
		"service_number": "1", "user_name": "Ana", "phone": "5", "is_first_time": true,
	})
	created := decode[domain.UtilityDonationRequest](t, w)

	for i := 0; i < 2; i++ {
		w = doJSON(r, http.MethodPut, "/api/utility-donation/request/"+created.ID+"/verify", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Request verified successfully"}`, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/utility-donation/requests", nil)
	listed := decode[[]domain.UtilityDonationRequest](t, w)
	assert.Equal(t, "verified", listed[0].Status)

	w = doJSON(r, http.MethodPut, "/api/utility-donation/request/nope/verify", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Solicitud no encontrada","code":"not_found"}`, w.Body.String())
}

func TestCertificates(t *testing.T) {
	r := setupRouter(t, memory.NewStore())

	w := doJSON(r, http.MethodPost, "/api/certificates/request", gin.H{
		"user_name": "Ana", "phone": "5", "certificate_type": "SEP",
	})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[domain.CertificateRequest](t, w)
	assert.Equal(t, 80.0, got.DonationAmount)
	assert.False(t, got.DonationPaid)

	w = doJSON(r, http.MethodGet, "/api/certificates/links", nil)
	require.Equal(t, http.StatusOK, w.Code)
	links := decode[map[string]string](t, w)
	assert.Len(t, links, 4)
	assert.Equal(t, "https://www.gob.mx/sep", links["SEP"])
}

func TestFiscal_CURPNormalizationAndRejection(t *testing.T) {
	store := memory.NewStore()
	r := setupRouter(t, store)

	w := doJSON(r, http.MethodPost, "/api/fiscal/request", gin.H{
		"curp": "abcd123456hdfghi01", "user_name": "Ana", "phone": "5",
	})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[domain.FiscalRequest](t, w)
	assert.Equal(t, "ABCD123456HDFGHI01", got.CURP)

	w = doJSON(r, http.MethodPost, "/api/fiscal/request", gin.H{
		"curp": "INVALID123", "user_name": "Ana", "phone": "5",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errBody := decode[map[string]string](t, w)
	assert.Equal(t, "invalid_format", errBody["code"])
	assert.NotEmpty(t, errBody["detail"])

	// el rechazo no escribe nada
	n, _ := store.Count(context.Background(), domain.CollectionFiscal)
	assert.Equal(t, int64(1), n)
}

func TestFiscal_Guides(t *testing.T) {
	r := setupRouter(t, memory.NewStore())

	for _, path := range []string{"/api/fiscal/guide", "/api/fiscal/sat-guide"} {
		w := doJSON(r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		guide := decode[reference.SATGuide](t, w)
		assert.Len(t, guide.Steps, 5)
		assert.NotEmpty(t, guide.SATURL)
	}
}

func TestInvoice_Verify(t *testing.T) {
	store := memory.NewStore()
	r := setupRouter(t, store)

	w := doJSON(r, http.MethodPost, "/api/invoice/verify", gin.H{"xml_content": "<?xml version='1.0'?><cfdi>test</cfdi>"})
	require.Equal(t, http.StatusOK, w.Code)
	result := decode[domain.VerificationResult](t, w)
	assert.True(t, result.IsValid)
	assert.Equal(t, "Activo", result.Status)
	assert.Equal(t, "XAXX010101000", result.RFCEmisor)
	assert.Equal(t, []string{"Este es un ejemplo de verificación"}, result.Warnings)

	w = doJSON(r, http.MethodPost, "/api/cfdi/verify", gin.H{"xml_content": "not xml"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	docs, _ := store.Find(context.Background(), domain.CollectionInvoices, 10)
	require.Len(t, docs, 1)
	assert.NotEmpty(t, docs[0]["user_ip"])
}

func TestInvoice_StoreFailureIsInternalError(t *testing.T) {
	store := new(mocks.MockRecordStore)
	store.On("Insert", mock.Anything, domain.CollectionInvoices, mock.Anything).Return(errors.New("db down"))
	r := setupRouter(t, store)

	w := doJSON(r, http.MethodPost, "/api/invoice/verify", gin.H{"xml_content": "<?xml version='1.0'?><cfdi/>"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestInvoice_FraudGuide(t *testing.T) {
	r := setupRouter(t, memory.NewStore())

	w := doJSON(r, http.MethodGet, "/api/invoice/fraud-guide", nil)
	require.Equal(t, http.StatusOK, w.Code)
	guide := decode[reference.FraudGuide](t, w)
	assert.Len(t, guide.CommonFrauds, 4)
	assert.Contains(t, guide.OfficialLinks, "rfc_validation")
}

func TestTramites(t *testing.T) {
	store := memory.NewStore()
	r := setupRouter(t, store)

	w := doJSON(r, http.MethodPost, "/api/tramites/download", gin.H{"document_type": "CURP"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Download registered for CURP"}`, w.Body.String())

	n, _ := store.Count(context.Background(), domain.CollectionDownloads)
	assert.Equal(t, int64(1), n)

	w = doJSON(r, http.MethodGet, "/api/tramites/documents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	docs := decode[reference.DocumentList](t, w)
	assert.Len(t, docs.Formats, 5)
}

func TestContact(t *testing.T) {
	r := setupRouter(t, memory.NewStore())

	w := doJSON(r, http.MethodPost, "/api/contact/message", gin.H{
		"name": "Ana", "email": "ana@example.com", "phone": "5", "message": "Necesito ayuda",
	})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[domain.ContactMessage](t, w)
	assert.Equal(t, "Necesito ayuda", got.Message)

	w = doJSON(r, http.MethodGet, "/api/contact/info", nil)
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[reference.ContactInfo](t, w)
	assert.Equal(t, "525659952408", info.WhatsApp)
	assert.Equal(t, "luisgomez92ux5@gmail.com", info.Email)
}

func TestSocialSecurityWeeks(t *testing.T) {
	r := setupRouter(t, memory.NewStore())
	valid := gin.H{
		"nss": "12345678901", "curp": "goml920101hdfrrs09", "user_name": "Don José",
		"birth_date": "01/02/1950", "phone": "5",
	}

	w := doJSON(r, http.MethodPost, "/api/social-security-weeks/request", valid)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[domain.SocialSecurityWeeksRequest](t, w)
	assert.Equal(t, "GOML920101HDFRRS09", got.CURP)
	assert.Equal(t, "pending", got.Status)

	tests := []struct {
		name  string
		field string
		value string
	}{
		{"nss corto", "nss", "1234"},
		{"curp inválida", "curp", "INVALID123"},
		{"fecha con guiones", "birth_date", "01-02-1950"},
		{"nss vacío", "nss", ""},
		{"curp vacía", "curp", ""},
		{"fecha vacía", "birth_date", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := gin.H{}
			for k, v := range valid {
				body[k] = v
			}
			body[tt.field] = tt.value

			w := doJSON(r, http.MethodPost, "/api/imss/semanas/request", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	w = doJSON(r, http.MethodGet, "/api/imss/semanas/requests", nil)
	listed := decode[[]domain.SocialSecurityWeeksRequest](t, w)
	assert.Len(t, listed, 1)

	w = doJSON(r, http.MethodGet, "/api/social-security-weeks/guide", nil)
	require.Equal(t, http.StatusOK, w.Code)
	guide := decode[reference.SocialSecurityGuide](t, w)
	assert.NotEmpty(t, guide.WhatYouNeed)
}

func TestEmailRecovery(t *testing.T) {
	r := setupRouter(t, memory.NewStore())
	valid := gin.H{
		"email_to_recover": "abuela@hotmail.com", "user_name": "Doña Rosa", "birth_date": "10/10/1945",
		"phone": "5", "curp": "goml920101mdfrrs09", "email_provider": "Outlook",
	}

	w := doJSON(r, http.MethodPost, "/api/email-recovery/request", valid)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[domain.EmailRecoveryRequest](t, w)
	assert.Equal(t, "GOML920101MDFRRS09", got.CURP)
	assert.Equal(t, "", got.AdditionalInfo)

	bad := gin.H{}
	for k, v := range valid {
		bad[k] = v
	}
	bad["email_to_recover"] = "abuela-sin-arroba"
	w = doJSON(r, http.MethodPost, "/api/email/recovery/request", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/api/email/recovery/guide", nil)
	require.Equal(t, http.StatusOK, w.Code)
	guide := decode[reference.EmailRecoveryGuide](t, w)
	assert.Contains(t, guide.EmailProviders, "gmail")
	assert.NotEmpty(t, guide.ImportantSecurity)

	w = doJSON(r, http.MethodGet, "/api/email-recovery/requests", nil)
	assert.Len(t, decode[[]domain.EmailRecoveryRequest](t, w), 1)
}

func TestEmptyFormattedFieldIsBadRequest(t *testing.T) {
	store := memory.NewStore()
	r := setupRouter(t, store)

	tests := []struct {
		name string
		path string
		body gin.H
	}{
		{"curp vacía", "/api/fiscal/request", gin.H{"curp": "", "user_name": "Ana", "phone": "5"}},
		{"curp ausente", "/api/fiscal/request", gin.H{"user_name": "Ana", "phone": "5"}},
		{"xml vacío", "/api/invoice/verify", gin.H{"xml_content": ""}},
		{"correo vacío", "/api/email-recovery/request", gin.H{
			"email_to_recover": "", "user_name": "Rosa", "birth_date": "10/10/1945",
			"phone": "5", "curp": "goml920101mdfrrs09", "email_provider": "Outlook",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid_format", decode[map[string]string](t, w)["code"])
		})
	}

	for _, c := range []string{domain.CollectionFiscal, domain.CollectionInvoices, domain.CollectionEmailRecovery} {
		n, _ := store.Count(context.Background(), c)
		assert.Zero(t, n, c)
	}
}

func TestMalformedBodyIsUnprocessable(t *testing.T) {
	r := setupRouter(t, memory.NewStore())

	w := doJSON(r, http.MethodPost, "/api/contact/message", "{not json")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(r, http.MethodPost, "/api/fiscal/request", gin.H{"curp": "ABCD123456HDFGHI01", "user_name": "Ana"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "unprocessable_entity", decode[map[string]string](t, w)["code"])
}

func TestListStoreFailure(t *testing.T) {
	store := new(mocks.MockRecordStore)
	store.On("Find", mock.Anything, domain.CollectionCertificates, mock.Anything).Return(nil, errors.New("db down"))
	r := setupRouter(t, store)

	w := doJSON(r, http.MethodGet, "/api/certificates/requests", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", decode[map[string]string](t, w)["code"])
}

func TestVerifyStoreFailure(t *testing.T) {
	store := new(mocks.MockRecordStore)
	store.On("Update", mock.Anything, domain.CollectionUtilityDonations, "abc", mock.Anything).Return(int64(0), errors.New("db down"))
	r := setupRouter(t, store)

	w := doJSON(r, http.MethodPut, "/api/cfe/request/abc/verify", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
