package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davicafu/humanidadunida/internal/requests/application"
	"github.com/davicafu/humanidadunida/pkg/utils"
)

// IntakeHandler expone Create y List para un tipo de solicitud.
type IntakeHandler[In any, E any] struct {
	service *application.IntakeService[In, E]
	log     *zap.Logger
	// enrich completa la entrada con datos de la petición (p. ej. la IP de origen).
	enrich func(*gin.Context, *In)
	// present decide qué se devuelve al crear; por defecto el registro completo.
	present func(E) interface{}
}

func NewIntakeHandler[In any, E any](service *application.IntakeService[In, E], log *zap.Logger) *IntakeHandler[In, E] {
	return &IntakeHandler[In, E]{service: service, log: log}
}

func (h *IntakeHandler[In, E]) WithEnrich(fn func(*gin.Context, *In)) *IntakeHandler[In, E] {
	h.enrich = fn
	return h
}

func (h *IntakeHandler[In, E]) WithPresenter(fn func(E) interface{}) *IntakeHandler[In, E] {
	h.present = fn
	return h
}

// Create endpoint POST
func (h *IntakeHandler[In, E]) Create(c *gin.Context) {
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	if h.enrich != nil {
		h.enrich(c, &in)
	}

	record, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if h.present != nil {
		utils.SendSuccess(c, http.StatusOK, h.present(record))
		return
	}
	utils.SendSuccess(c, http.StatusOK, record)
}

// List endpoint GET
func (h *IntakeHandler[In, E]) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	utils.SendSuccess(c, http.StatusOK, records)
}
