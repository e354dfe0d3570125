package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
	"github.com/davicafu/humanidadunida/internal/shared/validation"
	"github.com/davicafu/humanidadunida/pkg/utils"
)

const (
	msgNotFound = "Solicitud no encontrada"
	msgInternal = "Error interno del servidor"
	msgBadBody  = "Datos incompletos o con formato incorrecto"
)

// respondError traduce los errores de los servicios a respuestas HTTP.
// Los errores inesperados se registran y el cliente sólo recibe un mensaje genérico.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	var formatErr *validation.FormatError
	switch {
	case errors.As(err, &formatErr):
		utils.SendBadRequest(c, formatErr.Error())
	case errors.Is(err, sharedDomain.ErrRequestNotFound):
		utils.SendNotFound(c, msgNotFound)
	default:
		log.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		utils.SendInternalServerError(c, msgInternal)
	}
}

// respondBindError se usa cuando el cuerpo no es JSON válido o falta un campo obligatorio.
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	utils.SendUnprocessable(c, msgBadBody)
}
