// en pkg/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Códigos de error estables que acompañan a cada respuesta de error.
const (
	CodeInvalidFormat = "invalid_format"
	CodeUnprocessable = "unprocessable_entity"
	CodeNotFound      = "not_found"
	CodeInternal      = "internal_error"
)

// ErrorResponse define la estructura estándar para las respuestas de error.
// "detail" es el campo que el frontend muestra al usuario.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// SendSuccess envía el payload tal cual, sin envoltorio.
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendMessage envía una respuesta {"message": ...}.
func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// SendError envía una respuesta de error con un formato estandarizado y corta la cadena de handlers.
func SendError(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Detail: message,
		Code:   code,
	})
}

// --- Helpers específicos para errores comunes ---

func SendBadRequest(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, CodeInvalidFormat, message)
}

func SendUnprocessable(c *gin.Context, message string) {
	SendError(c, http.StatusUnprocessableEntity, CodeUnprocessable, message)
}

func SendNotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, CodeNotFound, message)
}

func SendInternalServerError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, CodeInternal, message)
}
