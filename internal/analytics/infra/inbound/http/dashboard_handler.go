package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davicafu/humanidadunida/internal/analytics/application"
	"github.com/davicafu/humanidadunida/pkg/utils"
)

type DashboardHandler struct {
	service *application.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service *application.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, log: log}
}

// Dashboard endpoint GET /analytics/dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	d, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		utils.SendInternalServerError(c, "No se pudieron calcular las estadísticas")
		return
	}
	utils.SendSuccess(c, http.StatusOK, d)
}

func RegisterAnalyticsRoutes(r gin.IRouter, handler *DashboardHandler) {
	r.GET("/analytics/dashboard", handler.Dashboard)
}
