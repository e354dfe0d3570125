package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	analyticsHttp "github.com/davicafu/humanidadunida/internal/analytics/infra/inbound/http"
	"github.com/davicafu/humanidadunida/internal/config"
	requestsHttp "github.com/davicafu/humanidadunida/internal/requests/infra/inbound/http"
	"github.com/davicafu/humanidadunida/internal/shared/infra/http/middleware"
)

const healthPingTimeout = 2 * time.Second

// Pinger comprueba que el store responde. Opcional para /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Routes agrupa los handlers que el servidor expone.
type Routes struct {
	Requests  *requestsHttp.Handlers
	Dashboard *analyticsHttp.DashboardHandler
	Store     Pinger
}

// NewRouter monta el engine de gin: middlewares, CORS, /health, /metrics y las rutas
// de la API bajo el prefijo configurado.
func NewRouter(cfg *config.Config, log *zap.Logger, routes Routes) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Default(log)...)
	router.Use(cors.New(corsConfig(cfg)))

	router.GET("/health", health(routes.Store))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group(cfg.APIPrefix)
	requestsHttp.RegisterRequestRoutes(api, routes.Requests)
	analyticsHttp.RegisterAnalyticsRoutes(api, routes.Dashboard)

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.DefaultConfig()
	cc.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cc.AllowHeaders = []string{"*"}
	cc.ExposeHeaders = []string{middleware.RequestIDHeader}
	if cfg.AllowAllOrigins() {
		cc.AllowAllOrigins = true
		return cc
	}
	cc.AllowOrigins = cfg.CORSOrigins
	cc.AllowCredentials = true
	return cc
}

func health(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": "ok"})
	}
}

// Server envuelve el http.Server con apagado ordenado.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	log             *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.HTTPPort,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             log,
	}
}

// Run arranca el servidor y bloquea hasta SIGINT/SIGTERM, cancelación de ctx
// o un fallo de ListenAndServe. Después apaga con el timeout configurado.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("🚀 Server running", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		s.log.Info("Señal de apagado recibida", zap.String("signal", sig.String()))
	case <-ctx.Done():
		s.log.Info("Contexto cancelado, apagando servidor")
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	s.log.Info("🛑 Servidor HTTP detenido")
	return nil
}
