package routes

import (
	"net/http"

	"github.com/code1iners/ce1pers/internal/app/health"

	"github.com/gin-gonic/gin"
)

func SetupInfra(r *gin.Engine, hc *health.Checker, metricsHandler http.Handler) {
	r.GET("/metrics", gin.WrapH(metricsHandler))
	r.GET("/healthz", hc.Liveness)
	r.GET("/readyz", hc.Readiness)
}
