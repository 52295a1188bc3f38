package routes

import (
	"github.com/code1iners/ce1pers/internal/service/login"

	"github.com/gin-gonic/gin"
)

func SetupLogin(r *gin.Engine, h *login.Handler) {
	r.GET("/providers", h.ProvidersHandler())

	auth := r.Group("/auth")
	{
		auth.GET("/:provider", h.RedirectHandler())
		auth.GET("/:provider/url", h.AuthURLHandler())
		auth.POST("/state/consume", h.ConsumeStateHandler())
	}
}
