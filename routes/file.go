package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adhithya/nexushub-backend/handlers"
)

func RegisterFileRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")

	api.GET("/health", h.Health)
	api.GET("/files", h.ListFiles)
	api.GET("/files/:id", h.GetFile)
	api.GET("/files/:id/share", h.ShareFile)
	api.GET("/files/:id/qr", h.ShareQR)
	api.POST("/upload", h.UploadFiles)
	api.DELETE("/files/:id", h.DeleteFile)
	api.GET("/external", h.ExternalFiles)
	api.GET("/stats", h.Stats)
}
