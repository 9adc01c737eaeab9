package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adhithya/nexushub-backend/handlers"
	"github.com/adhithya/nexushub-backend/initializers"
	"github.com/adhithya/nexushub-backend/jobs"
	"github.com/adhithya/nexushub-backend/middleware"
	"github.com/adhithya/nexushub-backend/routes"
	"github.com/adhithya/nexushub-backend/store"
)

func main() {
	cfg := initializers.LoadConfig()

	records, err := store.NewRecords(cfg.DBPath())
	if err != nil {
		log.Fatalf("Failed to initialize record store: %v", err)
	}
	if err := records.SeedIfEmpty(); err != nil {
		log.Fatalf("Failed to seed record store: %v", err)
	}

	blobs, err := store.NewBlobs(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	// Collect blobs stranded by a crash between blob write and record commit
	jobs.StartOrphanSweep(records, blobs)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(
		middleware.RateLimitMiddleware(),
	)

	// Uploaded binaries are served directly from the blob dir
	router.Static("/uploads", cfg.UploadDir)

	h := handlers.New(records, blobs, cfg.PublicBaseURL)
	routes.RegisterFileRoutes(router, h)

	log.Printf("Nexus Hub backend running on http://localhost:%s", cfg.Port)
	log.Printf("Upload directory: %s", cfg.UploadDir)
	log.Printf("Database file: %s", cfg.DBPath())
	log.Fatal(router.Run(":" + cfg.Port))
}
