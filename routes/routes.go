package routes

import (
	"net/http"
	"time"

	"meetwise/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterScheduleRoutes sets up the endpoints for the scheduling engine.
func RegisterScheduleRoutes(r *gin.Engine) {
	r.POST("/receive", handlers.ReceiveMeetingRequest)

	recordGroup := r.Group("/api/records")
	{
		recordGroup.GET("", handlers.ListScheduleRecords)
		recordGroup.GET("/:requestID", handlers.GetScheduleRecord)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthCheck)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Meetwise"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r)
	RegisterHealthRoute(r)
}
