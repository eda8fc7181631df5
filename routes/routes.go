package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"avion/handlers"
	"avion/middleware"
)

// RegisterChatRoutes registers the conversational endpoints.
func RegisterChatRoutes(r *gin.Engine, chatHandler *handlers.ChatHandler) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", chatHandler.Converse)
		api.DELETE("", chatHandler.DeleteChat)
	}
}

// RegisterReservationRoutes registers reservation lookup and the payment
// callback used by the payment form.
func RegisterReservationRoutes(r *gin.Engine, reservationHandler *handlers.ReservationHandler) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/:id", reservationHandler.GetReservation)
		api.POST("/:id/payment", reservationHandler.CompletePayment)
	}
}

// RegisterSessionRoutes registers the development session endpoints.
func RegisterSessionRoutes(r *gin.Engine) {
	api := r.Group("/api/session")
	{
		api.POST("", handlers.IssueSession)
		api.DELETE("", handlers.RevokeSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Avion"})
	})
}

// CORSMiddleware returns the CORS policy for browser clients.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}

// SetupRoutes wires every route group onto the router.
func SetupRoutes(r *gin.Engine, chatHandler *handlers.ChatHandler, reservationHandler *handlers.ReservationHandler) {
	r.Use(CORSMiddleware())
	RegisterHealthRoute(r)
	RegisterSessionRoutes(r)
	RegisterChatRoutes(r, chatHandler)
	RegisterReservationRoutes(r, reservationHandler)
}
