package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"roombooking/internal/config"
	"roombooking/internal/database"
	"roombooking/internal/middleware"
	"roombooking/internal/modules/booking"
	"roombooking/internal/modules/events"
	"roombooking/internal/modules/room"
	jwtsvc "roombooking/internal/pkg/jwt"
	"roombooking/internal/pkg/response"
	"roombooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	uow := repository.NewUnitOfWork(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := events.NewHub()
	defer hub.Close()
	publisher := events.NewPublisher(hub, logger)
	eventsHandler := events.NewHandler(hub)

	bookingService := booking.NewService(bookingRepo, roomRepo, uow, publisher, logger)
	bookingHandler := booking.NewHandler(bookingService)

	roomService := room.NewService(roomRepo, bookingRepo, logger)
	roomHandler := room.NewHandler(roomService)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	eventsHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		// public
		v1.POST("/auth/token", issueToken(cfg, j))
		roomHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)

		// protected (mutating endpoints)
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			roomHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

type tokenRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	APIKey   string `json:"api_key" binding:"required"`
}

// issueToken exchanges a client id and API key for a bearer token. The key is
// checked against the configured bcrypt hash; the plaintext is never stored.
func issueToken(cfg *config.Config, jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
			return
		}

		if cfg.APIKeyHash == "" ||
			bcrypt.CompareHashAndPassword([]byte(cfg.APIKeyHash), []byte(req.APIKey)) != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid API key")
			return
		}

		token, err := jwt.GenerateToken(req.ClientID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token")
			return
		}

		response.Success(c, http.StatusOK, gin.H{"token": token})
	}
}
