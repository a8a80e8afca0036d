package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/hotel-backend/internal/auth"
	"github.com/nekogravitycat/hotel-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/hotel-backend/internal/booking/http"
	"github.com/nekogravitycat/hotel-backend/internal/feedback"
	feedbackHttp "github.com/nekogravitycat/hotel-backend/internal/feedback/http"
	"github.com/nekogravitycat/hotel-backend/internal/guest"
	guestHttp "github.com/nekogravitycat/hotel-backend/internal/guest/http"
	"github.com/nekogravitycat/hotel-backend/internal/invoice"
	invoiceHttp "github.com/nekogravitycat/hotel-backend/internal/invoice/http"
	"github.com/nekogravitycat/hotel-backend/internal/loyalty"
	loyaltyHttp "github.com/nekogravitycat/hotel-backend/internal/loyalty/http"
	"github.com/nekogravitycat/hotel-backend/internal/payment"
	paymentHttp "github.com/nekogravitycat/hotel-backend/internal/payment/http"
	"github.com/nekogravitycat/hotel-backend/internal/room"
	roomHttp "github.com/nekogravitycat/hotel-backend/internal/room/http"
	"github.com/nekogravitycat/hotel-backend/internal/servicerequest"
	srHttp "github.com/nekogravitycat/hotel-backend/internal/servicerequest/http"
)

// Config holds the services and settings the router is assembled from.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       *zap.Logger

	RoomService           room.Service
	GuestService          guest.Service
	BookingService        booking.Service
	InvoiceService        invoice.Service
	PaymentService        payment.Service
	ServiceRequestService servicerequest.Service
	FeedbackService       feedback.Service
	LoyaltyService        loyalty.Service

	Authenticator *auth.StaffAuthenticator
	JWTManager    *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - RequestLogger: one structured log line per request.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Front desk UI
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid staff JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := NewAuthHandler(cfg.Authenticator, cfg.JWTManager, cfg.Logger)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	guestHandler := guestHttp.NewHandler(cfg.GuestService)
	loyaltyHandler := loyaltyHttp.NewHandler(cfg.LoyaltyService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	invoiceHandler := invoiceHttp.NewHandler(cfg.InvoiceService)
	paymentHandler := paymentHttp.NewHandler(cfg.PaymentService)
	srHandler := srHttp.NewHandler(cfg.ServiceRequestService)
	feedbackHandler := feedbackHttp.NewHandler(cfg.FeedbackService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware)
		guestHttp.RegisterRoutes(v1, guestHandler, authMiddleware)
		loyaltyHttp.RegisterRoutes(v1, loyaltyHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		invoiceHttp.RegisterRoutes(v1, invoiceHandler, authMiddleware)
		paymentHttp.RegisterRoutes(v1, paymentHandler, authMiddleware)
		srHttp.RegisterRoutes(v1, srHandler, authMiddleware)
		feedbackHttp.RegisterRoutes(v1, feedbackHandler, authMiddleware)
	}

	return r
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
