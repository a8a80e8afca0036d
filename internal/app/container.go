package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/hotel-backend/internal/api"
	"github.com/nekogravitycat/hotel-backend/internal/auth"
	"github.com/nekogravitycat/hotel-backend/internal/booking"
	"github.com/nekogravitycat/hotel-backend/internal/feedback"
	"github.com/nekogravitycat/hotel-backend/internal/guest"
	"github.com/nekogravitycat/hotel-backend/internal/invoice"
	"github.com/nekogravitycat/hotel-backend/internal/loyalty"
	"github.com/nekogravitycat/hotel-backend/internal/payment"
	"github.com/nekogravitycat/hotel-backend/internal/room"
	"github.com/nekogravitycat/hotel-backend/internal/servicerequest"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	JWTSecret         string
	JWTTTL            time.Duration
	StaffEmail        string
	StaffPasswordHash string
	BcryptCost        int
	Logger            *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	authenticator := auth.NewStaffAuthenticator(cfg.StaffEmail, cfg.StaffPasswordHash, passwordHasher, jwtManager)

	// Room Module
	roomRepo := room.NewMemRepository()
	roomService := room.NewService(roomRepo)

	// Guest Module
	guestRepo := guest.NewMemRepository()
	guestService := guest.NewService(guestRepo)

	// Loyalty Module
	loyaltyRepo := loyalty.NewMemRepository()
	loyaltyService := loyalty.NewService(loyaltyRepo, guestService, logger.Named("loyalty"))

	// Booking Module
	bookingRepo := booking.NewMemRepository()
	bookingService := booking.NewService(bookingRepo, guestService, roomService, logger.Named("booking"))

	// Invoice Module
	invoiceRepo := invoice.NewMemRepository()
	invoiceService := invoice.NewService(invoiceRepo, bookingService)

	// Payment Module
	paymentRepo := payment.NewMemRepository()
	paymentService := payment.NewService(paymentRepo, invoiceService)

	// Service Request Module
	srRepo := servicerequest.NewMemRepository()
	srService := servicerequest.NewService(srRepo, bookingService)

	// Feedback Module
	feedbackRepo := feedback.NewMemRepository()
	feedbackService := feedback.NewService(feedbackRepo, guestService)

	// API Router Config
	routerParams := api.Config{
		IsProduction:          cfg.IsProduction,
		ProdOrigins:           cfg.ProdOrigins,
		Logger:                logger.Named("http"),
		RoomService:           roomService,
		GuestService:          guestService,
		BookingService:        bookingService,
		InvoiceService:        invoiceService,
		PaymentService:        paymentService,
		ServiceRequestService: srService,
		FeedbackService:       feedbackService,
		LoyaltyService:        loyaltyService,
		Authenticator:         authenticator,
		JWTManager:            jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
