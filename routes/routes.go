package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharath018/travel-agency-backend/config"
	"github.com/sharath018/travel-agency-backend/internal/auditlog"
	"github.com/sharath018/travel-agency-backend/internal/booking"
	"github.com/sharath018/travel-agency-backend/internal/catalog"
	"github.com/sharath018/travel-agency-backend/internal/destination"
	"github.com/sharath018/travel-agency-backend/internal/hotel"
	"github.com/sharath018/travel-agency-backend/internal/tour"
	"github.com/sharath018/travel-agency-backend/internal/umrah"
	"github.com/sharath018/travel-agency-backend/middleware"
	"github.com/sharath018/travel-agency-backend/utils"
)

func Setup(r *gin.Engine, cfg *config.Config, db *gorm.DB) {
	// Upstream catalog client shared by all catalog repositories.
	client := catalog.NewClient(cfg.CatalogAPIBaseURL)

	// Catalog: repositories -> services -> handlers
	tourRepo := tour.NewRepository(client)
	tourSvc := tour.NewService(tourRepo)
	tourHandler := tour.NewHandler(tourSvc)

	hotelRepo := hotel.NewRepository(client)
	hotelSvc := hotel.NewService(hotelRepo)
	hotelHandler := hotel.NewHandler(hotelSvc)

	umrahRepo := umrah.NewRepository(client)
	umrahSvc := umrah.NewService(umrahRepo)
	umrahHandler := umrah.NewHandler(umrahSvc)

	destinationRepo := destination.NewRepository(client)
	destinationHandler := destination.NewHandler(destinationRepo)

	// Audit
	auditRepo := auditlog.NewRepository(db)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// Booking wizard
	draftTTL := time.Duration(cfg.DraftTTLMinutes) * time.Minute
	draftStore := booking.NewRedisDraftStore(utils.GetRedisClient(), draftTTL)
	bookingRepo := booking.NewRepository(db)
	resolver := booking.NewCatalogResolver(tourSvc, hotelSvc, umrahSvc)
	bookingSvc := booking.NewService(draftStore, bookingRepo, resolver, auditSvc)
	bookingHandler := booking.NewHandler(bookingSvc, booking.NewExporter())

	// ✅ Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())

	// 🗺️ Catalog
	api.GET("/tours", tourHandler.ListTours)
	api.GET("/tours/:slug", tourHandler.GetTourBySlug)
	api.GET("/hotels", hotelHandler.ListHotels)
	api.GET("/hotels/:slug", hotelHandler.GetHotelBySlug)
	api.GET("/umrah", umrahHandler.ListPackages)
	api.GET("/umrah/:slug", umrahHandler.GetPackageBySlug)
	api.GET("/destinations", destinationHandler.ListDestinations)

	// 🧳 Booking wizard
	drafts := api.Group("/bookings/drafts")
	{
		drafts.POST("", bookingHandler.CreateDraft)
		drafts.GET("/:id", bookingHandler.GetDraft)
		drafts.PATCH("/:id", bookingHandler.UpdateDraft)
		drafts.POST("/:id/next", bookingHandler.NextStep)
		drafts.POST("/:id/back", bookingHandler.PreviousStep)
		drafts.GET("/:id/summary", bookingHandler.GetSummary)
		drafts.POST("/:id/submit", bookingHandler.SubmitDraft)
		drafts.DELETE("/:id", bookingHandler.DiscardDraft)
	}

	// 🗂️ Back office
	api.GET("/bookings", bookingHandler.ListBookings)
	api.GET("/bookings/export", bookingHandler.ExportBookings)
	api.GET("/bookings/:reference", bookingHandler.GetBooking)
	api.GET("/bookings/:reference/voucher", bookingHandler.GetVoucher)
	api.GET("/auditlogs", auditHandler.ListAuditLogs)
}
