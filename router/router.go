package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/booking-board/controllers"
	"github.com/yeremiapane/booking-board/middlewares"
	"github.com/yeremiapane/booking-board/services"
)

func SetupRouter(db *gorm.DB, board *services.BookingBoard) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter per IP (50 request per detik) harus terpasang sebelum
	// route didaftarkan, gin menangkap handler chain saat registrasi
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Inisialisasi controller
	bookingCtrl := controllers.NewBookingController(board)
	kitchenCtrl := controllers.NewKitchenController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      BOOKING BOARD
	// ----------------------------------------------------------------
	r.GET("/bookings", bookingCtrl.GetAllBookings)
	r.POST("/bookings", bookingCtrl.CreateBooking)
	r.GET("/bookings/advisory", bookingCtrl.GetBookingAdvisory)
	r.GET("/bookings/stats", bookingCtrl.GetBookingStats)
	r.GET("/bookings/:booking_id", bookingCtrl.GetBookingByID)
	r.PATCH("/bookings/:booking_id", bookingCtrl.UpdateBooking)

	// Transisi status dibatasi rate-nya: drag-and-drop bisa nge-spam
	transitions := r.Group("/")
	transitions.Use(middlewares.NewStrictRateLimiter())
	{
		transitions.PATCH("/bookings/:booking_id/status", bookingCtrl.UpdateBookingStatus)
	}

	// ----------------------------------------------------------------
	//                      KITCHEN DISPLAY
	// ----------------------------------------------------------------
	r.GET("/kitchen/display", kitchenCtrl.GetKitchenDisplay)
	r.POST("/kitchen/items/:item_id/toggle", kitchenCtrl.ToggleItemStatus)
	r.POST("/kitchen/tickets/:ticket_id/complete", kitchenCtrl.CompleteTicket)
	r.POST("/kitchen/tickets/:ticket_id/notify", kitchenCtrl.NotifyWaiter)

	// WebSocket endpoint untuk layar display
	r.GET("/ws/:role", controllers.KDSHandler)

	return r
}
