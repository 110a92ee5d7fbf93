package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/yeremiapane/booking-board/config"
	"github.com/yeremiapane/booking-board/database"
	"github.com/yeremiapane/booking-board/models"
	"github.com/yeremiapane/booking-board/router"
	"github.com/yeremiapane/booking-board/services"
	"github.com/yeremiapane/booking-board/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	// Initialize DB
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	// Simpan koneksi database ke utils; router mengambilnya dari sana
	utils.InitDB(db)

	// Set gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	// Board di-hydrate dari repository, slot oracle masih fixture
	board := services.NewBookingBoard(
		database.NewBookingRepository(db),
		services.NewFixedSlotOracle(),
	)
	if err := board.Load(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to load bookings: %v", err)
	}

	// Urgency monitor menghitung ulang timer tiket tiap detik
	monitor := services.NewUrgencyMonitor(db)
	monitor.Interval = 1 * time.Second
	monitor.Start()
	defer monitor.Stop()

	// Setup router (rate limiter per IP terpasang di dalamnya)
	r := router.SetupRouter(utils.GetDB(), board)

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Run server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Booking{},
		&models.OrderTicket{},
		&models.OrderItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	if err := database.SeedBookings(db); err != nil {
		utils.ErrorLogger.Printf("Error seeding bookings: %v", err)
	}
	if err := database.SeedTickets(db); err != nil {
		utils.ErrorLogger.Printf("Error seeding tickets: %v", err)
	}
}
