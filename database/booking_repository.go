package database

import (
	"github.com/yeremiapane/booking-board/models"
	"gorm.io/gorm"
)

// BookingRepository adalah adapter gorm untuk persistence boundary board:
// load/save seluruh koleksi sekaligus. Save mengganti isi tabel dengan
// snapshot terbaru (mutasi board selalu whole-collection replacement).
type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) Load() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.DB.Order("position asc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) Save(bookings []models.Booking) error {
	for i := range bookings {
		bookings[i].Position = i
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if len(bookings) == 0 {
			return nil
		}
		return tx.Create(&bookings).Error
	})
}
