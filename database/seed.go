package database

import (
	"time"

	"github.com/yeremiapane/booking-board/models"
	"github.com/yeremiapane/booking-board/utils"
	"gorm.io/gorm"
)

// SeedBookings mengisi koleksi awal kalau tabel masih kosong.
// Data fixture ini stand-in untuk backend reservasi yang belum ada.
func SeedBookings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Booking{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	bookings := []models.Booking{
		{ID: "1", CustomerName: "Nguyễn Văn A", Time: "18:00", Pax: 4, Status: models.StatusNew, Phone: "0901234567", Source: models.SourceWebsite},
		{ID: "2", CustomerName: "Trần Thị B", Time: "18:30", Pax: 2, Status: models.StatusWaitingInfo, Notes: models.StringList{"Chưa có SĐT"}, Source: models.SourceFacebook},
		{ID: "3", CustomerName: "Lê Văn C", Time: "19:00", Pax: 8, Status: models.StatusConfirmed, Notes: models.StringList{"Dị ứng tôm"}, Source: models.SourceHotline},
		{ID: "4", CustomerName: "Phạm Thị D", Time: "19:15", Pax: 6, Status: models.StatusArrived, Source: models.SourceWalkIn},
		{ID: "5", CustomerName: "Hoàng Văn E", Time: "12:00", Pax: 10, Status: models.StatusCompleted, Source: models.SourceOTA},
		{ID: "6", CustomerName: "Vũ Thị F", Time: "20:00", Pax: 2, Status: models.StatusChangeRequested, Notes: models.StringList{"Xin đổi sang 20:30"}, Source: models.SourceWebsite},
		{ID: "7", CustomerName: "Đặng Văn G", Time: "18:45", Pax: 5, Status: models.StatusConfirmed, Source: models.SourceHotline},
		{ID: "8", CustomerName: "Bùi Thị H", Time: "19:30", Pax: 4, Status: models.StatusNew, Source: models.SourceFacebook},
		{ID: "9", CustomerName: "Ngô Văn I", Time: "18:00", Pax: 2, Status: models.StatusNoShow, Source: models.SourceWebsite},
	}
	for i := range bookings {
		bookings[i].Position = i
		if bookings[i].Notes == nil {
			bookings[i].Notes = models.StringList{}
		}
	}

	if err := db.Create(&bookings).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d bookings", len(bookings))
	return nil
}

// SeedTickets mengisi tiket dapur awal kalau tabel masih kosong
func SeedTickets(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.OrderTicket{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	tickets := []models.OrderTicket{
		{
			TableLabel:    "Bàn 1",
			OrderTime:     now.Add(-5 * time.Minute),
			Status:        "pending",
			BookingStatus: models.StatusConfirmed,
			Items: []models.OrderItem{
				{Name: "Súp bí đỏ", Quantity: 2, Status: models.ItemDone, Category: models.CategoryAppetizer, Notes: models.StringList{}},
				{Name: "Bò bít tết (Medium Rare)", Quantity: 2, Status: models.ItemCooking, Category: models.CategoryMain, Notes: models.StringList{"Sốt tiêu đen", "Không hành tây"}},
			},
		},
		{
			TableLabel:    "VIP 2",
			OrderTime:     now.Add(-12 * time.Minute),
			Status:        "pending",
			BookingStatus: models.StatusPending,
			Items: []models.OrderItem{
				{Name: "Salad Caesar", Quantity: 1, Status: models.ItemPending, Category: models.CategoryAppetizer, Notes: models.StringList{}},
				{Name: "Cá hồi áp chảo", Quantity: 1, Status: models.ItemPending, Category: models.CategoryMain, Notes: models.StringList{"DỊ ỨNG ĐẬU PHỘNG"}},
				{Name: "Mỳ Ý Carbonara", Quantity: 1, Status: models.ItemPending, Category: models.CategoryMain, Notes: models.StringList{}},
			},
		},
		{
			TableLabel:    "Bàn 5",
			OrderTime:     now.Add(-2 * time.Minute),
			Status:        "pending",
			BookingStatus: models.StatusConfirmed,
			Items: []models.OrderItem{
				{Name: "Gà nướng mật ong", Quantity: 1, Status: models.ItemPending, Category: models.CategoryMain, Notes: models.StringList{}},
				{Name: "Khoai tây chiên", Quantity: 1, Status: models.ItemPending, Category: models.CategoryAppetizer, Notes: models.StringList{"Ít muối"}},
			},
		},
		{
			TableLabel:    "Bàn 7",
			OrderTime:     now.Add(-18 * time.Minute),
			Status:        "pending",
			BookingStatus: models.StatusArrived,
			Items: []models.OrderItem{
				{Name: "Lẩu hải sản (Lớn)", Quantity: 1, Status: models.ItemCooking, Category: models.CategoryMain, Notes: models.StringList{"Cay nhiều"}},
				{Name: "Rau thêm", Quantity: 2, Status: models.ItemDone, Category: models.CategoryMain, Notes: models.StringList{}},
			},
		},
	}

	if err := db.Create(&tickets).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Seeded %d kitchen tickets", len(tickets))
	return nil
}
