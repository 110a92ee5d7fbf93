package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/booking-board/kds"
	"github.com/yeremiapane/booking-board/models"
	"github.com/yeremiapane/booking-board/services"
	"github.com/yeremiapane/booking-board/utils"
)

type BookingController struct {
	Board *services.BookingBoard
}

func NewBookingController(board *services.BookingBoard) *BookingController {
	return &BookingController{Board: board}
}

// GetAllBookings -> list booking dengan filter tab/search.
// Search yang terisi mem-bypass filter tab (precedence board).
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	opts := services.FilterOptions{Search: c.Query("search")}

	if tab := c.Query("tab"); tab != "" {
		group := models.StatusGroup(tab)
		if !group.Valid() {
			utils.RespondError(c, http.StatusBadRequest, ErrUnknownTab)
			return
		}
		opts.Tab = group
		opts.TabActive = true
	}

	bookings := bc.Board.Filter(opts)
	if c.DefaultQuery("sort", "time") == "time" {
		bookings = services.SortByTime(bookings)
	}

	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

// GetBookingByID -> detail satu booking plus tombol aksi yang disarankan
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	bookingID := c.Param("booking_id")

	booking, ok := bc.Board.Get(bookingID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, services.ErrBookingNotFound)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking detail", gin.H{
		"booking": booking,
		"group":   models.GroupOf(booking.Status),
		"actions": models.GuidedActionsFor(booking.Status),
	})
}

// CreateBooking -> buat booking baru (status awal 'new', masuk depan koleksi)
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var draft services.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	booking, err := bc.Board.Save(draft, "")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	kds.BroadcastBookingCreate(booking)
	kds.BroadcastDashboardUpdate(bc.Board.TabCounts())

	utils.InfoLogger.Printf("New booking %s for %s at %s (pax=%d)",
		booking.ID, booking.CustomerName, booking.Time, booking.Pax)
	utils.RespondJSON(c, http.StatusCreated, "Booking created successfully", booking)
}

// UpdateBooking -> merge draft ke booking yang ada; id dan status tidak berubah
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")

	var draft services.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	booking, err := bc.Board.Save(draft, bookingID)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	kds.BroadcastBookingUpdate(booking)
	utils.RespondJSON(c, http.StatusOK, "Booking updated", booking)
}

// UpdateBookingStatus -> pindahkan booking ke kolom status lain.
// Drag-and-drop di board dan tombol aksi dua-duanya memanggil endpoint ini.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	bookingID := c.Param("booking_id")

	var body struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	booking, err := bc.Board.Transition(bookingID, body.Status)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	kds.BroadcastBookingUpdate(booking)
	kds.BroadcastDashboardUpdate(bc.Board.TabCounts())

	utils.InfoLogger.Printf("Booking %s moved to %s", booking.ID, booking.Status)
	utils.RespondJSON(c, http.StatusOK, "Booking status updated", booking)
}

// GetBookingAdvisory -> cek non-blocking untuk form create/edit:
// duplikat nomor telepon dan ketersediaan slot. Dipanggil ulang tiap
// ketikan berubah di sisi client.
func (bc *BookingController) GetBookingAdvisory(c *gin.Context) {
	phone := c.Query("phone")
	editingID := c.Query("editing_id")
	timeSlot := c.Query("time")
	pax, _ := strconv.Atoi(c.DefaultQuery("pax", "2"))
	area := models.Area(c.Query("area"))

	var duplicate *models.Booking
	if match, found := bc.Board.CheckDuplicatePhone(phone, editingID); found {
		duplicate = &match
	}

	slot := services.SlotAvailability{Available: true, Suggestions: []string{}}
	if timeSlot != "" {
		slot = bc.Board.CheckSlot(timeSlot, pax, area)
	}

	utils.RespondJSON(c, http.StatusOK, "Booking advisory", gin.H{
		"duplicate": duplicate,
		"slot":      slot,
	})
}

// GetBookingStats -> jumlah booking per tab group untuk badge
func (bc *BookingController) GetBookingStats(c *gin.Context) {
	counts := bc.Board.TabCounts()

	total := 0
	for _, n := range counts {
		total += n
	}

	utils.RespondJSON(c, http.StatusOK, "Booking stats", gin.H{
		"groups": counts,
		"total":  total,
	})
}
