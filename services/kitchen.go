package services

import (
	"math"
	"sort"
	"time"

	"github.com/yeremiapane/booking-board/models"
)

type Urgency string

const (
	UrgencyNormal   Urgency = "normal"
	UrgencyWarning  Urgency = "warning"
	UrgencyCritical Urgency = "critical"
)

const (
	warningThresholdMinutes  = 10
	criticalThresholdMinutes = 15
)

// ElapsedMinutes menghitung menit penuh sejak order masuk (floor, bukan
// truncate: order yang masih di masa depan menghasilkan nilai negatif)
func ElapsedMinutes(orderTime, now time.Time) int {
	return int(math.Floor(now.Sub(orderTime).Minutes()))
}

// ClassifyUrgency menentukan tier urgensi tiket dapur dari dua timestamp.
// Murni fungsi supaya gampang dites tanpa jam sungguhan.
func ClassifyUrgency(orderTime, now time.Time) Urgency {
	elapsed := ElapsedMinutes(orderTime, now)
	switch {
	case elapsed >= criticalThresholdMinutes:
		return UrgencyCritical
	case elapsed >= warningThresholdMinutes:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}

type TimeSlot string

const (
	SlotAll    TimeSlot = "all"
	SlotLunch  TimeSlot = "lunch"
	SlotDinner TimeSlot = "dinner"
)

type TicketFilter struct {
	ConfirmedOnly bool
	Slot          TimeSlot
	Category      models.ItemCategory // kosong = semua kategori
}

// kitchenVisible: hanya booking confirmed/arrived yang tampil default di KDS
func kitchenVisible(status models.BookingStatus) bool {
	return status == models.StatusConfirmed || status == models.StatusArrived
}

func inSlot(orderTime time.Time, slot TimeSlot) bool {
	hour := orderTime.Hour()
	switch slot {
	case SlotLunch:
		return hour >= 10 && hour < 15
	case SlotDinner:
		return hour >= 17 && hour < 23
	default:
		return true
	}
}

// FilterTickets menerapkan filter KDS: mirror booking status, shift, dan
// kategori item. Tiket yang kehabisan item setelah filter kategori dibuang.
func FilterTickets(tickets []models.OrderTicket, filter TicketFilter) []models.OrderTicket {
	out := make([]models.OrderTicket, 0, len(tickets))

	for _, t := range tickets {
		if filter.ConfirmedOnly && !kitchenVisible(t.BookingStatus) {
			continue
		}
		if !inSlot(t.OrderTime, filter.Slot) {
			continue
		}

		if filter.Category != "" {
			items := make([]models.OrderItem, 0, len(t.Items))
			for _, item := range t.Items {
				if item.Category == filter.Category {
					items = append(items, item)
				}
			}
			t.Items = items
		}

		if len(t.Items) == 0 {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortItemsByCourse mengurutkan item sesuai urutan course (appetizer dulu,
// main course, lalu dessert dan minuman)
func SortItemsByCourse(items []models.OrderItem) []models.OrderItem {
	out := make([]models.OrderItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return models.CategoryRank(out[i].Category) < models.CategoryRank(out[j].Category)
	})
	return out
}

func AllItemsDone(items []models.OrderItem) bool {
	for _, item := range items {
		if item.Status != models.ItemDone {
			return false
		}
	}
	return len(items) > 0
}

// TicketView adalah tiket + klasifikasi turunan untuk display
type TicketView struct {
	models.OrderTicket
	ElapsedMinutes int     `json:"elapsed_minutes"`
	Urgency        Urgency `json:"urgency"`
	AllDone        bool    `json:"all_done"`
}

func BuildTicketViews(tickets []models.OrderTicket, now time.Time) []TicketView {
	views := make([]TicketView, 0, len(tickets))
	for _, t := range tickets {
		t.Items = SortItemsByCourse(t.Items)
		views = append(views, TicketView{
			OrderTicket:    t,
			ElapsedMinutes: ElapsedMinutes(t.OrderTime, now),
			Urgency:        ClassifyUrgency(t.OrderTime, now),
			AllDone:        AllItemsDone(t.Items),
		})
	}
	return views
}
