package services

import (
	"sync"
	"time"

	"github.com/yeremiapane/booking-board/kds"
	"github.com/yeremiapane/booking-board/models"
	"github.com/yeremiapane/booking-board/utils"
	"gorm.io/gorm"
)

// UrgencyMonitor menghitung ulang tier urgensi tiket dapur secara periodik
// dan broadcast kitchen_update saat ada tiket yang naik/turun tier.
// Murni read-side: tidak pernah menulis data tiket.
type UrgencyMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration
	Clock    Clock

	mu       sync.Mutex
	lastTier map[uint]Urgency
}

func NewUrgencyMonitor(db *gorm.DB) *UrgencyMonitor {
	return &UrgencyMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Second,
		Clock:    systemClock{},
		lastTier: make(map[uint]Urgency),
	}
}

func (um *UrgencyMonitor) Start() {
	go func() {
		ticker := time.NewTicker(um.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				um.checkTickets()
			case <-um.StopChan:
				return
			}
		}
	}()
}

func (um *UrgencyMonitor) Stop() {
	close(um.StopChan)
}

func (um *UrgencyMonitor) checkTickets() {
	var tickets []models.OrderTicket
	if err := um.DB.Preload("Items").
		Where("status = ?", "pending").
		Find(&tickets).Error; err != nil {
		utils.ErrorLogger.Printf("Error fetching tickets: %v", err)
		return
	}

	now := um.Clock.Now()
	changed := um.diffTiers(tickets, now)
	if len(changed) == 0 {
		return
	}

	for _, view := range changed {
		utils.InfoLogger.Printf("Ticket %d (%s) entered %s tier after %d minutes",
			view.ID, view.TableLabel, view.Urgency, view.ElapsedMinutes)
	}
	kds.BroadcastKitchenUpdate(changed)
}

// diffTiers membandingkan tier sekarang dengan tier terakhir yang dilihat
func (um *UrgencyMonitor) diffTiers(tickets []models.OrderTicket, now time.Time) []TicketView {
	um.mu.Lock()
	defer um.mu.Unlock()

	var changed []TicketView
	seen := make(map[uint]Urgency, len(tickets))

	for _, t := range tickets {
		tier := ClassifyUrgency(t.OrderTime, now)
		seen[t.ID] = tier

		if last, ok := um.lastTier[t.ID]; !ok || last != tier {
			t.Items = SortItemsByCourse(t.Items)
			changed = append(changed, TicketView{
				OrderTicket:    t,
				ElapsedMinutes: ElapsedMinutes(t.OrderTime, now),
				Urgency:        tier,
				AllDone:        AllItemsDone(t.Items),
			})
		}
	}

	um.lastTier = seen
	return changed
}
