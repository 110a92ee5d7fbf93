package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/booking-board/kds"
	"github.com/yeremiapane/booking-board/models"
	"github.com/yeremiapane/booking-board/services"
	"github.com/yeremiapane/booking-board/utils"
)

type KitchenController struct {
	DB *gorm.DB
	// Now bisa di-override di test untuk timer yang deterministik
	Now func() time.Time
}

func NewKitchenController(db *gorm.DB) *KitchenController {
	return &KitchenController{DB: db, Now: time.Now}
}

// GetKitchenDisplay -> overview tiket dapur dengan timer dan tier urgensi.
// Default hanya tiket dari booking confirmed/arrived yang tampil.
func (kc *KitchenController) GetKitchenDisplay(c *gin.Context) {
	filter := services.TicketFilter{
		ConfirmedOnly: c.DefaultQuery("confirmed_only", "true") == "true",
		Slot:          services.TimeSlot(c.DefaultQuery("slot", "all")),
		Category:      models.ItemCategory(c.Query("category")),
	}

	var tickets []models.OrderTicket
	if err := kc.DB.Preload("Items").
		Where("status = ?", "pending").
		Order("order_time asc").
		Find(&tickets).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filtered := services.FilterTickets(tickets, filter)
	views := services.BuildTicketViews(filtered, kc.Now())

	utils.RespondJSON(c, http.StatusOK, "Kitchen display tickets", views)
}

// ToggleItemStatus -> putar status item satu langkah
// (pending -> cooking -> done -> pending), tanpa guard
func (kc *KitchenController) ToggleItemStatus(c *gin.Context) {
	itemID := c.Param("item_id")

	var item models.OrderItem
	if err := kc.DB.First(&item, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	item.Status = item.Status.Next()
	if err := kc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	kc.broadcastTicket(item.TicketID)

	utils.InfoLogger.Printf("Item %d (%s) toggled to %s", item.ID, item.Name, item.Status)
	utils.RespondJSON(c, http.StatusOK, "Item status updated", item)
}

// CompleteTicket -> tutup tiket; hanya boleh kalau semua item sudah done
func (kc *KitchenController) CompleteTicket(c *gin.Context) {
	ticketID := c.Param("ticket_id")

	var ticket models.OrderTicket
	if err := kc.DB.Preload("Items").First(&ticket, ticketID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !services.AllItemsDone(ticket.Items) {
		utils.RespondError(c, http.StatusConflict, ErrItemsNotDone)
		return
	}

	ticket.Status = "completed"
	if err := kc.DB.Save(&ticket).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	kds.BroadcastKitchenUpdate(gin.H{
		"ticket_id": ticket.ID,
		"status":    ticket.Status,
	})

	utils.InfoLogger.Printf("Ticket %d (%s) completed", ticket.ID, ticket.TableLabel)
	utils.RespondJSON(c, http.StatusOK, "Ticket completed", ticket)
}

// NotifyWaiter -> chef memberi tahu staff bahwa makanan siap diantar
func (kc *KitchenController) NotifyWaiter(c *gin.Context) {
	ticketID := c.Param("ticket_id")

	var ticket models.OrderTicket
	if err := kc.DB.First(&ticket, ticketID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	message := fmt.Sprintf("Food ready for pickup at %s", ticket.TableLabel)
	kds.BroadcastMessage(kds.Message{
		Event: kds.EventWaiterCall,
		Data: gin.H{
			"ticket_id":   ticket.ID,
			"table_label": ticket.TableLabel,
			"message":     message,
		},
	})

	utils.RespondJSON(c, http.StatusOK, "Waiter notified", gin.H{
		"table_label": ticket.TableLabel,
	})
}

// broadcastTicket menyiarkan view terbaru satu tiket setelah item berubah
func (kc *KitchenController) broadcastTicket(ticketID uint) {
	var ticket models.OrderTicket
	if err := kc.DB.Preload("Items").First(&ticket, ticketID).Error; err != nil {
		utils.ErrorLogger.Printf("Error fetching ticket %d for broadcast: %v", ticketID, err)
		return
	}

	views := services.BuildTicketViews([]models.OrderTicket{ticket}, kc.Now())
	kds.BroadcastKitchenUpdate(views[0])
}
