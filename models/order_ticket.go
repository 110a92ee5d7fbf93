package models

import (
	"time"
)

type ItemStatus string

const (
	ItemPending ItemStatus = "pending"
	ItemCooking ItemStatus = "cooking"
	ItemDone    ItemStatus = "done"
)

// Next memutar status item satu langkah: pending -> cooking -> done -> pending.
// Tanpa guard, sesuai perilaku toggle di KDS.
func (s ItemStatus) Next() ItemStatus {
	switch s {
	case ItemPending:
		return ItemCooking
	case ItemCooking:
		return ItemDone
	default:
		return ItemPending
	}
}

type ItemCategory string

const (
	CategoryAppetizer ItemCategory = "appetizer"
	CategoryMain      ItemCategory = "main"
	CategoryDessert   ItemCategory = "dessert"
	CategoryDrink     ItemCategory = "drink"
)

// CategoryRank menentukan urutan course pada tiket dapur
func CategoryRank(c ItemCategory) int {
	switch c {
	case CategoryAppetizer:
		return 1
	case CategoryMain:
		return 2
	case CategoryDessert:
		return 3
	case CategoryDrink:
		return 4
	default:
		return 5
	}
}

type OrderTicket struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	TableLabel    string        `gorm:"type:varchar(50);not null" json:"table_label"`
	OrderTime     time.Time     `gorm:"not null" json:"order_time"`
	Status        string        `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	BookingStatus BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"booking_status"`
	Items         []OrderItem   `gorm:"foreignKey:TicketID" json:"items"`
	CreatedAt     time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null" json:"updated_at"`
}

type OrderItem struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TicketID uint `gorm:"not null;index" json:"ticket_id"`
	// Omitting Ticket field from JSON to avoid recursive nesting
	Ticket    *OrderTicket `gorm:"foreignKey:TicketID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name      string       `gorm:"type:varchar(100);not null" json:"name"`
	Quantity  int          `gorm:"not null;default:1" json:"quantity"`
	Notes     StringList   `gorm:"type:text" json:"notes"`
	Status    ItemStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Category  ItemCategory `gorm:"type:varchar(20);not null" json:"category"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}
