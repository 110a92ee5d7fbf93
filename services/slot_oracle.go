package services

import (
	"github.com/yeremiapane/booking-board/models"
)

type SlotAvailability struct {
	Available   bool     `json:"available"`
	Suggestions []string `json:"suggestions"`
}

// SlotOracle menjawab apakah satu slot jam masih punya kapasitas.
// Di-inject supaya backend kapasitas sungguhan bisa menggantikan fixture
// tanpa menyentuh board.
type SlotOracle interface {
	CheckSlot(timeSlot string, pax int, area models.Area) SlotAvailability
}

// FixedSlotOracle adalah fixture adapter: satu slot dianggap penuh dan
// punya daftar saran tetap. Stand-in untuk lookup kapasitas yang belum ada.
type FixedSlotOracle struct {
	FullSlot    string
	Suggestions []string
}

func NewFixedSlotOracle() *FixedSlotOracle {
	return &FixedSlotOracle{
		FullSlot:    "19:00",
		Suggestions: []string{"18:30", "19:30", "20:00"},
	}
}

func (o *FixedSlotOracle) CheckSlot(timeSlot string, pax int, area models.Area) SlotAvailability {
	if timeSlot == o.FullSlot {
		suggestions := make([]string, len(o.Suggestions))
		copy(suggestions, o.Suggestions)
		return SlotAvailability{Available: false, Suggestions: suggestions}
	}
	return SlotAvailability{Available: true, Suggestions: []string{}}
}
