package models

import (
	"time"
)

type BookingStatus string

const (
	StatusNew             BookingStatus = "new"
	StatusWaitingInfo     BookingStatus = "waiting_info"
	StatusPending         BookingStatus = "pending"
	StatusConfirmed       BookingStatus = "confirmed"
	StatusChangeRequested BookingStatus = "change_requested"
	StatusArrived         BookingStatus = "arrived"
	StatusCompleted       BookingStatus = "completed"
	StatusCancelled       BookingStatus = "cancelled"
	StatusNoShow          BookingStatus = "no_show"
)

// AllStatuses dalam urutan alur bisnis (terminal di akhir)
var AllStatuses = []BookingStatus{
	StatusNew,
	StatusWaitingInfo,
	StatusPending,
	StatusConfirmed,
	StatusChangeRequested,
	StatusArrived,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusNew, StatusWaitingInfo, StatusPending, StatusConfirmed,
		StatusChangeRequested, StatusArrived, StatusCompleted,
		StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Terminal -> cancelled/no_show menyimpan record untuk history, tidak dihapus
func (s BookingStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusNoShow
}

type StatusGroup string

const (
	GroupActionNeeded StatusGroup = "action_needed"
	GroupUpcoming     StatusGroup = "upcoming"
	GroupActive       StatusGroup = "active"
	GroupDone         StatusGroup = "done"
)

var AllGroups = []StatusGroup{GroupActionNeeded, GroupUpcoming, GroupActive, GroupDone}

func (g StatusGroup) Valid() bool {
	switch g {
	case GroupActionNeeded, GroupUpcoming, GroupActive, GroupDone:
		return true
	}
	return false
}

// GroupOf memetakan setiap status ke tepat satu tab group
func GroupOf(s BookingStatus) StatusGroup {
	switch s {
	case StatusNew, StatusWaitingInfo, StatusPending, StatusChangeRequested:
		return GroupActionNeeded
	case StatusConfirmed:
		return GroupUpcoming
	case StatusArrived:
		return GroupActive
	default:
		return GroupDone
	}
}

type Area string

const (
	AreaIndoor  Area = "indoor"
	AreaOutdoor Area = "outdoor"
	AreaVIP     Area = "vip"
	AreaRooftop Area = "rooftop"
)

type Source string

const (
	SourceWebsite  Source = "website"
	SourceFacebook Source = "facebook"
	SourceHotline  Source = "hotline"
	SourceWalkIn   Source = "walk_in"
	SourceOTA      Source = "ota"
)

type Booking struct {
	ID           string        `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CustomerName string        `gorm:"type:varchar(100);not null" json:"customer_name"`
	Phone        string        `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Time         string        `gorm:"type:varchar(5);not null" json:"time"`
	Pax          int           `gorm:"not null;default:2" json:"pax"`
	Status       BookingStatus `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
	Notes        StringList    `gorm:"type:text" json:"notes"`
	Area         Area          `gorm:"type:varchar(20)" json:"area,omitempty"`
	Source       Source        `gorm:"type:varchar(20)" json:"source,omitempty"`
	// Position menjaga urutan koleksi (booking terbaru di depan)
	Position  int       `gorm:"not null;default:0;index" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// GuidedAction adalah tombol aksi yang disarankan untuk satu booking.
// Murni metadata tampilan: transisi tetap bebas (drag-and-drop boleh ke mana saja).
type GuidedAction struct {
	Label string        `json:"label"`
	To    BookingStatus `json:"to"`
}

func GuidedActionsFor(s BookingStatus) []GuidedAction {
	var actions []GuidedAction

	switch s {
	case StatusNew:
		actions = append(actions, GuidedAction{Label: "Confirm", To: StatusConfirmed})
	case StatusWaitingInfo, StatusPending, StatusChangeRequested:
		actions = append(actions, GuidedAction{Label: "Re-confirm", To: StatusConfirmed})
	case StatusConfirmed:
		actions = append(actions, GuidedAction{Label: "Check-in", To: StatusArrived})
	case StatusArrived:
		actions = append(actions, GuidedAction{Label: "Complete/Pay", To: StatusCompleted})
	}

	if !s.Terminal() {
		actions = append(actions,
			GuidedAction{Label: "Mark no-show", To: StatusNoShow},
			GuidedAction{Label: "Cancel", To: StatusCancelled},
		)
	}
	return actions
}
