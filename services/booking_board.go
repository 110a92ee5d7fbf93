package services

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/booking-board/models"
	"github.com/yeremiapane/booking-board/utils"
)

var (
	ErrInvalidDraft    = errors.New("customer name and time are required")
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidStatus   = errors.New("unknown booking status")
)

// Clock abstraksi jam dinding supaya board bisa dites deterministik
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// IDGenerator menghasilkan id unik untuk booking baru
type IDGenerator func() string

// BookingRepository adalah persistence boundary: load/save seluruh koleksi.
type BookingRepository interface {
	Load() ([]models.Booking, error)
	Save(bookings []models.Booking) error
}

// BookingDraft adalah isi form create/edit. Status dan ID tidak pernah
// ikut di-draft: keduanya hanya berubah lewat Transition / create.
type BookingDraft struct {
	CustomerName string            `json:"customer_name"`
	Phone        string            `json:"phone"`
	Time         string            `json:"time"`
	Pax          int               `json:"pax"`
	Notes        models.StringList `json:"notes"`
	Area         models.Area       `json:"area"`
	Source       models.Source     `json:"source"`
}

type FilterOptions struct {
	Tab       models.StatusGroup
	Search    string
	TabActive bool
}

// BookingBoard memegang koleksi booking di memori dan seluruh operasi
// lifecycle-nya. Semua mutasi membangun ulang slice (copy-on-write) lalu
// menyimpan snapshot ke repository.
type BookingBoard struct {
	Clock Clock
	NewID IDGenerator

	mu       sync.RWMutex
	bookings []models.Booking
	repo     BookingRepository
	oracle   SlotOracle
}

func NewBookingBoard(repo BookingRepository, oracle SlotOracle) *BookingBoard {
	return &BookingBoard{
		Clock:  systemClock{},
		NewID:  uuid.NewString,
		repo:   repo,
		oracle: oracle,
	}
}

// Load mengisi koleksi dari repository. Dipanggil sekali saat startup.
func (bb *BookingBoard) Load() error {
	if bb.repo == nil {
		return nil
	}
	bookings, err := bb.repo.Load()
	if err != nil {
		return err
	}

	bb.mu.Lock()
	bb.bookings = bookings
	bb.mu.Unlock()
	return nil
}

// Bookings mengembalikan snapshot koleksi (urutan insert: terbaru di depan)
func (bb *BookingBoard) Bookings() []models.Booking {
	bb.mu.RLock()
	defer bb.mu.RUnlock()

	out := make([]models.Booking, len(bb.bookings))
	copy(out, bb.bookings)
	return out
}

func (bb *BookingBoard) Get(id string) (models.Booking, bool) {
	bb.mu.RLock()
	defer bb.mu.RUnlock()

	for _, b := range bb.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// Transition memindahkan satu booking ke status baru. Hanya field status
// yang ditulis ulang; field lain tidak disentuh. Sengaja permisif: tidak ada
// guard transisi (completed boleh kembali ke new), drag-and-drop dan tombol
// aksi sama-sama lewat sini.
func (bb *BookingBoard) Transition(id string, status models.BookingStatus) (models.Booking, error) {
	if !status.Valid() {
		return models.Booking{}, ErrInvalidStatus
	}

	bb.mu.Lock()
	defer bb.mu.Unlock()

	idx := -1
	for i, b := range bb.bookings {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Booking{}, ErrBookingNotFound
	}

	updated := make([]models.Booking, len(bb.bookings))
	copy(updated, bb.bookings)
	updated[idx].Status = status
	updated[idx].UpdatedAt = bb.Clock.Now()
	bb.bookings = updated

	bb.persistLocked()
	return updated[idx], nil
}

// Save membuat booking baru (editingID kosong) atau merge draft ke booking
// yang ada. Create: id baru, status 'new', prepend ke koleksi. Edit: id dan
// status tidak berubah.
func (bb *BookingBoard) Save(draft BookingDraft, editingID string) (models.Booking, error) {
	if draft.CustomerName == "" || draft.Time == "" {
		return models.Booking{}, ErrInvalidDraft
	}
	if draft.Pax <= 0 {
		draft.Pax = 2
	}
	if draft.Notes == nil {
		draft.Notes = models.StringList{}
	}

	bb.mu.Lock()
	defer bb.mu.Unlock()

	now := bb.Clock.Now()

	if editingID != "" {
		idx := -1
		for i, b := range bb.bookings {
			if b.ID == editingID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return models.Booking{}, ErrBookingNotFound
		}

		updated := make([]models.Booking, len(bb.bookings))
		copy(updated, bb.bookings)

		b := updated[idx]
		b.CustomerName = draft.CustomerName
		b.Phone = draft.Phone
		b.Time = draft.Time
		b.Pax = draft.Pax
		b.Notes = draft.Notes
		b.Area = draft.Area
		b.Source = draft.Source
		b.UpdatedAt = now
		updated[idx] = b

		bb.bookings = updated
		bb.persistLocked()
		return b, nil
	}

	booking := models.Booking{
		ID:           bb.NewID(),
		CustomerName: draft.CustomerName,
		Phone:        draft.Phone,
		Time:         draft.Time,
		Pax:          draft.Pax,
		Status:       models.StatusNew,
		Notes:        draft.Notes,
		Area:         draft.Area,
		Source:       draft.Source,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	updated := make([]models.Booking, 0, len(bb.bookings)+1)
	updated = append(updated, booking)
	updated = append(updated, bb.bookings...)
	bb.bookings = updated

	bb.persistLocked()
	return booking, nil
}

// CheckDuplicatePhone mencari booking lain dengan nomor telepon sama persis.
// Advisory saja, tidak memblokir apa pun. Nomor terlalu pendek (<= 3 digit)
// dianggap belum selesai diketik.
func (bb *BookingBoard) CheckDuplicatePhone(phone, editingID string) (models.Booking, bool) {
	if len(phone) <= 3 {
		return models.Booking{}, false
	}

	bb.mu.RLock()
	defer bb.mu.RUnlock()

	for _, b := range bb.bookings {
		if b.Phone == phone && b.ID != editingID {
			return b, true
		}
	}
	return models.Booking{}, false
}

// CheckSlot meneruskan ke capacity oracle yang di-inject
func (bb *BookingBoard) CheckSlot(timeSlot string, pax int, area models.Area) SlotAvailability {
	if bb.oracle == nil {
		return SlotAvailability{Available: true, Suggestions: []string{}}
	}
	return bb.oracle.CheckSlot(timeSlot, pax, area)
}

// Filter menerapkan filter tab + pencarian. Search yang tidak kosong
// mem-bypass filter tab sepenuhnya (precedence dari UI aslinya).
func (bb *BookingBoard) Filter(opts FilterOptions) []models.Booking {
	bb.mu.RLock()
	defer bb.mu.RUnlock()

	out := make([]models.Booking, 0, len(bb.bookings))
	query := strings.ToLower(opts.Search)

	for _, b := range bb.bookings {
		if query != "" {
			// Query di-lowercase sekali untuk ketiga field; nama juga
			// di-lowercase, phone dan id dibandingkan apa adanya
			if strings.Contains(strings.ToLower(b.CustomerName), query) ||
				strings.Contains(b.Phone, query) ||
				strings.Contains(b.ID, query) {
				out = append(out, b)
			}
			continue
		}
		if opts.TabActive && models.GroupOf(b.Status) != opts.Tab {
			continue
		}
		out = append(out, b)
	}
	return out
}

// TabCounts menghitung jumlah booking per status group untuk badge tab
func (bb *BookingBoard) TabCounts() map[models.StatusGroup]int {
	bb.mu.RLock()
	defer bb.mu.RUnlock()

	counts := make(map[models.StatusGroup]int, len(models.AllGroups))
	for _, g := range models.AllGroups {
		counts[g] = 0
	}
	for _, b := range bb.bookings {
		counts[models.GroupOf(b.Status)]++
	}
	return counts
}

// SortByTime mengurutkan ascending berdasarkan jam kedatangan. Compare
// string aman karena format HH:MM 24 jam selalu zero-padded.
func SortByTime(bookings []models.Booking) []models.Booking {
	out := make([]models.Booking, len(bookings))
	copy(out, bookings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

func (bb *BookingBoard) persistLocked() {
	if bb.repo == nil {
		return
	}

	snapshot := make([]models.Booking, len(bb.bookings))
	copy(snapshot, bb.bookings)
	if err := bb.repo.Save(snapshot); err != nil {
		utils.ErrorLogger.Printf("Error persisting bookings: %v", err)
	}
}
