package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/booking-board/models"
)

type fakeClock struct {
	t time.Time
}

func (f fakeClock) Now() time.Time { return f.t }

// fakeRepo merekam snapshot terakhir yang di-save oleh board
type fakeRepo struct {
	saved   [][]models.Booking
	initial []models.Booking
}

func (r *fakeRepo) Load() ([]models.Booking, error) { return r.initial, nil }
func (r *fakeRepo) Save(bookings []models.Booking) error {
	r.saved = append(r.saved, bookings)
	return nil
}

func newTestBoard() (*BookingBoard, *fakeRepo) {
	repo := &fakeRepo{}
	board := NewBookingBoard(repo, NewFixedSlotOracle())
	board.Clock = fakeClock{t: time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)}

	seq := 0
	board.NewID = func() string {
		seq++
		return fmt.Sprintf("test-%d", seq)
	}
	return board, repo
}

func seedBooking(t *testing.T, board *BookingBoard, draft BookingDraft) models.Booking {
	t.Helper()
	booking, err := board.Save(draft, "")
	assert.NoError(t, err)
	return booking
}

func TestTransitionOnlyRewritesStatus(t *testing.T) {
	board, _ := newTestBoard()
	created := seedBooking(t, board, BookingDraft{
		CustomerName: "Nguyễn Văn A",
		Phone:        "0901234567",
		Time:         "18:00",
		Pax:          4,
		Notes:        models.StringList{"Dị ứng tôm"},
		Area:         models.AreaVIP,
		Source:       models.SourceHotline,
	})

	for _, status := range models.AllStatuses {
		updated, err := board.Transition(created.ID, status)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, status, updated.Status)
		assert.Equal(t, created.CustomerName, updated.CustomerName)
		assert.Equal(t, created.Phone, updated.Phone)
		assert.Equal(t, created.Time, updated.Time)
		assert.Equal(t, created.Pax, updated.Pax)
		assert.Equal(t, created.Notes, updated.Notes)
		assert.Equal(t, created.Area, updated.Area)
		assert.Equal(t, created.Source, updated.Source)
	}
}

func TestTransitionIsPermissive(t *testing.T) {
	// Tidak ada guard transisi: completed boleh kembali ke new
	board, _ := newTestBoard()
	created := seedBooking(t, board, BookingDraft{CustomerName: "A", Time: "18:00"})

	_, err := board.Transition(created.ID, models.StatusCompleted)
	assert.NoError(t, err)

	updated, err := board.Transition(created.ID, models.StatusNew)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusNew, updated.Status)
}

func TestTransitionErrors(t *testing.T) {
	board, _ := newTestBoard()
	created := seedBooking(t, board, BookingDraft{CustomerName: "A", Time: "18:00"})

	_, err := board.Transition("missing-id", models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = board.Transition(created.ID, models.BookingStatus("teleported"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGroupOfIsTotal(t *testing.T) {
	expected := map[models.BookingStatus]models.StatusGroup{
		models.StatusNew:             models.GroupActionNeeded,
		models.StatusWaitingInfo:     models.GroupActionNeeded,
		models.StatusPending:         models.GroupActionNeeded,
		models.StatusChangeRequested: models.GroupActionNeeded,
		models.StatusConfirmed:       models.GroupUpcoming,
		models.StatusArrived:         models.GroupActive,
		models.StatusCompleted:       models.GroupDone,
		models.StatusCancelled:       models.GroupDone,
		models.StatusNoShow:          models.GroupDone,
	}

	assert.Len(t, expected, len(models.AllStatuses))
	for _, status := range models.AllStatuses {
		group := models.GroupOf(status)
		assert.True(t, group.Valid())
		assert.Equal(t, expected[status], group, "status %s", status)
	}
}

func TestSaveRejectsIncompleteDraft(t *testing.T) {
	board, _ := newTestBoard()
	seedBooking(t, board, BookingDraft{CustomerName: "A", Time: "18:00"})
	before := len(board.Bookings())

	tests := []struct {
		name  string
		draft BookingDraft
	}{
		{"missing name", BookingDraft{Time: "19:00"}},
		{"missing time", BookingDraft{CustomerName: "B"}},
		{"missing both", BookingDraft{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := board.Save(tt.draft, "")
			assert.ErrorIs(t, err, ErrInvalidDraft)
			assert.Len(t, board.Bookings(), before)
		})
	}
}

func TestSaveCreatePrependsWithDefaults(t *testing.T) {
	board, _ := newTestBoard()
	first := seedBooking(t, board, BookingDraft{CustomerName: "A", Time: "18:00"})
	second := seedBooking(t, board, BookingDraft{CustomerName: "B", Time: "19:00"})

	assert.Equal(t, models.StatusNew, second.Status)
	assert.Equal(t, 2, second.Pax) // default pax
	assert.NotNil(t, second.Notes)
	assert.Empty(t, second.Notes)

	// Booking terbaru ada di depan koleksi
	bookings := board.Bookings()
	assert.Equal(t, second.ID, bookings[0].ID)
	assert.Equal(t, first.ID, bookings[1].ID)
}

func TestSaveEditKeepsIDAndStatus(t *testing.T) {
	board, _ := newTestBoard()
	created := seedBooking(t, board, BookingDraft{CustomerName: "A", Phone: "0901", Time: "18:00", Pax: 4})

	_, err := board.Transition(created.ID, models.StatusConfirmed)
	assert.NoError(t, err)

	updated, err := board.Save(BookingDraft{
		CustomerName: "A (update)",
		Phone:        "0902",
		Time:         "19:30",
		Pax:          6,
		Notes:        models.StringList{"Sinh nhật"},
	}, created.ID)
	assert.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
	assert.Equal(t, "A (update)", updated.CustomerName)
	assert.Equal(t, "19:30", updated.Time)
	assert.Equal(t, 6, updated.Pax)
	assert.Len(t, board.Bookings(), 1)

	_, err = board.Save(BookingDraft{CustomerName: "X", Time: "20:00"}, "missing-id")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCheckDuplicatePhone(t *testing.T) {
	board, _ := newTestBoard()
	existing := seedBooking(t, board, BookingDraft{CustomerName: "A", Phone: "0901234567", Time: "18:00", Pax: 4})
	editing := seedBooking(t, board, BookingDraft{CustomerName: "B", Phone: "0907654321", Time: "19:00"})

	// Nomor milik booking lain -> advisory dengan identitas booking itu
	match, found := board.CheckDuplicatePhone("0901234567", editing.ID)
	assert.True(t, found)
	assert.Equal(t, existing.ID, match.ID)
	assert.Equal(t, existing.CustomerName, match.CustomerName)

	// Booking yang sedang diedit tidak boleh memperingatkan dirinya sendiri
	_, found = board.CheckDuplicatePhone("0907654321", editing.ID)
	assert.False(t, found)

	// Nomor terlalu pendek dianggap belum selesai diketik
	_, found = board.CheckDuplicatePhone("090", editing.ID)
	assert.False(t, found)
}

func TestCheckSlotUsesOracle(t *testing.T) {
	board, _ := newTestBoard()

	full := board.CheckSlot("19:00", 4, models.AreaIndoor)
	assert.False(t, full.Available)
	assert.Equal(t, []string{"18:30", "19:30", "20:00"}, full.Suggestions)

	open := board.CheckSlot("18:00", 4, models.AreaIndoor)
	assert.True(t, open.Available)
	assert.Empty(t, open.Suggestions)
}

func TestSortByTime(t *testing.T) {
	bookings := []models.Booking{
		{ID: "1", Time: "19:00"},
		{ID: "2", Time: "18:00"},
		{ID: "3", Time: "20:00"},
	}

	sorted := SortByTime(bookings)

	assert.Equal(t, []string{"18:00", "19:00", "20:00"},
		[]string{sorted[0].Time, sorted[1].Time, sorted[2].Time})
	// Input tidak dimutasi
	assert.Equal(t, "19:00", bookings[0].Time)
}

func TestFilterSearchOverridesTab(t *testing.T) {
	board, _ := newTestBoard()
	target := seedBooking(t, board, BookingDraft{CustomerName: "Nguyễn Văn A", Phone: "0901234567", Time: "18:00"})
	seedBooking(t, board, BookingDraft{CustomerName: "Trần Thị B", Phone: "0333444555", Time: "19:00"})

	// target tetap status 'new'; tab aktif 'done' seharusnya menyembunyikannya,
	// tapi search mem-bypass filter tab sepenuhnya
	results := board.Filter(FilterOptions{
		Tab:       models.GroupDone,
		TabActive: true,
		Search:    "090",
	})

	assert.Len(t, results, 1)
	assert.Equal(t, target.ID, results[0].ID)
}

func TestFilterByTabAndSearch(t *testing.T) {
	board, _ := newTestBoard()
	a := seedBooking(t, board, BookingDraft{CustomerName: "Anna", Phone: "0901", Time: "18:00"})
	b := seedBooking(t, board, BookingDraft{CustomerName: "Bình", Phone: "0902", Time: "19:00"})
	_, err := board.Transition(b.ID, models.StatusConfirmed)
	assert.NoError(t, err)

	actionNeeded := board.Filter(FilterOptions{Tab: models.GroupActionNeeded, TabActive: true})
	assert.Len(t, actionNeeded, 1)
	assert.Equal(t, a.ID, actionNeeded[0].ID)

	// Search tidak case-sensitive untuk nama
	byName := board.Filter(FilterOptions{Search: "anna"})
	assert.Len(t, byName, 1)
	assert.Equal(t, a.ID, byName[0].ID)

	// Search substring id
	byID := board.Filter(FilterOptions{Search: a.ID})
	assert.Len(t, byID, 1)

	// Tanpa filter apa pun -> semua booking
	assert.Len(t, board.Filter(FilterOptions{}), 2)
}

func TestFilterLowersQueryOnce(t *testing.T) {
	board, _ := newTestBoard()
	a := seedBooking(t, board, BookingDraft{CustomerName: "Anna", Phone: "0901", Time: "18:00"})
	seedBooking(t, board, BookingDraft{CustomerName: "Bình", Phone: "0902", Time: "19:00"})

	// Query huruf besar di-lowercase sekali lalu dipakai untuk semua field:
	// id huruf kecil tetap ketemu
	byID := board.Filter(FilterOptions{Search: "TEST-1"})
	assert.Len(t, byID, 1)
	assert.Equal(t, a.ID, byID[0].ID)

	byName := board.Filter(FilterOptions{Search: "ANNA"})
	assert.Len(t, byName, 1)
	assert.Equal(t, a.ID, byName[0].ID)
}

func TestTabCounts(t *testing.T) {
	board, _ := newTestBoard()
	seedBooking(t, board, BookingDraft{CustomerName: "A", Time: "18:00"})
	b := seedBooking(t, board, BookingDraft{CustomerName: "B", Time: "19:00"})
	c := seedBooking(t, board, BookingDraft{CustomerName: "C", Time: "20:00"})

	_, err := board.Transition(b.ID, models.StatusConfirmed)
	assert.NoError(t, err)
	_, err = board.Transition(c.ID, models.StatusCancelled)
	assert.NoError(t, err)

	counts := board.TabCounts()
	assert.Equal(t, 1, counts[models.GroupActionNeeded])
	assert.Equal(t, 1, counts[models.GroupUpcoming])
	assert.Equal(t, 0, counts[models.GroupActive])
	assert.Equal(t, 1, counts[models.GroupDone])
}

func TestMutationsPersistSnapshot(t *testing.T) {
	board, repo := newTestBoard()
	created := seedBooking(t, board, BookingDraft{CustomerName: "A", Time: "18:00"})
	_, err := board.Transition(created.ID, models.StatusConfirmed)
	assert.NoError(t, err)

	// create + transition = dua snapshot
	assert.Len(t, repo.saved, 2)
	last := repo.saved[len(repo.saved)-1]
	assert.Len(t, last, 1)
	assert.Equal(t, models.StatusConfirmed, last[0].Status)
}

func TestLoadHydratesFromRepository(t *testing.T) {
	repo := &fakeRepo{initial: []models.Booking{
		{ID: "1", CustomerName: "A", Time: "18:00", Pax: 2, Status: models.StatusNew},
	}}
	board := NewBookingBoard(repo, nil)

	assert.NoError(t, board.Load())
	assert.Len(t, board.Bookings(), 1)

	// Tanpa oracle, slot dianggap selalu tersedia
	slot := board.CheckSlot("19:00", 2, "")
	assert.True(t, slot.Available)
}
