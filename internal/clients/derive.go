package clients

import (
	"math"
	"time"

	"github.com/crownpanel/crownpanel/internal/shared"
	"github.com/crownpanel/crownpanel/internal/transactions"
)

// Status is the derived activity state of a client.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// A client counts as active when their latest purchase is at most this many
// days old, inclusive.
const activeWindowDays = 90

// StatusIndex scans the transaction history once and returns a lookup from
// client id to derived status as of now. The result is recomputed per render;
// nothing is cached or persisted.
func StatusIndex(txs []transactions.Transaction, now time.Time) func(clientID int64) Status {
	latest := make(map[int64]time.Time, len(txs))
	for _, t := range txs {
		if t.Date.IsZero() {
			continue
		}
		if t.Date.After(latest[t.ClientID]) {
			latest[t.ClientID] = t.Date.Time
		}
	}
	today := shared.DateOf(now).Time
	return func(clientID int64) Status {
		last, ok := latest[clientID]
		if !ok {
			return StatusInactive
		}
		days := int(math.Round(today.Sub(last).Hours() / 24))
		if days <= activeWindowDays {
			return StatusActive
		}
		return StatusInactive
	}
}

// DaysUntilBirthday counts whole days from now (truncated to its calendar
// date, so a birthday today yields 0) to the next occurrence of the
// birthday's month and day. Feb 29 clamps to Feb 28 in non-leap years.
// A zero birthday yields 0; callers skip clients without one.
func DaysUntilBirthday(birthday shared.Date, now time.Time) int {
	if birthday.IsZero() {
		return 0
	}
	today := shared.DateOf(now).Time
	next := occurrenceIn(today.Year(), birthday, now.Location())
	if next.Before(today) {
		next = occurrenceIn(today.Year()+1, birthday, now.Location())
	}
	return int(math.Ceil(next.Sub(today).Hours() / 24))
}

// DiscountWindow returns the one-month birthday discount window opening on
// this year's occurrence of the birthday.
func DiscountWindow(birthday shared.Date, now time.Time) (start, end time.Time) {
	start = occurrenceIn(now.Year(), birthday, now.Location())
	return start, start.AddDate(0, 1, 0)
}

func occurrenceIn(year int, birthday shared.Date, loc *time.Location) time.Time {
	month, day := birthday.Month(), birthday.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
