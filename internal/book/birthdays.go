package book

import (
	"time"

	"github.com/smileynet/rolodex/internal/contact"
)

// DefaultWindow is the default number of days ahead scanned for birthdays.
const DefaultWindow = 7

// Reminder is one upcoming birthday. Celebration is the date the birthday
// is announced on, which differs from the literal date when the weekend
// shift applies.
type Reminder struct {
	Name        contact.Name
	Birthday    contact.Birthday
	Celebration time.Time
	DaysUntil   int
}

// Upcoming returns a reminder for every record whose next birthday falls
// within window days of today, inclusive on both ends: a birthday today and
// a birthday exactly window days out are both reported. Results follow book
// insertion order. An empty book, or no matches, yields an empty slice;
// rendering a sentinel message is the caller's concern.
//
// A birthday landing on Saturday or Sunday is celebrated the following
// Monday. The shift applies to the reported celebration date only; the
// inclusion decision uses the unshifted distance.
func (b *Book) Upcoming(today time.Time, window int) []Reminder {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var out []Reminder
	for _, key := range b.order {
		rec := b.records[key]
		bd, ok := rec.Birthday()
		if !ok {
			continue
		}
		occ := bd.NextOccurrence(day)
		days := int(occ.Sub(day).Hours() / 24)
		if days > window {
			continue
		}
		out = append(out, Reminder{
			Name:        rec.Name(),
			Birthday:    bd,
			Celebration: shiftWeekend(occ),
			DaysUntil:   days,
		})
	}
	return out
}

// shiftWeekend moves a weekend date forward to the following Monday.
func shiftWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}
