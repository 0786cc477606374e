package view

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/salestrak-pa/models"
)

const day = 24 * time.Hour

// reminderLayouts are tried in order by ParseReminderDate.
var reminderLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ReminderView is a reminder with its parsed date and the day count shown
// next to it.
type ReminderView struct {
	models.Reminder
	Date time.Time
	Days int
}

// ReminderPartition splits reminders around today.
type ReminderPartition struct {
	// Upcoming are dated today or later, soonest first.
	Upcoming []ReminderView
	// Expired are dated before today, most recent first.
	Expired []ReminderView
	// Invalid holds reminders whose date could not be parsed.
	Invalid []models.Reminder
}

// Today truncates now to local midnight.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// ParseReminderDate parses a reminder date as sent by the backend. A plain
// date is read as a local calendar date so that a reminder for today is
// never pushed into yesterday by a UTC offset.
func ParseReminderDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range reminderLayouts {
		t, err := time.ParseInLocation(layout, raw, loc)
		if err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised reminder date %q", raw)
}

// PartitionReminders classifies every reminder against the local day of now.
//
// Upcoming reminders show ceil((date - today) / 1 day); expired ones show
// |floor((today - date) / 1 day)|. The two rounding directions differ on
// purpose and must not be unified.
func PartitionReminders(reminders []models.Reminder, now time.Time) ReminderPartition {
	today := Today(now)
	var p ReminderPartition

	for _, r := range reminders {
		date, err := ParseReminderDate(r.Date, now.Location())
		if err != nil {
			p.Invalid = append(p.Invalid, r)
			continue
		}

		if !date.Before(today) {
			p.Upcoming = append(p.Upcoming, ReminderView{Reminder: r, Date: date, Days: UpcomingDays(date, today)})
		} else {
			p.Expired = append(p.Expired, ReminderView{Reminder: r, Date: date, Days: ExpiredDays(date, today)})
		}
	}

	slices.SortStableFunc(p.Upcoming, func(a, b ReminderView) int { return a.Date.Compare(b.Date) })
	slices.SortStableFunc(p.Expired, func(a, b ReminderView) int { return b.Date.Compare(a.Date) })
	return p
}

// UpcomingDays is ceil((date - today) / 1 day).
func UpcomingDays(date, today time.Time) int {
	return int(math.Ceil(float64(date.Sub(today)) / float64(day)))
}

// ExpiredDays is |floor((today - date) / 1 day)|.
func ExpiredDays(date, today time.Time) int {
	return int(math.Abs(math.Floor(float64(today.Sub(date)) / float64(day))))
}
