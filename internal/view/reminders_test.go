package view

import (
	"testing"
	"time"

	"github.com/MKhiriev/salestrak-pa/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed zone without DST so day arithmetic is exact
var testZone = time.FixedZone("UTC+5", 5*60*60)

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, testZone)
}

func TestToday(t *testing.T) {
	assert.Equal(t, at(2026, 3, 10, 0, 0), Today(at(2026, 3, 10, 23, 59)))
}

func TestParseReminderDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-10", at(2026, 3, 10, 0, 0)},
		{"2026-03-10T14:30", at(2026, 3, 10, 14, 30)},
		{"2026-03-10T09:00:00+05:00", at(2026, 3, 10, 9, 0)},
		{"2026-03-10T04:00:00Z", at(2026, 3, 10, 9, 0)},
	}

	for _, tt := range tests {
		got, err := ParseReminderDate(tt.in, testZone)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), "%s: want %s, got %s", tt.in, tt.want, got)
	}

	_, err := ParseReminderDate("next tuesday", testZone)
	assert.Error(t, err)
}

func TestPartitionReminders_TodayIsUpcoming(t *testing.T) {
	for _, clock := range []int{0, 12, 23} {
		now := at(2026, 3, 10, clock, 0)

		p := PartitionReminders([]models.Reminder{{ID: 1, Date: "2026-03-10"}}, now)

		require.Len(t, p.Upcoming, 1, "hour %d", clock)
		assert.Empty(t, p.Expired)
		assert.Equal(t, 0, p.Upcoming[0].Days)
	}
}

func TestPartitionReminders_YesterdayIsExpiredByOne(t *testing.T) {
	p := PartitionReminders([]models.Reminder{{ID: 1, Date: "2026-03-09"}}, at(2026, 3, 10, 15, 0))

	require.Len(t, p.Expired, 1)
	assert.Empty(t, p.Upcoming)
	assert.Equal(t, 1, p.Expired[0].Days)
}

func TestPartitionReminders_OrderAndCounts(t *testing.T) {
	reminders := []models.Reminder{
		{ID: 1, Date: "2026-03-20"},
		{ID: 2, Date: "2026-03-01"},
		{ID: 3, Date: "2026-03-11"},
		{ID: 4, Date: "2026-03-08"},
		{ID: 5, Date: "bogus"},
	}

	p := PartitionReminders(reminders, at(2026, 3, 10, 8, 0))

	require.Len(t, p.Upcoming, 2)
	assert.EqualValues(t, 3, p.Upcoming[0].ID)
	assert.Equal(t, 1, p.Upcoming[0].Days)
	assert.EqualValues(t, 1, p.Upcoming[1].ID)
	assert.Equal(t, 10, p.Upcoming[1].Days)

	require.Len(t, p.Expired, 2)
	assert.EqualValues(t, 4, p.Expired[0].ID)
	assert.Equal(t, 2, p.Expired[0].Days)
	assert.EqualValues(t, 2, p.Expired[1].ID)
	assert.Equal(t, 9, p.Expired[1].Days)

	require.Len(t, p.Invalid, 1)
	assert.EqualValues(t, 5, p.Invalid[0].ID)
}

func TestDayRoundingAsymmetry(t *testing.T) {
	today := at(2026, 3, 10, 0, 0)

	// a partial day ahead rounds up, a partial day behind rounds down
	assert.Equal(t, 1, UpcomingDays(today.Add(12*time.Hour), today))
	assert.Equal(t, 2, UpcomingDays(today.Add(36*time.Hour), today))
	assert.Equal(t, 0, ExpiredDays(today.Add(-12*time.Hour), today))
	assert.Equal(t, 1, ExpiredDays(today.Add(-36*time.Hour), today))
}
