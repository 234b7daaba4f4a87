package get_store_status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// 2024-01-01 - понедельник
func monday(hour, minute int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func open(from, to string) domain.DayHours {
	return domain.DayHours{IsOpen: true, OpeningTime: from, ClosingTime: to}
}

func closedWeek() domain.WeeklySchedule {
	var s domain.WeeklySchedule
	for i := range s {
		s[i] = domain.ClosedDay()
	}
	return s
}

func TestGetStoreStatus_ClosedAllWeek(t *testing.T) {
	status := GetStoreStatus(monday(12, 0), closedWeek())

	assert.False(t, status.IsOpen)
	assert.Nil(t, status.NextInfo)
	assert.Equal(t, domain.MessageClosedNow, status.Message)
}

func TestGetStoreStatus_WithinWindow(t *testing.T) {
	schedule := closedWeek().WithDay(domain.Monday, open("10:00 AM", "8:00 PM"))

	status := GetStoreStatus(monday(15, 0), schedule)

	assert.True(t, status.IsOpen)
	assert.Equal(t, domain.MessageOpenNow, status.Message)
	require.NotNil(t, status.NextInfo)
	assert.Equal(t, "Closes today at 08:00 PM", *status.NextInfo)
}

func TestGetStoreStatus_AfterClosingSkipsClosedDay(t *testing.T) {
	schedule := closedWeek().
		WithDay(domain.Monday, open("10:00 AM", "8:00 PM")).
		WithDay(domain.Wednesday, open("9:00 AM", "6:00 PM"))

	status := GetStoreStatus(monday(21, 0), schedule)

	assert.False(t, status.IsOpen)
	require.NotNil(t, status.NextInfo)
	assert.Equal(t, "Opens Wednesday at 09:00 AM", *status.NextInfo)
}

func TestGetStoreStatus_BeforeOpening(t *testing.T) {
	schedule := closedWeek().WithDay(domain.Monday, open("10:00 AM", "8:00 PM"))

	status := GetStoreStatus(monday(9, 59), schedule)

	assert.False(t, status.IsOpen)
	require.NotNil(t, status.NextInfo)
	assert.Equal(t, "Opens today at 10:00 AM", *status.NextInfo)
}

func TestGetStoreStatus_Boundaries(t *testing.T) {
	schedule := closedWeek().
		WithDay(domain.Monday, open("10:00 AM", "8:00 PM")).
		WithDay(domain.Tuesday, open("11:00 AM", "7:00 PM"))

	atOpening := GetStoreStatus(monday(10, 0), schedule)
	assert.True(t, atOpening.IsOpen)

	atClosing := GetStoreStatus(monday(20, 0), schedule)
	assert.False(t, atClosing.IsOpen)
	require.NotNil(t, atClosing.NextInfo)
	assert.Equal(t, "Opens Tuesday at 11:00 AM", *atClosing.NextInfo)
}

func TestGetStoreStatus_TodayClosedWrapsWeek(t *testing.T) {
	// воскресенье закрыто, ближайший рабочий день - понедельник
	sunday := time.Date(2024, time.January, 7, 12, 0, 0, 0, time.UTC)
	schedule := closedWeek().WithDay(domain.Monday, open("9:30 AM", "5:00 PM"))

	status := GetStoreStatus(sunday, schedule)

	assert.False(t, status.IsOpen)
	require.NotNil(t, status.NextInfo)
	assert.Equal(t, "Opens Monday at 09:30 AM", *status.NextInfo)
}

func TestGetStoreStatus_OnlyOpenDayIsToday(t *testing.T) {
	schedule := closedWeek().WithDay(domain.Monday, open("10:00 AM", "8:00 PM"))

	status := GetStoreStatus(monday(22, 0), schedule)

	require.NotNil(t, status.NextInfo)
	assert.Equal(t, "Opens Monday at 10:00 AM", *status.NextInfo)
}

func TestGetStoreStatus_UnparsableDayTreatedAsClosed(t *testing.T) {
	schedule := closedWeek().
		WithDay(domain.Monday, open("soon", "8:00 PM")).
		WithDay(domain.Tuesday, open("broken", "later")).
		WithDay(domain.Thursday, open("8:00 AM", "4:00 PM"))

	status := GetStoreStatus(monday(12, 0), schedule)

	assert.False(t, status.IsOpen)
	require.NotNil(t, status.NextInfo)
	assert.Equal(t, "Opens Thursday at 08:00 AM", *status.NextInfo)
}
