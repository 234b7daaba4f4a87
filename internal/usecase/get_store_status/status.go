package get_store_status

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// GetStoreStatus вычисляет, открыт ли салон в момент now, и когда это изменится.
// Чистая функция: now должен быть уже переведен в часовой пояс салона.
//
// День с нераспознаваемым временем считается закрытым.
func GetStoreStatus(now time.Time, schedule domain.WeeklySchedule) domain.StoreStatus {
	today := domain.WeekdayFromTime(now.Weekday())
	day := schedule.Day(today)

	if !day.IsOpen {
		return closedUntilNextOpening(schedule, today)
	}

	openTime, closeTime, err := day.Window()
	if err != nil {
		return closedUntilNextOpening(schedule, today)
	}

	current := now.Hour()*60 + now.Minute()

	switch {
	case current < openTime.Minutes():
		return domain.StoreStatus{
			IsOpen:   false,
			Message:  domain.MessageClosedNow,
			NextInfo: ptr.Ptr(fmt.Sprintf("Opens today at %s", openTime)),
		}
	case current < closeTime.Minutes():
		return domain.StoreStatus{
			IsOpen:   true,
			Message:  domain.MessageOpenNow,
			NextInfo: ptr.Ptr(fmt.Sprintf("Closes today at %s", closeTime)),
		}
	default:
		return closedUntilNextOpening(schedule, today)
	}
}

// closedUntilNextOpening ищет ближайший открытый день после today (с переходом через неделю).
// Через 7 дней проверяется сам today - это случай единственного рабочего дня в неделе.
func closedUntilNextOpening(schedule domain.WeeklySchedule, today domain.Weekday) domain.StoreStatus {
	status := domain.StoreStatus{
		IsOpen:  false,
		Message: domain.MessageClosedNow,
	}

	for offset := 1; offset <= domain.DaysInWeek; offset++ {
		weekday := today.Add(offset)
		day := schedule.Day(weekday)
		if !day.IsOpen {
			continue
		}

		openTime, _, err := day.Window()
		if err != nil {
			continue
		}

		status.NextInfo = ptr.Ptr(fmt.Sprintf("Opens %s at %s", weekday.Label(), openTime))
		return status
	}

	return status
}
