package update_day_hours

import (
	"context"

	updateDayHours "github.com/m04kA/SMC-SalonService/internal/usecase/update_day_hours"
)

type UpdateDayHoursUseCase interface {
	Execute(ctx context.Context, req *updateDayHours.Request) (*updateDayHours.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
