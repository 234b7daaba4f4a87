package get_preferences

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type PreferencesService interface {
	Get(ctx context.Context, userID int64, namespace domain.PreferenceNamespace) (interface{}, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
