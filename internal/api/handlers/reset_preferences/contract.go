package reset_preferences

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type PreferencesService interface {
	Reset(ctx context.Context, userID int64, namespace domain.PreferenceNamespace) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
