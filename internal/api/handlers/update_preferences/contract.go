package update_preferences

import (
	"context"
	"encoding/json"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type PreferencesService interface {
	Set(ctx context.Context, userID int64, namespace domain.PreferenceNamespace, raw json.RawMessage) (interface{}, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
