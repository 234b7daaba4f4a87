package get_store_status

import (
	"context"

	getStoreStatus "github.com/m04kA/SMC-SalonService/internal/usecase/get_store_status"
)

type GetStoreStatusUseCase interface {
	Execute(ctx context.Context, req *getStoreStatus.Request) (*getStoreStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
