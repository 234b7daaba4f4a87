package settings

import (
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
)

// DBExecutor переиспользуем интерфейс из dbmetrics: *sql.DB, *dbmetrics.DB или транзакция
type DBExecutor = dbmetrics.DBExecutor
