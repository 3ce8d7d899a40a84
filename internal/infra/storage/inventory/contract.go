package inventory

import "github.com/m04kA/SMC-ResourceBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
