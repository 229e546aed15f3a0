package provider

import "github.com/m04kA/QuickServe-BookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
