package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/QuickServe-BookingService/pkg/metrics"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "SELECT", Operation("select id FROM bookings"))
	assert.Equal(t, "UPDATE", Operation("  UPDATE bookings SET status = $1"))
	assert.Equal(t, "UNKNOWN", Operation(""))
}

func TestDB_ExecContextCountsErrors(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "quickserve")
	stopCh := make(chan struct{})
	defer close(stopCh)

	db := WrapWithDefault(sqlDB, m, "quickserve", stopCh)

	mock.ExpectExec("UPDATE bookings").WillReturnError(assert.AnError)

	_, err = db.ExecContext(context.Background(), "UPDATE bookings SET status = $1", "accepted")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("quickserve", "UPDATE")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
