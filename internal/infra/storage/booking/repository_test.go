package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
	"github.com/m04kA/QuickServe-BookingService/internal/infra/storage/booking"
)

var selectColumns = []string{"id", "service_id", "provider_id", "customer_id", "total_price", "status", "description", "created_at", "title"}

func setup(t *testing.T) (*booking.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return booking.NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := setup(t)
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO bookings \(service_id,provider_id,customer_id,total_price,status,description\)`).
		WithArgs(int64(3), int64(7), int64(11), 100.0, "pending", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))

	created, err := repo.Create(ctx, &domain.Booking{
		ServiceID:  3,
		ProviderID: 7,
		CustomerID: 11,
		TotalPrice: 100,
		Status:     domain.StatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := setup(t)

		mock.ExpectQuery(`SELECT (.+) FROM bookings b LEFT JOIN services s ON s.id = b.service_id WHERE b.id = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(selectColumns).
				AddRow(int64(5), int64(3), int64(7), int64(11), 250.5, "accepted", "fix the sink", createdAt, "Plumbing"))

		got, err := repo.GetByID(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, got.Status)
		assert.Equal(t, int64(7), got.ProviderID)
		assert.Equal(t, int64(11), got.CustomerID)
		assert.Equal(t, 250.5, got.TotalPrice)
		assert.Equal(t, "Plumbing", got.ServiceTitle)
		require.NotNil(t, got.Description)
		assert.Equal(t, "fix the sink", *got.Description)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setup(t)

		mock.ExpectQuery(`SELECT (.+) FROM bookings b`).
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(selectColumns))

		got, err := repo.GetByID(ctx, 404)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, booking.ErrBookingNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CompareAndSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("swapped", func(t *testing.T) {
		repo, mock := setup(t)

		mock.ExpectExec(`UPDATE bookings SET status = \$1 WHERE id = \$2 AND status = \$3`).
			WithArgs("accepted", int64(5), "pending").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.CompareAndSetStatus(ctx, 5, domain.StatusPending, domain.StatusAccepted)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale expected status", func(t *testing.T) {
		repo, mock := setup(t)

		mock.ExpectExec(`UPDATE bookings SET status`).
			WithArgs("cancelled", int64(5), "pending").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.CompareAndSetStatus(ctx, 5, domain.StatusPending, domain.StatusCancelled)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := setup(t)

		mock.ExpectExec(`UPDATE bookings SET status`).WillReturnError(assert.AnError)

		ok, err := repo.CompareAndSetStatus(ctx, 5, domain.StatusPending, domain.StatusCancelled)

		assert.False(t, ok)
		assert.ErrorIs(t, err, booking.ErrExecQuery)
	})
}

func TestRepository_GetByProviderID(t *testing.T) {
	repo, mock := setup(t)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE b.provider_id = \$1 ORDER BY b.created_at DESC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(selectColumns).
			AddRow(int64(2), int64(3), int64(7), int64(11), 100.0, "pending", nil, createdAt, "Plumbing").
			AddRow(int64(1), int64(4), int64(7), int64(12), 80.0, "completed", nil, createdAt, "Tiling"))

	got, err := repo.GetByProviderID(context.Background(), 7, nil)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Nil(t, got[0].Description)
	assert.Equal(t, domain.StatusCompleted, got[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCustomerIDWithStatus(t *testing.T) {
	repo, mock := setup(t)
	status := domain.StatusPending

	mock.ExpectQuery(`WHERE b.customer_id = \$1 AND b.status = \$2 ORDER BY b.created_at DESC`).
		WithArgs(int64(11), "pending").
		WillReturnRows(sqlmock.NewRows(selectColumns))

	got, err := repo.GetByCustomerID(context.Background(), 11, &status)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
