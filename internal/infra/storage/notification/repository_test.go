package notification_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
	"github.com/m04kA/QuickServe-BookingService/internal/infra/storage/notification"
)

var columns = []string{"id", "user_id", "title", "message", "type", "link", "is_read", "created_at"}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := notification.NewRepository(db)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO notifications \(user_id,title,message,type,link\)`).
		WithArgs(int64(11), "Booking Accepted", "msg", "booking", "/customer/bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_read", "created_at"}).AddRow(int64(1), false, createdAt))

	n, err := repo.Create(context.Background(), &domain.Notification{
		UserID:   11,
		Title:    "Booking Accepted",
		Message:  "msg",
		Category: domain.CategoryBooking,
		Link:     domain.LinkCustomerBookings,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), n.ID)
	assert.Equal(t, createdAt, n.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateWithoutLink(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := notification.NewRepository(db)

	mock.ExpectQuery(`INSERT INTO notifications`).
		WithArgs(int64(11), "Welcome", "hello", "system", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_read", "created_at"}).AddRow(int64(2), false, time.Now()))

	_, err = repo.Create(context.Background(), &domain.Notification{
		UserID:   11,
		Title:    "Welcome",
		Message:  "hello",
		Category: domain.CategorySystem,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkAsRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := notification.NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`UPDATE notifications SET is_read = \$1 WHERE id = \$2 AND user_id = \$3 RETURNING`).
		WithArgs(true, int64(5), int64(11)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(5), int64(11), "t", "m", "booking", nil, true, time.Now()))

	n, err := repo.MarkAsRead(ctx, 5, 11)
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	assert.Equal(t, "", n.Link)

	mock.ExpectQuery(`UPDATE notifications`).
		WithArgs(true, int64(5), int64(12)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.MarkAsRead(ctx, 5, 12)
	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkAllAsRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := notification.NewRepository(db)

	mock.ExpectExec(`UPDATE notifications SET is_read = \$1 WHERE is_read = \$2 AND user_id = \$3`).
		WithArgs(true, false, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 4))

	count, err := repo.MarkAllAsRead(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
