package service_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/QuickServe-BookingService/internal/infra/storage/service"
)

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := service.NewRepository(db)

	mock.ExpectQuery(`SELECT id, provider_id, title, price FROM services WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "title", "price"}).
			AddRow(int64(3), int64(7), "Plumbing", 100.0))

	svc, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), svc.ProviderID)
	assert.Equal(t, 100.0, svc.Price)

	mock.ExpectQuery(`FROM services`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "title", "price"}))

	_, err = repo.GetByID(context.Background(), 4)
	assert.ErrorIs(t, err, service.ErrServiceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
