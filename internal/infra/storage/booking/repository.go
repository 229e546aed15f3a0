package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/QuickServe-BookingService/internal/domain"
	"github.com/m04kA/QuickServe-BookingService/pkg/psqlbuilder"
)

// bookingColumns колонки бронирования вместе с названием услуги
var bookingColumns = []string{
	"b.id",
	"b.service_id",
	"b.provider_id",
	"b.customer_id",
	"b.total_price",
	"b.status",
	"b.description",
	"b.created_at",
	"COALESCE(s.title, '')",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// ID и created_at заполняются базой данных
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"service_id",
			"provider_id",
			"customer_id",
			"total_price",
			"status",
			"description",
		).
		Values(
			booking.ServiceID,
			booking.ProviderID,
			booking.CustomerID,
			booking.TotalPrice,
			booking.Status,
			booking.Description,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе с названием услуги
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByCustomerID получает бронирования клиента, новые первыми
// Если status не nil, возвращаются только бронирования в этом статусе
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	query, args, err := r.selectBookings().
		Where(withStatus(squirrel.Eq{"b.customer_id": customerID}, status)).
		OrderBy("b.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, "GetByCustomerID", query, args)
}

// GetByProviderID получает бронирования профиля исполнителя, новые первыми
// Если status не nil, возвращаются только бронирования в этом статусе
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	query, args, err := r.selectBookings().
		Where(withStatus(squirrel.Eq{"b.provider_id": providerID}, status)).
		OrderBy("b.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryBookings(ctx, "GetByProviderID", query, args)
}

// CompareAndSetStatus меняет статус, только если текущий статус равен expected
// Возвращает false, если бронирование уже изменено конкурентным запросом (или не существует)
//
// UPDATE bookings SET status = $next WHERE id = $id AND status = $expected
func (r *Repository) CompareAndSetStatus(ctx context.Context, id int64, expected, next domain.BookingStatus) (bool, error) {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", next).
		Where(squirrel.Eq{"id": id, "status": expected}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CompareAndSetStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CompareAndSetStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CompareAndSetStatus - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

func withStatus(where squirrel.Eq, status *domain.BookingStatus) squirrel.Eq {
	if status != nil {
		where["b.status"] = *status
	}
	return where
}

func (r *Repository) selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("services s ON s.id = b.service_id")
}

func (r *Repository) queryBookings(ctx context.Context, op, query string, args []interface{}) ([]*domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var description sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.ServiceID,
		&booking.ProviderID,
		&booking.CustomerID,
		&booking.TotalPrice,
		&booking.Status,
		&description,
		&booking.CreatedAt,
		&booking.ServiceTitle,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		booking.Description = &description.String
	}

	return &booking, nil
}
