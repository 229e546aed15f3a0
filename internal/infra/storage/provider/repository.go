package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/QuickServe-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий профилей исполнителей
// Связывает пользователя (users.id) и его профиль исполнителя (provider_profiles.id)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetProfileIDByUserID возвращает ID профиля исполнителя для пользователя
func (r *Repository) GetProfileIDByUserID(ctx context.Context, userID int64) (int64, error) {
	return r.lookup(ctx, "GetProfileIDByUserID", "id", squirrel.Eq{"user_id": userID})
}

// GetUserIDByProfileID возвращает ID пользователя, которому принадлежит профиль исполнителя
func (r *Repository) GetUserIDByProfileID(ctx context.Context, profileID int64) (int64, error) {
	return r.lookup(ctx, "GetUserIDByProfileID", "user_id", squirrel.Eq{"id": profileID})
}

func (r *Repository) lookup(ctx context.Context, op, column string, where squirrel.Eq) (int64, error) {
	query, args, err := psqlbuilder.Select(column).
		From("provider_profiles").
		Where(where).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrProfileNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s - scan: %v", ErrScanRow, op, err)
	}

	return id, nil
}
