package provider

import (
	"context"
)

// Directory источник соответствий пользователь <-> профиль исполнителя
type Directory interface {
	GetProfileIDByUserID(ctx context.Context, userID int64) (int64, error)
	GetUserIDByProfileID(ctx context.Context, profileID int64) (int64, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
}
