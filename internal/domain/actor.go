package domain

import "fmt"

// Role роль пользователя маркетплейса
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// AllRoles все известные роли
var AllRoles = []Role{RoleCustomer, RoleProvider, RoleAdmin}

// ParseRole конвертирует строку в Role с валидацией
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles {
		if Role(s) == r {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func (r Role) String() string {
	return string(r)
}

// Actor аутентифицированный пользователь, выполняющий операцию
// Заполняется middleware аутентификации из JWT
type Actor struct {
	UserID int64
	Role   Role
}
