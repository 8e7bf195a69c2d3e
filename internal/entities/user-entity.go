// Файл: internal/entities/user_entity.go
package entities

import (
	"github.com/aarondl/null/v8"

	"asset-system/pkg/constants"
)

// User - авторизованный пользователь. Для политики доступа только читается.
type User struct {
	ID           uint64 `json:"id"`
	FullName     string `json:"full_name"`
	EmployeeCode string `json:"employee_code"`
	Email        string `json:"email,omitempty"`

	Position   null.String `json:"position"`
	Department null.String `json:"department"`

	// Хеш пароля живёт только на стороне тестового сервера.
	Password string `json:"-"`
}

func (u User) GetID() uint64 { return u.ID }

// PositionCode разбирает должность через таблицу кодов.
func (u *User) PositionCode() (constants.Position, bool) {
	if u == nil || !u.Position.Valid {
		return "", false
	}
	return constants.ParsePosition(u.Position.String)
}

// DepartmentName возвращает название отдела или "" если не задано.
func (u *User) DepartmentName() string {
	if u == nil || !u.Department.Valid {
		return ""
	}
	return u.Department.String
}
