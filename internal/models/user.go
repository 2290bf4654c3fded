package models

import (
	"regexp"
	"time"
)

var mobilePhonePattern = regexp.MustCompile(`^09\d{8}$`)

// User - профиль пользователя; ID совпадает с uid провайдера идентификации
type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsValidPhone проверяет номер мобильного телефона (09xxxxxxxx)
func IsValidPhone(phone string) bool {
	return mobilePhonePattern.MatchString(phone)
}
