// Файл: internal/entities/user-entity.go
package entities

import "time"

type User struct {
	ID           uint64    `json:"id" db:"id"`
	Fio          string    `json:"fio" db:"fio"`
	Email        string    `json:"email" db:"email"`
	Role         string    `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
