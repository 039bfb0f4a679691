package domain

import "time"

// User is persisted whole, hash included; the API never returns a User
// body, only a confirmation message on register.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Gender       string    `json:"gender"`
	Type         string    `json:"type"` // user/admin
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
