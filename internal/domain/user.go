package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserUpdate struct {
	Email       *string
	DisplayName *string
}
