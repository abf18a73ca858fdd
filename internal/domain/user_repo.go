package domain

type UserRepository interface {
	CreateUser(user *User) error
	GetUserByID(userID string) (*User, error)
	GetUserByUsername(username string) (*User, error)
	UpdateUser(userID string, update UserUpdate) (*User, error)
}
