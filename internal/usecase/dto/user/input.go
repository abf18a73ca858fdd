package userdto

type RegisterInput struct {
	Username    string
	Email       string
	Password1   string
	Password2   string
	DisplayName string
}
