package domain

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

type UserId = int64

// User is a backend account as the client application sees it.
// Passwords are stored and compared in plain text: the mock stands in for
// a test backend and /find_user echoes the full record back.
type User struct {
	Id         UserId `json:"id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	IsApproved bool   `json:"isApproved"`
}

// SignUpPayload is what the sign-up form would submit. Test code queues one
// before driving the form; the /signUp handler consumes it.
type SignUpPayload struct {
	Account  string `json:"account" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
}
