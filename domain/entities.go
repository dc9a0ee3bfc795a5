package domain

import "time"

// Account roles form a closed set; anything else is rejected at signup.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher
}

// Account represents a registered user identity
type Account struct {
	ID           uint
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Verified     bool
	LastLogin    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountView is the public projection of an Account. It never carries
// the password hash or any active secret.
type AccountView struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"userType"`
	Verified  bool      `json:"isVerified"`
	LastLogin time.Time `json:"lastLogin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToView strips the credential from an Account.
func (a *Account) ToView() *AccountView {
	return &AccountView{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		Verified:  a.Verified,
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// SignupInput carries signup fields into the auth service.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	Account      *AccountView
	SessionToken string
	ExpiresAt    time.Time
}

// TokenClaims represents the signed session token payload
type TokenClaims struct {
	AccountID uint   `json:"sub"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
