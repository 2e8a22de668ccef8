package domain

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleBuyer = "buyer"
	RoleAgent = "agent"
)

// User is an account on the site: a buyer with a dashboard of favorites and
// saved searches, or an agent.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Claims is the authenticated identity carried through request context after
// token validation.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// NewUser creates a user with a bcrypt-hashed password. Unknown roles fall
// back to buyer.
func NewUser(email, name, password, role string) (*User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if role != RoleBuyer && role != RoleAgent {
		role = RoleBuyer
	}

	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// CheckPassword compares the provided password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
