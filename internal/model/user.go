package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents a registered account. Rows are only ever inserted.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username" validate:"required"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	CreatedAt    time.Time `json:"created_at"`
}

// SetPassword hashes and sets the user's password with the given bcrypt cost
func (u *User) SetPassword(password string, cost int) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Identity returns the request-scoped identity of this user
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Username: u.Username}
}

// Identity is who is calling. The request layer builds it from the bearer token
// and passes it into every ledger and report call.
type Identity struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
}

func (i Identity) IsZero() bool {
	return i.UserID == 0 || i.Username == ""
}
