// Package users holds the user record model and the bounded in-memory
// store the menu driver operates on.
package users

import (
	"fmt"

	"github.com/dmitrijs2005/userkeeper/internal/common"
)

// Capacity and field bounds. The text limits count bytes, not runes, so a
// stored field never exceeds 31 bytes of UTF-8.
const (
	MaxUsers    = 5
	MaxFieldLen = 31
	MaxAge      = 150
)

// User is a single registry record. Records are validated before they
// enter the store, so a stored User is always fully populated.
type User struct {
	Username string
	Password string
	Age      int
}

func validateUsername(s string) error {
	if len(s) == 0 || len(s) > MaxFieldLen {
		return fmt.Errorf("username: %w", common.ErrInvalidField)
	}
	return nil
}

func validatePassword(s string) error {
	if len(s) == 0 || len(s) > MaxFieldLen {
		return fmt.Errorf("password: %w", common.ErrInvalidField)
	}
	return nil
}

func validateAge(age int) error {
	if age < 0 || age > MaxAge {
		return fmt.Errorf("age: %w", common.ErrInvalidField)
	}
	return nil
}
