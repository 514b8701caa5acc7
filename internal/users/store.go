package users

import "github.com/dmitrijs2005/userkeeper/internal/common"

// Store is a bounded, ordered collection of user records. Slots are
// compact: deleting the first record shifts the rest down one position, so
// slot 0 is always the oldest live record.
//
// A Store belongs to a single goroutine. The menu driver is its only
// reader and writer, so the methods do no locking.
type Store struct {
	users []User
}

// NewStore returns an empty store with room for MaxUsers records.
func NewStore() *Store {
	return &Store{users: make([]User, 0, MaxUsers)}
}

// Count reports the number of live records.
func (s *Store) Count() int {
	return len(s.users)
}

// Register appends a new record after checking capacity and field bounds.
// The returned error matches common.ErrStoreFull at capacity and
// common.ErrInvalidField when a field violates its bounds; the store is
// left untouched on any error.
func (s *Store) Register(username, password string, age int) error {
	if len(s.users) >= MaxUsers {
		return common.ErrStoreFull
	}
	if err := validateUsername(username); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	if err := validateAge(age); err != nil {
		return err
	}

	s.users = append(s.users, User{Username: username, Password: password, Age: age})
	return nil
}

// ChangeFirstPassword replaces the password of the record in slot 0.
// Returns common.ErrNoUsers on an empty store and common.ErrInvalidField
// when the new password violates its bounds; the record is untouched on
// error.
func (s *Store) ChangeFirstPassword(password string) error {
	if len(s.users) == 0 {
		return common.ErrNoUsers
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	s.users[0].Password = password
	return nil
}

// DeleteFirst removes the record in slot 0 and shifts the remaining
// records down, preserving their relative order. Returns common.ErrNoUsers
// on an empty store.
func (s *Store) DeleteFirst() error {
	if len(s.users) == 0 {
		return common.ErrNoUsers
	}
	s.users = append(s.users[:0], s.users[1:]...)
	return nil
}

// TotalAge returns the sum of all ages. The accumulator is 64-bit; with at
// most MaxUsers records of MaxAge years each the sum cannot overflow.
func (s *Store) TotalAge() int64 {
	var total int64
	for _, u := range s.users {
		total += int64(u.Age)
	}
	return total
}

// Usernames returns a snapshot of the usernames in slot order. The copy
// stays valid however the store changes afterwards.
func (s *Store) Usernames() []string {
	out := make([]string, len(s.users))
	for i, u := range s.users {
		out[i] = u.Username
	}
	return out
}
