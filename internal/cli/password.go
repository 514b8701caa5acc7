package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userkeeper/internal/common"
)

// ChangePassword prompts for a new password and applies it to the first
// user in the store.
//
// The prompt is shown and the line consumed before the store is consulted,
// so the input stream stays aligned even when the store turns out to be
// empty. Success is silent; an empty store prints "No users found." and a
// password that fails validation prints "Invalid input.". The returned
// error is non-nil only when reading input failed.
func (a *App) ChangePassword(ctx context.Context) error {
	password, err := getPassword(a.reader, promptNewPassword, a.out)
	if err != nil {
		return err
	}

	if err := a.store.ChangeFirstPassword(password); err != nil {
		a.log.Debug(ctx, "password change rejected", "reason", err)
		if errors.Is(err, common.ErrNoUsers) {
			fmt.Fprintln(a.out, statusNoUsersFound)
		} else {
			fmt.Fprintln(a.out, statusInvalidInput)
		}
		return nil
	}

	a.log.Debug(ctx, "password changed")
	return nil
}
