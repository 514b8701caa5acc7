package cli

import (
	"context"
	"fmt"
)

// Delete removes the first user; the remaining records shift down one
// slot. Prints "User deleted." on success and "No users to delete." when
// the store is empty.
func (a *App) Delete(ctx context.Context) error {
	if err := a.store.DeleteFirst(); err != nil {
		fmt.Fprintln(a.out, statusNoUsersToDelete)
		return nil
	}

	a.log.Debug(ctx, "user deleted", "users", a.store.Count())
	fmt.Fprintln(a.out, statusUserDeleted)
	return nil
}
