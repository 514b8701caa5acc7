package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userkeeper/internal/common"
	"github.com/dmitrijs2005/userkeeper/internal/users"
)

// getLine and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getLine = GetLine
var getPassword = GetPassword

// Register prompts for a username, a password, and an age, and appends a
// new record to the store.
//
// When the store is already full, "User limit reached." is printed and no
// prompts are shown. Otherwise all three lines are consumed before any
// validation, so a rejected record leaves the input stream aligned on the
// next menu choice. A field that fails validation, including an age line
// that is not a number, prints "Invalid input." and leaves the store
// unchanged. The returned error is non-nil only when reading input failed.
func (a *App) Register(ctx context.Context) error {
	if a.store.Count() >= users.MaxUsers {
		fmt.Fprintln(a.out, statusLimitReached)
		return nil
	}

	username, err := getLine(a.reader, promptUsername, a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, promptPassword, a.out)
	if err != nil {
		return err
	}

	ageLine, err := getLine(a.reader, promptAge, a.out)
	if err != nil {
		return err
	}

	age, convErr := strconv.Atoi(strings.TrimSpace(ageLine))
	if convErr != nil {
		a.log.Debug(ctx, "register rejected", "reason", "age is not a number")
		fmt.Fprintln(a.out, statusInvalidInput)
		return nil
	}

	if err := a.store.Register(username, password, age); err != nil {
		a.log.Debug(ctx, "register rejected", "reason", err)
		if errors.Is(err, common.ErrStoreFull) {
			fmt.Fprintln(a.out, statusLimitReached)
		} else {
			fmt.Fprintln(a.out, statusInvalidInput)
		}
		return nil
	}

	a.log.Debug(ctx, "user registered", "users", a.store.Count())
	fmt.Fprintln(a.out, statusRegistered)
	return nil
}
