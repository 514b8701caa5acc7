package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// menuText is printed before every choice prompt. The leading blank line
// separates iterations; the byte layout is part of the program's contract.
const menuText = "\n1. Register\n2. Change Password\n3. Export\n4. Total Age\n5. Delete\n6. Exit\n"

const promptChoice = "Choice: "

const (
	promptUsername    = "Enter username: "
	promptPassword    = "Enter password: "
	promptAge         = "Enter age: "
	promptNewPassword = "Enter new password: "
)

const (
	statusRegistered      = "User registered successfully."
	statusLimitReached    = "User limit reached."
	statusInvalidInput    = "Invalid input."
	statusNoUsersFound    = "No users found."
	statusExportFailed    = "Failed to open file."
	statusUserDeleted     = "User deleted."
	statusNoUsersToDelete = "No users to delete."
	statusInvalidChoice   = "Invalid choice."
)

// commandSet defines the minimal command surface the menu loop needs.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type commandSet interface {
	Register(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Export(ctx context.Context) error
	TotalAge(ctx context.Context) error
	Delete(ctx context.Context) error
}

// runMenu drives the interactive menu until the user exits.
//
// Each iteration prints the menu and the choice prompt, reads one line,
// and parses it as a decimal integer. Choices 1-5 dispatch to methods on
// c; choice 6 returns nil. Anything else, including a line that does not
// parse as a number, prints "Invalid choice." and the loop continues.
//
// Command handlers print their own status lines and return an error only
// when standard input itself failed. EOF anywhere is a normal exit and
// returns nil; any other read error is returned to the caller.
func runMenu(ctx context.Context, c commandSet, reader *bufio.Reader, out io.Writer) error {
	for {
		line, err := GetLine(reader, menuText+promptChoice, out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(out, statusInvalidChoice)
			continue
		}

		var opErr error
		switch choice {
		case 1:
			opErr = c.Register(ctx)
		case 2:
			opErr = c.ChangePassword(ctx)
		case 3:
			opErr = c.Export(ctx)
		case 4:
			opErr = c.TotalAge(ctx)
		case 5:
			opErr = c.Delete(ctx)
		case 6:
			return nil
		default:
			fmt.Fprintln(out, statusInvalidChoice)
		}

		if opErr != nil {
			if errors.Is(opErr, io.EOF) {
				return nil
			}
			return opErr
		}
	}
}
