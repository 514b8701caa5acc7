package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/userkeeper/internal/common"
)

// readPassword and isTerminal are test seams for the x/term calls.
// In tests, replace them with stubs to avoid touching a real terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// readLine reads one line and strips the terminator. Interior and trailing
// spaces survive. If EOF arrives after some input was read, the partial
// line is returned without an error.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// GetLine prints prompt to w verbatim and reads a single line of input
// from reader. Only the line terminator is stripped, so embedded and
// trailing whitespace reach the caller unchanged.
func GetLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	return readLine(reader)
}

// GetPassword prints prompt to w and reads a password.
//
// On a terminal the password is read without echo and a newline is printed
// afterwards to make up for the swallowed Enter; the no-echo buffer is
// wiped once its contents are copied out. When standard input is not a
// terminal the password is read as a plain line from reader, so piped
// input behaves exactly like any other field.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}

	if isTerminal(int(os.Stdin.Fd())) {
		pw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(w)
		if err != nil {
			return "", err
		}
		defer common.WipeByteArray(pw)
		return string(pw), nil
	}

	return readLine(reader)
}
