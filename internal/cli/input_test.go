package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetLine(rdr("hello world\n"), "Name: ", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if out.String() != "Name: " {
		t.Fatalf("prompt written verbatim, got %q", out.String())
	}
}

func TestGetLine_EOFAfterPartialLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetLine(rdr("lastline"), "Name: ", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetLine_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	_, err := GetLine(rdr(""), "Name: ", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetLine_KeepsWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "embedded spaces survive", input: "two words\n", want: "two words"},
		{name: "leading and trailing spaces survive", input: "  padded  \n", want: "  padded  "},
		{name: "CRLF terminator stripped", input: "dos line\r\n", want: "dos line"},
		{name: "blank line is empty", input: "\n", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetLine(rdr(tc.input), "> ", &out)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestGetPassword_PlainLineWhenNotTerminal(t *testing.T) {
	old := isTerminal
	defer func() { isTerminal = old }()
	isTerminal = func(int) bool { return false }

	var out bytes.Buffer
	got, err := GetPassword(rdr("s3cret\n"), "Enter password: ", &out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)
	require.Equal(t, "Enter password: ", out.String(), "no extra newline on the piped path")
}

func TestGetPassword_TerminalPathWipesBuffer(t *testing.T) {
	oldTerm := isTerminal
	oldRead := readPassword
	defer func() { isTerminal = oldTerm; readPassword = oldRead }()

	buf := []byte("hunter2")
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return buf, nil }

	var out bytes.Buffer
	got, err := GetPassword(rdr(""), "Enter password: ", &out)
	require.NoError(t, err)
	require.Equal(t, "hunter2", got)
	require.Equal(t, "Enter password: \n", out.String(), "echoes the swallowed Enter")
	require.Equal(t, make([]byte, len(buf)), buf, "no-echo buffer must be wiped")
}

func TestGetPassword_TerminalReadError(t *testing.T) {
	oldTerm := isTerminal
	oldRead := readPassword
	defer func() { isTerminal = oldTerm; readPassword = oldRead }()

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), "Enter password: ", &out)
	if err == nil {
		t.Fatal("expected error")
	}
}
