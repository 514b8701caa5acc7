// Package export writes the username roster to a text file.
package export

import (
	"bufio"
	"fmt"
	"os"
)

// UsernameSource yields usernames in their current slot order.
type UsernameSource interface {
	Usernames() []string
}

// Writer exports usernames one per line to a fixed path,
// replacing the file on every run.
type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the destination file path.
func (w *Writer) Path() string {
	return w.path
}

// Export writes every username from src to the destination file,
// one per line. An empty source still truncates the file. Any
// failure, including one surfaced at close, is reported.
func (w *Writer) Export(src UsernameSource) (err error) {
	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", w.path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", w.path, cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	for _, name := range src.Usernames() {
		if _, err := fmt.Fprintf(bw, "%s\n", name); err != nil {
			return fmt.Errorf("write %s: %w", w.path, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", w.path, err)
	}

	return nil
}
