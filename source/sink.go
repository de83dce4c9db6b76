package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// WriteFile writes text to path exactly as given, without a trailing newline.
func WriteFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteStream writes text followed by a newline. A reader that closes the
// pipe early (like `head`) is not treated as an error.
func WriteStream(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text+"\n"); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
