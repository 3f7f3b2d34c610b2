package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirm asks question on out and reads a single line from in. Only "y" and
// "yes" (any case, surrounding whitespace ignored) count as consent; an empty
// line or end of input is a no.
//
// Input is consumed one byte at a time so nothing past the answer is taken
// from in, leaving the rest for the command that runs next.
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	line, err := ReadLine(in)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ReadLine reads one line from in without buffering past the newline. End of
// input terminates the line and is not an error.
func ReadLine(in io.Reader) (string, error) {
	var b strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return b.String(), nil
			}
			b.WriteByte(buf[0])
		}
		if errors.Is(err, io.EOF) {
			return b.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}
