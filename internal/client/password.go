package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type terminalPasswordReader struct {
	in    *os.File
	out   io.Writer
	lines *bufio.Reader
}

// NewTerminalPasswordReader reads passwords from in with echo disabled. When
// in is not a terminal (for example a pipe in scripts) it reads one line.
func NewTerminalPasswordReader(in *os.File, out io.Writer) PasswordReader {
	return &terminalPasswordReader{in: in, out: out, lines: bufio.NewReader(in)}
}

func (r *terminalPasswordReader) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	fd := int(r.in.Fd())
	if term.IsTerminal(fd) {
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(r.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimSpace(string(password)), nil
	}

	line, err := r.lines.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
