package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type terminal interface {
	ReadLine(prompt string) (string, error)
	Printf(format string, args ...any)
	Println(args ...any)
}

type lineTerminal struct {
	reader *bufio.Reader
	out    io.Writer
}

func newLineTerminal(in io.Reader, out io.Writer) *lineTerminal {
	return &lineTerminal{reader: bufio.NewReader(in), out: out}
}

// ReadLine prints the prompt without a line break and returns the next line without its terminator.
// Lines have no length limit. A final line without a terminator is still returned.
func (t *lineTerminal) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(t.out, prompt)

	line, err := t.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %w", errInputClosed, err)
		}
		if line == "" {
			return "", errInputClosed
		}
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (t *lineTerminal) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(t.out, format, args...)
}

func (t *lineTerminal) Println(args ...any) {
	_, _ = fmt.Fprintln(t.out, args...)
}
