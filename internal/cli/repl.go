package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// repl evaluates expressions line by line, printing a prompt before each.
// Errors are printed and do not end the session.
func (r *runner) repl(in io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(w, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := r.out.Write(r.evalOne(line)); err != nil {
			return errors.Wrap(err, "writing result")
		}
	}
	fmt.Fprintln(w)
	return errors.Wrap(sc.Err(), "reading input")
}
