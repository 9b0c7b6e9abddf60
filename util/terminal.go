package util

import (
	"io"
	"os"

	"github.com/napalu/jsonhelp/errs"
	"golang.org/x/term"
)

// TerminalChecker reports whether fd refers to a terminal
type TerminalChecker func(fd int) bool

// DefaultTerminalChecker uses golang.org/x/term
var DefaultTerminalChecker TerminalChecker = term.IsTerminal

// ReadPiped reads all of f, refusing to block on an interactive terminal. A nil checker uses
// DefaultTerminalChecker.
func ReadPiped(f *os.File, checker TerminalChecker) ([]byte, error) {
	if checker == nil {
		checker = DefaultTerminalChecker
	}
	if checker(int(f.Fd())) {
		return nil, errs.ErrStdinIsTerminal
	}

	return io.ReadAll(f)
}
