package parse

import (
	"github.com/google/shlex"
	"github.com/napalu/jsonhelp/errs"
)

// Split splits a command string into arguments using POSIX shell quoting rules
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, errs.ErrSplitArguments.WithArgs(s).Wrap(err)
	}

	return args, nil
}
