// Command jsonhelp prints the machine-readable help of a command declared in a JSON or YAML definition file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/napalu/jsonhelp/cobrahelp"
	"github.com/napalu/jsonhelp/errs"
	"github.com/napalu/jsonhelp/i18n"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the command line args and prints errors to stderr in the language selected with --lang
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd, opts := newRootCmd()
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cobrahelp.Execute(cmd, args)
	glog.Flush()
	if err != nil {
		bundle := i18n.Default()
		provider := bundle.Provider(bundle.Match(opts.lang))
		fmt.Fprintf(stderr, "error: %v\n", errs.WithProvider(err, provider))
	}

	return err
}
