package main

import (
	"github.com/golang/glog"
	"github.com/napalu/jsonhelp/errs"
	"github.com/napalu/jsonhelp/i18n"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

type rootOptions struct {
	logToStderr bool
	verbose     int
	lang        string
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "jsonhelp",
		Short:         "Print machine-readable help of command definitions",
		Long:          "jsonhelp loads a JSON or YAML command definition and prints the help of one of its commands as JSON.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogging(opts.logToStderr, opts.verbose)
			return checkLanguage(opts.lang)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}

	cmd.PersistentFlags().BoolVar(
		&opts.logToStderr, "logtostderr", false,
		"Log to stderr instead of to files")
	cmd.PersistentFlags().IntVarP(
		&opts.verbose, "verbose", "v", 0,
		"Enable verbose logging (e.g., v=3); anything >3 is very verbose")
	cmd.PersistentFlags().StringVar(
		&opts.lang, "lang", "",
		"Language of error messages (e.g., de or fr-CH)")

	cmd.AddCommand(newDescribeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd, opts
}

// checkLanguage fails when lang names a language without translations
func checkLanguage(lang string) error {
	if lang == "" {
		return nil
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return errs.ErrLanguageUnavailable.WithArgs(lang)
	}
	want, _ := tag.Base()
	got, _ := i18n.Default().Match(lang).Base()
	if want != got {
		return errs.ErrLanguageUnavailable.WithArgs(lang)
	}

	return nil
}
