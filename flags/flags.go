package flags

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nojima/httpie-lite/exchange"
	"github.com/nojima/httpie-lite/input"
	"github.com/nojima/httpie-lite/output"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
)

type Usage interface {
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	ExchangeOptions exchange.Options
	OutputOptions   output.Options
	PrintHelp       bool
	PrintVersion    bool
	PrintLicense    bool
}

type terminalInfo struct {
	stdoutIsTerminal bool
}

// Parse parses flags in args (args[0] is the program name) and returns the
// remaining positional arguments.
func Parse(args []string) ([]string, Usage, *OptionSet, error) {
	fd := os.Stdout.Fd()
	return parse(args, terminalInfo{
		stdoutIsTerminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	})
}

func parse(args []string, terminalInfo terminalInfo) ([]string, Usage, *OptionSet, error) {
	optionSet := &OptionSet{
		ExchangeOptions: exchange.Options{
			Timeout:         exchange.DefaultTimeout,
			FollowRedirects: true,
		},
	}

	flagSet := getopt.New()
	flagSet.SetProgram("ht")
	flagSet.SetParameters("get URL | post URL [KEY=VALUE ...]")
	flagSet.BoolVarLong(&optionSet.PrintHelp, "help", 'h', "show this help message and exit")
	flagSet.BoolVarLong(&optionSet.PrintVersion, "version", 0, "print version and exit")
	flagSet.BoolVarLong(&optionSet.PrintLicense, "license", 0, "print license information and exit")
	if len(args) == 0 {
		args = []string{"ht"}
	}
	if err := flagSet.Getopt(args, nil); err != nil {
		u := input.UsageError(err.Error())
		return nil, flagSet, nil, errors.WithStack(&u)
	}

	// Color
	optionSet.OutputOptions.EnableColor = terminalInfo.stdoutIsTerminal

	return flagSet.Args(), flagSet, optionSet, nil
}
