package httpie

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/nojima/httpie-lite/exchange"
	"github.com/nojima/httpie-lite/flags"
	"github.com/nojima/httpie-lite/input"
	"github.com/nojima/httpie-lite/output"
	"github.com/nojima/httpie-lite/version"
	"github.com/pkg/errors"
)

type Options struct {
	// Transport is used to send the request. If nil, a clone of
	// http.DefaultTransport is used.
	Transport http.RoundTripper
}

func Main(options *Options) error {
	return run(os.Args, colorable.NewColorableStdout(), os.Stderr, options)
}

func run(args []string, stdout, stderr io.Writer, options *Options) error {
	// Parse flags
	args, usage, optionSet, err := flags.Parse(args)
	if err != nil {
		if usage != nil {
			usage.PrintUsage(stderr)
		}
		return err
	}

	switch {
	case optionSet.PrintHelp:
		usage.PrintUsage(stdout)
		return nil
	case optionSet.PrintVersion:
		fmt.Fprintf(stdout, "httpie-lite %s\n", version.Current())
		return nil
	case optionSet.PrintLicense:
		version.PrintLicenses(stdout)
		return nil
	}

	// Parse positional arguments
	command, err := input.ParseArgs(args)
	if _, ok := errors.Cause(err).(*input.UsageError); ok {
		usage.PrintUsage(stderr)
		return err
	}
	if err != nil {
		return err
	}

	// Send request and receive response
	exchangeOptions := optionSet.ExchangeOptions
	exchangeOptions.Transport = options.Transport
	client, err := exchange.BuildHTTPClient(&exchangeOptions)
	if err != nil {
		return err
	}
	bundle, err := exchange.Execute(context.Background(), command, client, &exchangeOptions)
	if err != nil {
		return err
	}

	// Print response
	writer := bufio.NewWriter(stdout)
	defer writer.Flush()
	printer := output.NewPrettyPrinter(output.PrettyPrinterConfig{
		Writer:      writer,
		EnableColor: optionSet.OutputOptions.EnableColor,
	})
	return output.Render(printer, bundle)
}
