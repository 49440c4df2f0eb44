package output

import (
	"github.com/nojima/httpie-lite/exchange"
)

type Printer interface {
	PrintStatusLine(proto string, statusCode int, reason string) error
	PrintHeader(fields []exchange.HeaderField) error
	PrintBody(body string, fields []exchange.HeaderField) error
}

// Render prints bundle as a status line, a header block and a body, in that order.
func Render(printer Printer, bundle *exchange.ResponseBundle) error {
	if err := printer.PrintStatusLine(bundle.Proto, bundle.StatusCode, bundle.Reason); err != nil {
		return err
	}
	if err := printer.PrintHeader(bundle.Header); err != nil {
		return err
	}
	return printer.PrintBody(bundle.Body, bundle.Header)
}
