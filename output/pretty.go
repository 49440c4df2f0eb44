package output

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/nojima/httpie-lite/exchange"
	"github.com/pkg/errors"
)

type PrettyPrinter struct {
	writer  io.Writer
	aurora  aurora.Aurora
	palette *Palette
}

type PrettyPrinterConfig struct {
	Writer      io.Writer
	EnableColor bool
}

type Palette struct {
	StatusLine     aurora.Color
	FieldName      aurora.Color
	FieldSeparator aurora.Color
	FieldValue     aurora.Color
	Body           aurora.Color
}

var defaultPalette = Palette{
	StatusLine:     aurora.BlueFg,
	FieldName:      aurora.GreenFg,
	FieldSeparator: aurora.GreenFg,
	FieldValue:     aurora.GreenFg,
	Body:           aurora.CyanFg,
}

func NewPrettyPrinter(config PrettyPrinterConfig) Printer {
	return &PrettyPrinter{
		writer:  config.Writer,
		aurora:  aurora.NewAurora(config.EnableColor),
		palette: &defaultPalette,
	}
}

func (p *PrettyPrinter) PrintStatusLine(proto string, statusCode int, reason string) error {
	statusLine := fmt.Sprintf("%s %d %s", proto, statusCode, reason)
	if _, err := fmt.Fprintf(p.writer, "%s\n\n", p.aurora.Colorize(statusLine, p.palette.StatusLine)); err != nil {
		return errors.Wrap(err, "printing status line")
	}
	return nil
}

func (p *PrettyPrinter) PrintHeader(fields []exchange.HeaderField) error {
	for _, field := range fields {
		if field.Name == "" {
			continue
		}
		_, err := fmt.Fprintf(p.writer, "%s %s %s\n",
			p.aurora.Colorize(field.Name, p.palette.FieldName),
			p.aurora.Colorize(":", p.palette.FieldSeparator),
			p.aurora.Colorize(field.Value, p.palette.FieldValue))
		if err != nil {
			return errors.Wrap(err, "printing header")
		}
	}
	fmt.Fprintln(p.writer)
	return nil
}

func (p *PrettyPrinter) PrintBody(body string, fields []exchange.HeaderField) error {
	if isPreformatted(fields) {
		if _, err := fmt.Fprintln(p.writer, body); err != nil {
			return errors.Wrap(err, "printing response body")
		}
		return nil
	}

	formatted, err := formatJSON(body)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.writer, "%s\n", p.aurora.Colorize(formatted, p.palette.Body)); err != nil {
		return errors.Wrap(err, "printing response body")
	}
	return nil
}
