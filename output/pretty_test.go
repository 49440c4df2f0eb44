package output

import (
	"strings"
	"testing"

	"github.com/nojima/httpie-lite/exchange"
	"github.com/pkg/errors"
)

func newPlainPrettyPrinter(buffer *strings.Builder) Printer {
	return NewPrettyPrinter(PrettyPrinterConfig{
		Writer:      buffer,
		EnableColor: false,
	})
}

func TestPrettyPrinter_PrintStatusLine(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := newPlainPrettyPrinter(&buffer)

	// Exercise
	err := printer.PrintStatusLine("HTTP/1.1", 200, "OK")
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := "HTTP/1.1 200 OK\n\n"
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=%q, actual=%q", expected, buffer.String())
	}
}

func TestPrettyPrinter_PrintStatusLine_Colored(t *testing.T) {
	var buffer strings.Builder
	printer := NewPrettyPrinter(PrettyPrinterConfig{Writer: &buffer, EnableColor: true})

	if err := printer.PrintStatusLine("HTTP/2.0", 404, "Not Found"); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	if !strings.Contains(buffer.String(), "\x1b[") {
		t.Errorf("status line is not colored: %q", buffer.String())
	}
	if !strings.Contains(buffer.String(), "HTTP/2.0 404 Not Found") {
		t.Errorf("unexpected output: %q", buffer.String())
	}
}

func TestPrettyPrinter_PrintHeader(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := newPlainPrettyPrinter(&buffer)
	fields := []exchange.HeaderField{
		{Name: "X-Foo", Value: "hello"},
		{Name: "Content-Type", Value: "application/json"},
		{Name: "", Value: "nameless"},
		{Name: "X-Foo", Value: "world"},
	}

	// Exercise
	err := printer.PrintHeader(fields)
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := strings.Join([]string{
		"X-Foo : hello\n",
		"Content-Type : application/json\n",
		"X-Foo : world\n",
		"\n",
	}, "")
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=\n%s\n (len=%d)\nactual=\n%s\n (len=%d)",
			expected, len(expected), buffer.String(), len(buffer.String()))
	}
}

func TestPrettyPrinter_PrintBody(t *testing.T) {
	contentTypeJSON := []exchange.HeaderField{{Name: "Content-Type", Value: "application/json"}}
	namedJSON := []exchange.HeaderField{{Name: "application/json", Value: "irrelevant"}}

	testCases := []struct {
		title    string
		body     string
		fields   []exchange.HeaderField
		expected string
	}{
		{
			title:    "Content-Type value does not trigger verbatim output",
			body:     `{"x":1}`,
			fields:   contentTypeJSON,
			expected: "{\n  \"x\": 1\n}\n",
		},
		{
			title:  "Nested JSON",
			body:   `{"zzz":"hello","obj":{"k":null,"b":true}}`,
			fields: nil,
			expected: strings.Join([]string{
				`{`,
				`  "zzz": "hello",`,
				`  "obj": {`,
				`    "k": null,`,
				`    "b": true`,
				`  }`,
				"}\n",
			}, "\n"),
		},
		{
			title:    "Header named application/json prints verbatim",
			body:     `{"x":1}`,
			fields:   namedJSON,
			expected: "{\"x\":1}\n",
		},
		{
			title:    "Verbatim output does not require JSON",
			body:     "plain text",
			fields:   namedJSON,
			expected: "plain text\n",
		},
		{
			title:    "Body is empty",
			body:     "",
			fields:   contentTypeJSON,
			expected: "\n",
		},
		{
			title:    "Body contains only whitespaces",
			body:     "    ",
			fields:   contentTypeJSON,
			expected: "    \n",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			// Setup
			var buffer strings.Builder
			printer := newPlainPrettyPrinter(&buffer)

			// Exercise
			err := printer.PrintBody(tt.body, tt.fields)
			if err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}

			// Verify
			if buffer.String() != tt.expected {
				t.Errorf("unexpected output: expected=\n%q\nactual=\n%q\n", tt.expected, buffer.String())
			}
		})
	}
}

func TestPrettyPrinter_PrintBody_NotJSON(t *testing.T) {
	testCases := []struct {
		title string
		body  string
	}{
		{title: "Text", body: "xyz"},
		{title: "Missing comma", body: `[100 200]`},
		{title: "Unterminated object", body: `{"hello": "world"`},
		{title: "HTML", body: "<html><body>hi</body></html>"},
	}

	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			var buffer strings.Builder
			printer := newPlainPrettyPrinter(&buffer)

			err := printer.PrintBody(tt.body, nil)

			notJSON, ok := errors.Cause(err).(*BodyNotJSONError)
			if !ok {
				t.Fatalf("expected BodyNotJSONError: err=%#v", err)
			}
			if notJSON.Size != len(tt.body) {
				t.Errorf("unexpected size: expected=%d, actual=%d", len(tt.body), notJSON.Size)
			}
			if buffer.Len() != 0 {
				t.Errorf("nothing should be printed: %q", buffer.String())
			}
		})
	}
}

func TestBodyNotJSONError(t *testing.T) {
	err := &BodyNotJSONError{Size: 2048}
	expected := "response body (2K) is not valid JSON"
	if err.Error() != expected {
		t.Errorf("unexpected message: expected=%s, actual=%s", expected, err.Error())
	}
}

func TestRender(t *testing.T) {
	// Setup
	var buffer strings.Builder
	printer := newPlainPrettyPrinter(&buffer)
	bundle := &exchange.ResponseBundle{
		Proto:      "HTTP/1.1",
		StatusCode: 200,
		Reason:     "OK",
		Header: []exchange.HeaderField{
			{Name: "Content-Length", Value: "7"},
			{Name: "Content-Type", Value: "application/json"},
		},
		Body: `{"a":1}`,
	}

	// Exercise
	if err := Render(printer, bundle); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	// Verify
	expected := strings.Join([]string{
		"HTTP/1.1 200 OK",
		"",
		"Content-Length : 7",
		"Content-Type : application/json",
		"",
		"{",
		`  "a": 1`,
		"}",
		"",
	}, "\n")
	if buffer.String() != expected {
		t.Errorf("unexpected output: expected=\n%s\nactual=\n%s\n", expected, buffer.String())
	}
	if bundle.Body != `{"a":1}` || len(bundle.Header) != 2 {
		t.Errorf("bundle was modified: %+v", bundle)
	}
}

func TestRender_NotJSON(t *testing.T) {
	var buffer strings.Builder
	printer := newPlainPrettyPrinter(&buffer)
	bundle := &exchange.ResponseBundle{
		Proto:      "HTTP/1.1",
		StatusCode: 500,
		Reason:     "Internal Server Error",
		Body:       "oops",
	}

	err := Render(printer, bundle)

	if _, ok := errors.Cause(err).(*BodyNotJSONError); !ok {
		t.Fatalf("expected BodyNotJSONError: err=%#v", err)
	}
	if strings.Contains(buffer.String(), "oops") {
		t.Errorf("invalid body should not be printed: %q", buffer.String())
	}
}

func TestIsPreformatted(t *testing.T) {
	if isPreformatted([]exchange.HeaderField{{Name: "Content-Type", Value: "application/json"}}) {
		t.Errorf("Content-Type value should not be taken into account")
	}
	if !isPreformatted([]exchange.HeaderField{{Name: "X-A", Value: ""}, {Name: "application/json", Value: ""}}) {
		t.Errorf("didn't detect header named application/json")
	}
	if isPreformatted([]exchange.HeaderField{{Name: "Application/Json", Value: ""}}) {
		t.Errorf("header name should be compared literally")
	}
}
