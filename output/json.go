package output

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/nojima/httpie-lite/exchange"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const jsonMediaType = "application/json"

var jsonFormatOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// BodyNotJSONError is returned when a body that has to be formatted is not JSON.
type BodyNotJSONError struct {
	Size int
}

func (e *BodyNotJSONError) Error() string {
	return fmt.Sprintf("response body (%s) is not valid JSON", bytefmt.ByteSize(uint64(e.Size)))
}

// isPreformatted reports whether a header is named "application/json". Such a
// body is printed as received.
//
// This looks at header names, not at the value of Content-Type, so a normal JSON
// response does not match and goes through formatJSON instead.
func isPreformatted(fields []exchange.HeaderField) bool {
	for _, field := range fields {
		if field.Name == jsonMediaType {
			return true
		}
	}
	return false
}

func formatJSON(body string) (string, error) {
	if strings.TrimSpace(body) == "" {
		return body, nil
	}
	if !gjson.Valid(body) {
		return "", errors.WithStack(&BodyNotJSONError{Size: len(body)})
	}
	formatted := pretty.PrettyOptions([]byte(body), jsonFormatOptions)
	return strings.TrimSuffix(string(formatted), "\n"), nil
}
