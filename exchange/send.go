package exchange

import (
	"context"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/nojima/httpie-lite/input"
	"github.com/pkg/errors"
)

// NetworkError is returned when the request could not be completed: the
// connection failed, the deadline passed, or the body could not be read.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func newNetworkError(op string, err error) error {
	return errors.WithStack(&NetworkError{Op: op, Err: err})
}

// Execute sends command through client and captures the response. The
// response body is fully read and closed before Execute returns.
func Execute(ctx context.Context, command input.Command, client Doer, options *Options) (*ResponseBundle, error) {
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r, err := BuildHTTPRequest(ctx, command)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(r)
	if err != nil {
		return nil, newNetworkError("sending HTTP request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError("reading response body", err)
	}

	return &ResponseBundle{
		Proto:      resp.Proto,
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Header:     headerFields(resp.Header),
		Body:       string(body),
	}, nil
}

func reasonPhrase(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, code))
	if reason == "" {
		return http.StatusText(resp.StatusCode)
	}
	return reason
}

// headerFields flattens header into name/value pairs. http.Header does not keep
// the received order, so names are sorted; values of one name keep theirs.
func headerFields(header http.Header) []HeaderField {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)

	var fields []HeaderField
	for _, name := range names {
		for _, value := range header[name] {
			fields = append(fields, HeaderField{Name: name, Value: value})
		}
	}
	return fields
}
