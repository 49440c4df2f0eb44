package input

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func newUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

// InvalidURLError is returned when a URL argument is not an absolute URL.
type InvalidURLError struct {
	URL    string
	Reason string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL '%s': %s", e.URL, e.Reason)
}

// MalformedPairError is returned when a body item has no '='.
type MalformedPairError struct {
	Token string
}

func (e *MalformedPairError) Error() string {
	return fmt.Sprintf("failed to parse '%s': request item must be KEY=VALUE", e.Token)
}

// ParseArgs turns positional arguments into a Command.
//
//	get URL
//	post URL [KEY=VALUE ...]
func ParseArgs(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, newUsageError("subcommand is required (get or post)")
	}
	sub := strings.ToLower(args[0])
	rest := args[1:]

	switch sub {
	case "get":
		if len(rest) == 0 {
			return nil, newUsageError("URL is required")
		}
		if len(rest) > 1 {
			return nil, newUsageError(fmt.Sprintf("get takes exactly one URL, got %d arguments", len(rest)))
		}
		return NewGet(rest[0])
	case "post":
		if len(rest) == 0 {
			return nil, newUsageError("URL is required")
		}
		return NewPost(rest[0], rest[1:])
	default:
		return nil, newUsageError(fmt.Sprintf("unknown subcommand: %s", args[0]))
	}
}

// ParseURL checks that s is an absolute URL and returns it unchanged.
func ParseURL(s string) (string, error) {
	u, err := url.Parse(s)
	if err != nil {
		var urlErr *url.Error
		reason := err.Error()
		if errors.As(err, &urlErr) {
			reason = urlErr.Err.Error()
		}
		return "", errors.WithStack(&InvalidURLError{URL: s, Reason: reason})
	}
	if u.Scheme == "" {
		return "", errors.WithStack(&InvalidURLError{URL: s, Reason: "missing scheme"})
	}
	if u.Host == "" {
		return "", errors.WithStack(&InvalidURLError{URL: s, Reason: "missing host"})
	}
	return s, nil
}

// ParseFormPair splits s on its first '='. Either side may be empty.
func ParseFormPair(s string) (FormPair, error) {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return FormPair{}, errors.WithStack(&MalformedPairError{Token: s})
	}
	return FormPair{Key: key, Value: value}, nil
}
