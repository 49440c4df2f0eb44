package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/nojima/httpie-lite/input"
	"github.com/pkg/errors"
)

func BuildHTTPRequest(ctx context.Context, command input.Command) (*http.Request, error) {
	var method string
	var bt bodyTuple
	switch c := command.(type) {
	case *input.Get:
		method = http.MethodGet
	case *input.Post:
		method = http.MethodPost
		var err error
		bt, err = buildJSONBody(c.Body())
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown command: %T", command)
	}

	r, err := http.NewRequestWithContext(ctx, method, command.URL(), bt.body)
	if err != nil {
		return nil, errors.Wrap(err, "building HTTP request")
	}
	if bt.contentType != "" {
		r.Header.Set("Content-Type", bt.contentType)
	}
	r.ContentLength = bt.contentLength
	return r, nil
}

type bodyTuple struct {
	body          io.Reader
	contentLength int64
	contentType   string
}

func buildJSONBody(fields map[string]string) (bodyTuple, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return bodyTuple{}, errors.Wrap(err, "marshaling JSON of HTTP body")
	}
	return bodyTuple{
		body:          bytes.NewReader(body),
		contentLength: int64(len(body)),
		contentType:   "application/json",
	}, nil
}
