package exchange

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds the whole exchange, from dialing to the end of the body.
const DefaultTimeout = 10 * time.Second

type Options struct {
	Timeout         time.Duration
	FollowRedirects bool
	Transport       http.RoundTripper
}
