package exchange

// ResponseBundle is a snapshot of one HTTP response. It is built once by
// Execute and is not modified afterwards.
type ResponseBundle struct {
	Proto      string
	StatusCode int
	Reason     string
	Header     []HeaderField
	Body       string
}

type HeaderField struct {
	Name  string
	Value string
}
