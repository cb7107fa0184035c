package driven

import "context"

// Transport performs the network fetch for remote sources.
// Implementations must enforce a non-infinite timeout so one unresponsive
// remote cannot hold a loader slot indefinitely, and must fail on
// non-success status rather than returning error bodies as content.
type Transport interface {
	// Fetch retrieves the content behind a URL.
	Fetch(ctx context.Context, url string) (*RemoteContent, error)
}

// RemoteContent is the result of a transport fetch.
type RemoteContent struct {
	// Body is the response body as text.
	Body string

	// ContentType is the reported media type (e.g. "text/html"),
	// used to decide whether markup stripping applies.
	ContentType string
}
