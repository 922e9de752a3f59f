package collector

import (
	"net/url"

	"github.com/pkg/errors"
)

// redactTransport strips the query string and userinfo from the URL carried
// by a transport error. Both providers pass their API key as a query
// parameter, and net/http echoes the full request URL on dial or timeout
// failures.
func redactTransport(err error) error {
	var uErr *url.Error
	if !errors.As(err, &uErr) {
		return err
	}
	redacted := "<redacted>"
	if u, perr := url.Parse(uErr.URL); perr == nil {
		u.RawQuery = ""
		u.User = nil
		redacted = u.String()
	}
	return &url.Error{Op: uErr.Op, URL: redacted, Err: uErr.Err}
}
