package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/amonks/lineup/failure"
)

// FetchJSON does an HTTP GET on the given URL, then decodes the response body
// as JSON into v.
//
// Failing to make the request, or getting a non-2xx status, is a transport
// failure. A body that doesn't decode into v is a runtime failure.
func FetchJSON(ctx context.Context, client *http.Client, rawURL string, v any) error {
	where := redact(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return failure.Runtime(fmt.Errorf("error building request for '%s': %w", where, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = where
		}
		return failure.Transport(fmt.Errorf("error fetching '%s': %w", where, err))
	}
	defer resp.Body.Close()

	if err := Error(resp); err != nil {
		return failure.Transport(fmt.Errorf("unexpected status from '%s': %w", where, err))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return failure.Runtime(fmt.Errorf("error decoding json from '%s': %w", where, err))
	}

	return nil
}

// StatusError is a non-2xx response. Message is the API's own explanation,
// if the body had one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http status code %d", e.StatusCode)
	}
	return fmt.Sprintf("http status code %d: %s", e.StatusCode, e.Message)
}

// Error checks the given http response for an error code, and, if one is
// present, reads the body and returns a friendly error.
func Error(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	bs, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return fmt.Errorf("http status code %d; error reading body: %w", resp.StatusCode, err)
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode}
	if gjson.ValidBytes(bs) {
		statusErr.Message = gjson.GetBytes(bs, "message").String()
	}
	return statusErr
}

// redact drops the query string, which carries the access token.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<unparseable url>"
	}
	u.RawQuery = ""
	return u.String()
}
