// Package contentful fetches a festival's artists, with their linked genre,
// day, and stage entries, from the Contentful content delivery API.
package contentful

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/amonks/lineup/config"
	"github.com/amonks/lineup/data"
	"github.com/amonks/lineup/failure"
	"github.com/amonks/lineup/request"
)

const DefaultBaseURL = "https://cdn.contentful.com"

// ErrHTTP is what the user sees for any failed request.
var ErrHTTP = errors.New("HTTP-fel! Något gick snett i förfrågan.")

// New creates a new Contentful client for the given space.
func New(creds config.Credentials) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		creds:   creds,
	}
}

type Client struct {
	BaseURL string
	HTTP    *http.Client

	creds config.Credentials
}

// FetchArtists gets every entry of the artist content type, along with the
// entries they link to.
func (c *Client) FetchArtists(ctx context.Context) (*data.Payload, error) {
	query := url.Values{}
	query.Add("access_token", c.creds.AccessToken)
	query.Add("content_type", data.KindArtist)

	u := fmt.Sprintf("%s/spaces/%s/entries?%s", c.BaseURL, url.PathEscape(c.creds.SpaceID), query.Encode())

	var payload data.Payload
	if err := request.FetchJSON(ctx, c.HTTP, u, &payload); err != nil {
		if failure.KindOf(err) == failure.KindTransport {
			log.Printf("fetch:\t%s", err)
			return nil, failure.Transport(fmt.Errorf("%w (%w)", ErrHTTP, err))
		}
		return nil, err
	}

	log.Printf("fetched %d artists and %d linked entries", len(payload.Items), len(payload.Includes))

	return &payload, nil
}
