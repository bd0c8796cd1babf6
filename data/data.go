// Package data holds the records we get back from the content delivery API:
// artists, and the genre, day, and stage entries they link to.
package data

import (
	"encoding/json"
	"errors"
)

// Content types, as found in an entry's sys.contentType.sys.id.
const (
	KindArtist = "artist"
	KindGenre  = "genre"
	KindDay    = "day"
	KindStage  = "stage"
)

// Payload is the whole result of one fetch. It is never modified after
// decoding.
type Payload struct {
	Items    []Artist
	Includes []Entry
}

var ErrNoItems = errors.New("payload has no 'items'")

// The API omits includes entirely when no item links to anything, so only
// items is required.
type wirePayload struct {
	Items    *[]Artist `json:"items"`
	Includes struct {
		Entry []Entry `json:"Entry"`
	} `json:"includes"`
}

func (p *Payload) UnmarshalJSON(bs []byte) error {
	var w wirePayload
	if err := json.Unmarshal(bs, &w); err != nil {
		return err
	}
	if w.Items == nil {
		return ErrNoItems
	}
	*p = Payload{
		Items:    *w.Items,
		Includes: w.Includes.Entry,
	}
	return nil
}

func (p Payload) MarshalJSON() ([]byte, error) {
	w := wirePayload{Items: &p.Items}
	w.Includes.Entry = p.Includes
	return json.Marshal(w)
}

// Setting is one persisted key/value pair, like "space_id".
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string
}
