package data

import "encoding/json"

// Artist is an item from the "artist" content type. Any of the three links
// may be missing.
type Artist struct {
	ID          string
	Name        string
	Description string

	Genre *Link
	Day   *Link
	Stage *Link
}

// Link is a reference to an Entry. Only the id is used for resolution; the
// link doesn't say which kind of entry it points at.
type Link struct {
	ID string
}

type wireLink struct {
	Sys struct {
		Type     string `json:"type"`
		LinkType string `json:"linkType"`
		ID       string `json:"id"`
	} `json:"sys"`
}

type wireArtist struct {
	Sys struct {
		ID string `json:"id"`
	} `json:"sys"`
	Fields struct {
		Name        string    `json:"name"`
		Description string    `json:"description"`
		Genre       *wireLink `json:"genre"`
		Day         *wireLink `json:"day"`
		Stage       *wireLink `json:"stage"`
	} `json:"fields"`
}

func (a *Artist) UnmarshalJSON(bs []byte) error {
	var w wireArtist
	if err := json.Unmarshal(bs, &w); err != nil {
		return err
	}
	*a = Artist{
		ID:          w.Sys.ID,
		Name:        w.Fields.Name,
		Description: w.Fields.Description,
		Genre:       w.Fields.Genre.link(),
		Day:         w.Fields.Day.link(),
		Stage:       w.Fields.Stage.link(),
	}
	return nil
}

func (a Artist) MarshalJSON() ([]byte, error) {
	var w wireArtist
	w.Sys.ID = a.ID
	w.Fields.Name = a.Name
	w.Fields.Description = a.Description
	w.Fields.Genre = a.Genre.wire()
	w.Fields.Day = a.Day.wire()
	w.Fields.Stage = a.Stage.wire()
	return json.Marshal(w)
}

func (w *wireLink) link() *Link {
	if w == nil || w.Sys.ID == "" {
		return nil
	}
	return &Link{ID: w.Sys.ID}
}

func (l *Link) wire() *wireLink {
	if l == nil {
		return nil
	}
	w := &wireLink{}
	w.Sys.Type = "Link"
	w.Sys.LinkType = "Entry"
	w.Sys.ID = l.ID
	return w
}
