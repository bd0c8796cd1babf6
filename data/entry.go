package data

import "encoding/json"

// Entry is a linked record from includes.Entry: a genre, a day, a stage, or
// something else we don't care about.
type Entry struct {
	ID          string
	ContentType string
	Fields      Fields
}

// Fields is the subset of an entry's fields we read. Which ones are set
// depends on the content type:
//
//   - genre, stage: Name
//   - day: Description (an English weekday, like "Friday") and Date (an
//     ISO-8601 timestamp, like "2024-07-12T00:00:00Z")
//
// The zero value is the empty field set that resolving a missing link gives.
type Fields struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

func (f Fields) IsZero() bool {
	return f == Fields{}
}

type wireEntry struct {
	Sys struct {
		ID          string `json:"id"`
		ContentType struct {
			Sys struct {
				ID string `json:"id"`
			} `json:"sys"`
		} `json:"contentType"`
	} `json:"sys"`
	Fields Fields `json:"fields"`
}

func (e *Entry) UnmarshalJSON(bs []byte) error {
	var w wireEntry
	if err := json.Unmarshal(bs, &w); err != nil {
		return err
	}
	*e = Entry{
		ID:          w.Sys.ID,
		ContentType: w.Sys.ContentType.Sys.ID,
		Fields:      w.Fields,
	}
	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	var w wireEntry
	w.Sys.ID = e.ID
	w.Sys.ContentType.Sys.ID = e.ContentType
	w.Fields = e.Fields
	return json.Marshal(w)
}
