package data

// DisplayRecord is an artist with its links resolved into labels, ready to
// be shown on a card or in a table row.
type DisplayRecord struct {
	Name        string `json:"name"`
	Genre       string `json:"genre"`
	Day         string `json:"day"`
	Stage       string `json:"stage"`
	Description string `json:"description"`
}

// Criteria narrows an artist listing. An empty field puts no constraint on
// that dimension. Day is an English weekday name, not a translated label.
type Criteria struct {
	Genre string
	Day   string
	Stage string
}

func (c Criteria) IsEmpty() bool {
	return c == Criteria{}
}

// Catalog holds the selectable values for each filter dimension, in the
// order the entries appeared.
type Catalog struct {
	Genres []string    `json:"genres"`
	Days   []DayOption `json:"days"`
	Stages []string    `json:"stages"`
}

// DayOption is a selectable day: Value is the English weekday that gets
// submitted, Label is what's shown, like "Fredag (2024-07-12)".
type DayOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
