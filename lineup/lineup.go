// Package lineup joins a festival's artists against the genre, day, and
// stage entries they link to, and narrows the artist list by filter
// criteria.
//
// Everything here is a pure function of a data.Payload, which is never
// modified, so it's all safe to call concurrently.
package lineup

import "github.com/amonks/lineup/data"

// Placeholders for missing values.
const (
	UnknownArtist  = "Okänd artist"
	UnknownGenre   = "Okänd genre"
	UnknownDay     = "Okänd dag"
	UnknownStage   = "Okänd scen"
	NoDescription  = "Ingen beskrivning tillgänglig."
	NoArtistsFound = "Inga artister hittades."
)

// Resolve finds the first entry with the given id and returns its fields.
// A missing id gives the empty field set, never an error; the entry's
// content type isn't checked.
func Resolve(entries []data.Entry, id string) data.Fields {
	for _, entry := range entries {
		if entry.ID == id {
			return entry.Fields
		}
	}
	return data.Fields{}
}

func resolveLink(entries []data.Entry, link *data.Link) data.Fields {
	if link == nil {
		return data.Fields{}
	}
	return Resolve(entries, link.ID)
}

// BuildCatalog collects the genre, day, and stage options from entries, in
// order. Duplicate names are kept.
func BuildCatalog(entries []data.Entry) data.Catalog {
	catalog := data.Catalog{
		Genres: []string{},
		Days:   []data.DayOption{},
		Stages: []string{},
	}
	for _, entry := range entries {
		switch entry.ContentType {
		case data.KindGenre:
			catalog.Genres = append(catalog.Genres, entry.Fields.Name)
		case data.KindDay:
			catalog.Days = append(catalog.Days, data.DayOption{
				Value: entry.Fields.Description,
				Label: DayLabel(entry.Fields),
			})
		case data.KindStage:
			catalog.Stages = append(catalog.Stages, entry.Fields.Name)
		}
	}
	return catalog
}

// resolved is an artist's links looked up, before any formatting.
type resolved struct {
	genre, stage string
	day          data.Fields
}

func resolveArtist(artist data.Artist, entries []data.Entry) resolved {
	r := resolved{
		genre: resolveLink(entries, artist.Genre).Name,
		day:   resolveLink(entries, artist.Day),
		stage: resolveLink(entries, artist.Stage).Name,
	}
	if r.genre == "" {
		r.genre = UnknownGenre
	}
	if r.stage == "" {
		r.stage = UnknownStage
	}
	return r
}

// Project flattens an artist into a DisplayRecord, filling in placeholders
// for anything missing or unresolvable.
func Project(artist data.Artist, entries []data.Entry) data.DisplayRecord {
	r := resolveArtist(artist, entries)
	rec := data.DisplayRecord{
		Name:        artist.Name,
		Genre:       r.genre,
		Day:         DayLabel(r.day),
		Stage:       r.stage,
		Description: artist.Description,
	}
	if rec.Name == "" {
		rec.Name = UnknownArtist
	}
	if rec.Description == "" {
		rec.Description = NoDescription
	}
	return rec
}

// ProjectAll projects each artist, in order.
func ProjectAll(artists []data.Artist, entries []data.Entry) []data.DisplayRecord {
	out := make([]data.DisplayRecord, len(artists))
	for i, artist := range artists {
		out[i] = Project(artist, entries)
	}
	return out
}

// Filter returns the artists matching every non-empty field of criteria,
// in their original order.
//
// Genre and stage are compared against the resolved name, including the
// placeholder, so filtering on UnknownGenre finds artists with no genre.
// Day is compared against the resolved English weekday, so an artist with
// no day never matches a day filter.
func Filter(artists []data.Artist, entries []data.Entry, criteria data.Criteria) []data.Artist {
	out := []data.Artist{}
	for _, artist := range artists {
		if matches(resolveArtist(artist, entries), criteria) {
			out = append(out, artist)
		}
	}
	return out
}

func matches(r resolved, criteria data.Criteria) bool {
	if criteria.Genre != "" && criteria.Genre != r.genre {
		return false
	}
	if criteria.Day != "" && criteria.Day != r.day.Description {
		return false
	}
	if criteria.Stage != "" && criteria.Stage != r.stage {
		return false
	}
	return true
}
