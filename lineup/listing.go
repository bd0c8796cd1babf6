package lineup

import "github.com/amonks/lineup/data"

// Listing answers catalog and artist queries over one fetched payload.
type Listing struct {
	payload *data.Payload
	catalog data.Catalog
}

// NewListing builds the catalog once; the payload must not be modified
// afterwards.
func NewListing(payload *data.Payload) *Listing {
	return &Listing{
		payload: payload,
		catalog: BuildCatalog(payload.Includes),
	}
}

func (l *Listing) Catalog() data.Catalog { return l.catalog }

// Artists filters and projects the payload's artists.
func (l *Listing) Artists(criteria data.Criteria) []data.DisplayRecord {
	matched := Filter(l.payload.Items, l.payload.Includes, criteria)
	return ProjectAll(matched, l.payload.Includes)
}

// Len is the total number of artists, before filtering.
func (l *Listing) Len() int { return len(l.payload.Items) }
