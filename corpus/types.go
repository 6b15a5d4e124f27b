package corpus

// Legislator is one entry in the theunitedstates.io legislator datasets
// (legislators-current.json / legislators-historical.json). Only the fields
// needed for attribution are decoded.
type Legislator struct {
	Name  LegislatorName `json:"name"`
	Terms []Term         `json:"terms"`
}

// LegislatorName carries the two name forms used by the pipeline: the
// surname is the join key against transcript speaker tokens, the full name
// is kept for display.
type LegislatorName struct {
	OfficialFull string `json:"official_full"`
	Last         string `json:"last"`
}

// Term is a single period of service. Dates are ISO calendar dates
// (YYYY-MM-DD) as they appear in the source JSON.
type Term struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Party string `json:"party"`
}

// RefEntry is the resolved identity for one surname.
type RefEntry struct {
	FullName string
	Party    string
}

// ReferenceTable maps an uppercased surname to the identity of the last
// qualifying term seen for it. When several legislators share a surname, or
// one legislator has several qualifying terms, the entry processed last
// wins; the table is not deduplicated.
type ReferenceTable map[string]RefEntry
