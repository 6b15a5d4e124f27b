package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Default legislator datasets hosted on theunitedstates.io.
const (
	DefaultCurrentSource    = "https://theunitedstates.io/congress-legislators/legislators-current.json"
	DefaultHistoricalSource = "https://theunitedstates.io/congress-legislators/legislators-historical.json"
)

// LoadReferenceTable retrieves the current and historical legislator
// datasets, merges them current-first, and builds the surname reference
// table restricted to terms inside the filter window. It returns the table
// and the sorted list of party labels seen among qualifying terms.
func LoadReferenceTable(ctx context.Context, current, historical string, startFilter, endFilter time.Time) (ReferenceTable, []string, error) {
	var merged []Legislator
	for _, src := range []string{current, historical} {
		raw, err := readSource(ctx, src)
		if err != nil {
			return nil, nil, fmt.Errorf("retrieving legislator data from %s: %w", src, err)
		}
		var legislators []Legislator
		if err := json.Unmarshal(raw, &legislators); err != nil {
			return nil, nil, fmt.Errorf("parsing legislator data from %s: %w", src, err)
		}
		merged = append(merged, legislators...)
	}
	return buildReferenceTable(merged, startFilter, endFilter)
}

// buildReferenceTable filters a merged legislator list down to the surname
// table. A term qualifies only when it strictly straddles the window:
// start < startFilter and end > endFilter. Later qualifying terms overwrite
// earlier entries for the same surname.
func buildReferenceTable(legislators []Legislator, startFilter, endFilter time.Time) (ReferenceTable, []string, error) {
	table := make(ReferenceTable)
	seen := make(map[string]struct{})

	for _, l := range legislators {
		if l.Name.Last == "" {
			return nil, nil, fmt.Errorf("legislator record missing last name (official_full=%q)", l.Name.OfficialFull)
		}
		full := l.Name.OfficialFull
		if full == "" {
			full = "NA"
		}
		full = strings.ToUpper(full)
		last := strings.ToUpper(l.Name.Last)

		for _, term := range l.Terms {
			start, err := time.Parse(dateLayout, term.Start)
			if err != nil {
				return nil, nil, fmt.Errorf("term start date for %s: %w", last, err)
			}
			end, err := time.Parse(dateLayout, term.End)
			if err != nil {
				return nil, nil, fmt.Errorf("term end date for %s: %w", last, err)
			}
			party := term.Party
			if party == "" {
				party = "NA"
			}

			if start.Before(startFilter) && end.After(endFilter) {
				table[last] = RefEntry{FullName: full, Party: party}
				seen[party] = struct{}{}
			}
		}
	}

	parties := make([]string, 0, len(seen))
	for p := range seen {
		parties = append(parties, p)
	}
	sort.Strings(parties)

	return table, parties, nil
}
