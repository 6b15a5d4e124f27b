package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Aggregate groups the normalized speaker buffers by party. For each party
// label it concatenates, in buffer order, the text of every token whose
// reference entry carries that party. Tokens with no reference entry
// (unknown surnames, the presiding officer) contribute nothing. Parties
// whose concatenation is empty are omitted from the result.
func Aggregate(buf *SpeakerBuffer, table ReferenceTable, parties []string) map[string]string {
	corpora := make(map[string]string, len(parties))
	for _, party := range parties {
		var b strings.Builder
		for _, tok := range buf.Tokens() {
			entry, ok := table[tok]
			if !ok || entry.Party != party {
				continue
			}
			b.WriteString(buf.Text(tok))
		}
		if b.Len() > 0 {
			corpora[party] = b.String()
		}
	}
	return corpora
}

// CorpusFileName returns the output file name for a party corpus.
func CorpusFileName(party string) string {
	return party + "_party_corpus.txt"
}

// WriteCorpora writes one file per party corpus into outdir, creating the
// directory if needed and overwriting existing files. Parties are written
// in the given order; the written paths are returned in that order.
func WriteCorpora(outdir string, corpora map[string]string, parties []string) ([]string, error) {
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var written []string
	for _, party := range parties {
		text := corpora[party]
		if text == "" {
			continue
		}
		path := filepath.Join(outdir, CorpusFileName(party))
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s corpus: %w", party, err)
		}
		written = append(written, path)
	}
	return written, nil
}
