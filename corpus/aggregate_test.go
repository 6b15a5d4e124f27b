package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAggregateScenario(t *testing.T) {
	table := ReferenceTable{
		"SMITH": {FullName: "JANE SMITH", Party: "R"},
		"JONES": {FullName: "TOM JONES", Party: "D"},
	}

	buf := NewSpeakerBuffer()
	Segment("\nMr. SMITH. Hello there.\nMs. JONES. Hi back.\nMr. SMITH. Bye.\n", buf)

	corpora := Aggregate(buf.Normalized(), table, []string{"D", "R"})

	if got := corpora["R"]; got != " hello there. " {
		t.Errorf("R corpus = %q, want %q", got, " hello there. ")
	}
	if got := corpora["D"]; got != " hi back. " {
		t.Errorf("D corpus = %q, want %q", got, " hi back. ")
	}
	if strings.Contains(corpora["R"], "bye") {
		t.Error("trailing block leaked into R corpus")
	}
	if strings.Contains(corpora["R"], "hi back") {
		t.Error("JONES text leaked into R corpus")
	}
}

// Unknown surnames and the presiding officer never reach any corpus.
func TestAggregateDropsUnresolvedTokens(t *testing.T) {
	table := ReferenceTable{
		"SMITH": {FullName: "JANE SMITH", Party: "R"},
	}

	buf := NewSpeakerBuffer()
	buf.Append("SMITH", "known speaker. ")
	buf.Append("UNKNOWNSURNAME", "lost words. ")
	buf.Append(PresidingOfficer, "the chair speaks. ")

	corpora := Aggregate(buf, table, []string{"D", "R"})

	if got := corpora["R"]; got != "known speaker. " {
		t.Errorf("R corpus = %q", got)
	}
	for party, text := range corpora {
		if strings.Contains(text, "lost words") || strings.Contains(text, "the chair") {
			t.Errorf("unresolved token text reached %s corpus: %q", party, text)
		}
	}
	if _, ok := corpora["D"]; ok {
		t.Error("empty D corpus should be omitted")
	}
}

func TestAggregateSpeakerOrder(t *testing.T) {
	table := ReferenceTable{
		"ADAMS": {Party: "D"},
		"BLAKE": {Party: "D"},
	}

	// BLAKE first encountered first; corpus order follows the buffer, not
	// the alphabet.
	buf := NewSpeakerBuffer()
	buf.Append("BLAKE", "spoke first. ")
	buf.Append("ADAMS", "spoke second. ")
	buf.Append("BLAKE", "spoke third. ")

	corpora := Aggregate(buf, table, []string{"D"})
	want := "spoke first. spoke third. spoke second. "
	if got := corpora["D"]; got != want {
		t.Errorf("D corpus = %q, want %q", got, want)
	}
}

func TestWriteCorpora(t *testing.T) {
	dir := t.TempDir()
	corpora := map[string]string{
		"Republican": "republican words. ",
		"Democrat":   "",
	}

	written, err := WriteCorpora(dir, corpora, []string{"Democrat", "Independent", "Republican"})
	if err != nil {
		t.Fatalf("WriteCorpora: %v", err)
	}

	want := []string{filepath.Join(dir, "Republican_party_corpus.txt")}
	if len(written) != 1 || written[0] != want[0] {
		t.Fatalf("written = %v, want %v", written, want)
	}

	got, err := os.ReadFile(written[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "republican words. " {
		t.Errorf("file contents = %q", got)
	}

	// Empty and absent parties produce no files.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one output file, found %d", len(entries))
	}
}

func TestWriteCorporaOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CorpusFileName("R"))
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := WriteCorpora(dir, map[string]string{"R": "fresh. "}, []string{"R"}); err != nil {
		t.Fatalf("WriteCorpora: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "fresh. " {
		t.Errorf("file contents = %q, want overwritten value", got)
	}
}

func TestWriteCorporaCreatesOutdir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")

	written, err := WriteCorpora(dir, map[string]string{"R": "text. "}, []string{"R"})
	if err != nil {
		t.Fatalf("WriteCorpora: %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("written = %v", written)
	}
	if _, err := os.Stat(written[0]); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}
