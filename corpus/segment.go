package corpus

import (
	"regexp"
	"strings"
)

// PresidingOfficer is the pseudo-speaker token for whoever chairs the
// session. It accumulates text like any surname but never resolves against
// the reference table, so it is dropped at aggregation.
const PresidingOfficer = "The PRESIDING OFFICER"

// A speaker turn opens on its own line with a courtesy title and an
// all-caps surname, or with the presiding-officer phrase. The alternatives
// are newline-anchored so they cannot overlap.
var speakerPattern = regexp.MustCompile(
	`\nMr\. ([A-Z]{2,})\.*` +
		`|\nMs\. ([A-Z]{2,})\.*` +
		`|\nMrs\. ([A-Z]{2,})\.*` +
		`|\n(The PRESIDING OFFICER) `,
)

// SpeakerBuffer accumulates spoken text per speaker token, preserving the
// order in which tokens were first encountered. One buffer is shared across
// all input documents of a run.
type SpeakerBuffer struct {
	order []string
	text  map[string]*strings.Builder
}

func NewSpeakerBuffer() *SpeakerBuffer {
	return &SpeakerBuffer{text: make(map[string]*strings.Builder)}
}

// Append adds text to a token's buffer, registering the token on first use.
func (b *SpeakerBuffer) Append(token, s string) {
	sb, ok := b.text[token]
	if !ok {
		sb = &strings.Builder{}
		b.text[token] = sb
		b.order = append(b.order, token)
	}
	sb.WriteString(s)
}

// Tokens returns the tokens in first-encounter order.
func (b *SpeakerBuffer) Tokens() []string { return b.order }

// Text returns the accumulated text for a token, or "" if unknown.
func (b *SpeakerBuffer) Text(token string) string {
	if sb, ok := b.text[token]; ok {
		return sb.String()
	}
	return ""
}

// Len returns the number of distinct tokens seen.
func (b *SpeakerBuffer) Len() int { return len(b.order) }

// Merge appends every buffer of other after the text already held here.
// Merging per-document buffers in input order yields the same result as
// segmenting the documents sequentially into one shared buffer.
func (b *SpeakerBuffer) Merge(other *SpeakerBuffer) {
	for _, tok := range other.order {
		b.Append(tok, other.Text(tok))
	}
}

// Segment scans one document's text stream for speaker boundaries and
// appends each retained block to buf, returning the number of retained
// blocks. Block i runs from the end of boundary i's match to the start of
// boundary i+1's match, plus one trailing space. The final boundary has no
// successor and is discarded whole, so the last speaker's closing remarks
// in each document are lost (longstanding pipeline behavior, see
// DESIGN.md). Zero or one boundary therefore contributes nothing.
func Segment(text string, buf *SpeakerBuffer) int {
	matches := speakerPattern.FindAllStringSubmatchIndex(text, -1)
	retained := 0
	for i := 0; i+1 < len(matches); i++ {
		m := matches[i]
		content := text[m[1]:matches[i+1][0]]
		buf.Append(boundaryToken(text, m), content+" ")
		retained++
	}
	return retained
}

// boundaryToken extracts the speaker token from a boundary match: the
// captured surname for the title alternatives, the sentinel otherwise.
func boundaryToken(text string, m []int) string {
	for g := 1; g <= 3; g++ {
		if m[2*g] >= 0 {
			return text[m[2*g]:m[2*g+1]]
		}
	}
	return PresidingOfficer
}
