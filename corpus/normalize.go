package corpus

import (
	"regexp"
	"strings"
)

// Ordered substitution table. Hyphen-wrap repair must run before newlines
// are folded to spaces, and the space collapse must run last so it can
// clean up the doubled spaces the header removal leaves behind.
var normalizeSteps = []struct {
	re  *regexp.Regexp
	sub string
}{
	{regexp.MustCompile(`\x{00ad}\n`), ""}, // soft hyphen + line break
	{regexp.MustCompile(`\n`), " "},
	{regexp.MustCompile(`[0-9]* CONGRESSIONAL RECORD-SENATE [A-Z][a-z]{2,} [0-9]{1,2}, [0-9]{4}`), " "},
	{regexp.MustCompile(`\\'`), "'"},
	{regexp.MustCompile(` {2,}`), " "},
}

// Normalize flattens typesetting artifacts out of one speaker's
// accumulated text and lowercases it: hyphenated line wraps are rejoined,
// newlines become spaces, running page headers are dropped, escaped
// apostrophes are unescaped and space runs collapsed. Pure and idempotent;
// text that matches nothing passes through with only the case fold.
func Normalize(text string) string {
	for _, step := range normalizeSteps {
		text = step.re.ReplaceAllString(text, step.sub)
	}
	return strings.ToLower(text)
}

// Normalized returns a copy of the buffer with Normalize applied to every
// token's accumulated text.
func (b *SpeakerBuffer) Normalized() *SpeakerBuffer {
	out := NewSpeakerBuffer()
	for _, tok := range b.order {
		out.Append(tok, Normalize(b.Text(tok)))
	}
	return out
}
