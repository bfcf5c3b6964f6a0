// Package imageref recognizes lines that consist of exactly one markdown
// image reference and extracts the alt text from them.
package imageref

import (
	"regexp"
	"strings"
)

// Variant names the syntactic form an image reference was written in.
type Variant int

const (
	// Inline is the `![alt](destination "title")` form.
	Inline Variant = iota + 1
	// Reference is the `![alt][label]` form.
	Reference
)

func (v Variant) String() string {
	switch v {
	case Inline:
		return "inline"
	case Reference:
		return "reference"
	}

	return "unknown"
}

// Match is the result of matching a line against one of the image grammars.
type Match struct {
	Variant Variant
	// Full is the matched text, which is the whole line without surrounding whitespace.
	Full string
	// Caption is the alt text. It may be empty but is always set on a successful match.
	Caption string
	// Destination and Title are only set for Inline matches.
	Destination string
	Title       string
	// Label is only set for Reference matches and may be empty for collapsed references.
	Label string
}

// Alt text may contain balanced brackets up to this depth.
const maxBracketDepth = 6

// Backslash escapes are not recognized: an escaped bracket still counts as a bracket.
const noBracket = `[^\]\[]*`

func nestedBrackets(depth int) string {
	inner := noBracket
	for i := 0; i < depth; i++ {
		inner = noBracket + `(?:\[` + inner + `\]` + noBracket + `)*`
	}

	return inner
}

var (
	altText = nestedBrackets(maxBracketDepth)

	inlineRe = regexp.MustCompile(
		`^!\[(` + altText + `)\]` +
			`\(\s*(<[^<>\n]*>|(?:[^\s()]|\([^\s()]*\))*)` +
			`(?:\s+(?:"([^"]*)"|'([^']*)'))?\s*\)$`,
	)

	referenceRe = regexp.MustCompile(
		`^!\[(` + altText + `)\][ \t]?\[([^\]]*)\]$`,
	)
)

type matcher func(line string) (Match, bool)

// Tried in order, the first successful matcher wins.
var matchers = []matcher{
	matchInline,
	matchReference,
}

func matchInline(line string) (Match, bool) {
	groups := inlineRe.FindStringSubmatch(line)
	if groups == nil {
		return Match{}, false
	}

	destination := groups[2]
	if strings.HasPrefix(destination, "<") {
		destination = strings.TrimSuffix(strings.TrimPrefix(destination, "<"), ">")
	}

	title := groups[3]
	if title == "" {
		title = groups[4]
	}

	return Match{
		Variant:     Inline,
		Full:        groups[0],
		Caption:     groups[1],
		Destination: destination,
		Title:       title,
	}, true
}

func matchReference(line string) (Match, bool) {
	groups := referenceRe.FindStringSubmatch(line)
	if groups == nil {
		return Match{}, false
	}

	return Match{
		Variant: Reference,
		Full:    groups[0],
		Caption: groups[1],
		Label:   groups[2],
	}, true
}

// MatchLine reports whether line, ignoring leading and trailing whitespace,
// is a single image reference in its entirety.
func MatchLine(line string) (Match, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Match{}, false
	}

	for _, m := range matchers {
		if match, ok := m(line); ok {
			return match, true
		}
	}

	return Match{}, false
}

// IsImageLine is MatchLine without the match result.
func IsImageLine(line string) bool {
	_, ok := MatchLine(line)
	return ok
}
