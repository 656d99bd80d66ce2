package inp

import (
	"regexp"
	"strings"
)

// LineKind classifies a single line of an Abaqus input file.
type LineKind int

const (
	KindKeyword LineKind = iota
	KindComment
	KindData
)

var (
	keywordRe  = regexp.MustCompile(`^\*\s?\w`)
	commentRe  = regexp.MustCompile(`^\s?\*\*`)
	materialRe = regexp.MustCompile(`(?i)^\*material, name=([\w-]+)`)
	behaviorRe = regexp.MustCompile(`(?i)^\*(plastic|elastic)`)
	nodeRe     = regexp.MustCompile(`(?i)^\*node`)
)

// Line is one classified input line. Raw keeps the line exactly as it
// appears in the file, terminator included.
type Line struct {
	Kind LineKind
	Raw  string
}

// IsCommentLine reports whether s is a comment line (leading **,
// optionally preceded by one whitespace character).
func IsCommentLine(s string) bool { return commentRe.MatchString(s) }

// IsKeywordLine reports whether s is a keyword line. Comment lines do
// not satisfy this pattern: the second character of a comment is *,
// not a word character.
func IsKeywordLine(s string) bool { return keywordRe.MatchString(s) }

// Classify tags a line. Comments are checked before the generic
// keyword pattern; everything that is neither keyword nor comment is
// data.
func Classify(raw string) Line {
	switch {
	case IsCommentLine(raw):
		return Line{Kind: KindComment, Raw: raw}
	case IsKeywordLine(raw):
		return Line{Kind: KindKeyword, Raw: raw}
	default:
		return Line{Kind: KindData, Raw: raw}
	}
}

// MaterialName extracts the name from a *Material keyword line.
// Matching is case-insensitive; names may contain word characters and
// hyphens.
func MaterialName(s string) (string, bool) {
	m := materialRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// BehaviorName extracts the behavior keyword (*Elastic or *Plastic)
// from a keyword line, preserving the case used in the file.
func BehaviorName(s string) (string, bool) {
	m := behaviorRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsNodeStart reports whether s opens a *Node block.
func IsNodeStart(s string) bool { return nodeRe.MatchString(s) }

// Fields splits a data line into its comma-separated fields, dropping
// the line terminator. Fields are used verbatim, without trimming, so
// the original spacing survives a round trip.
func Fields(raw string) []string {
	s := strings.TrimSuffix(raw, "\n")
	s = strings.TrimSuffix(s, "\r")
	return strings.Split(s, ",")
}
