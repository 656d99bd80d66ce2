package inp

import (
	"errors"
	"fmt"
)

// Mode selects how the end of a keyword block is detected.
type Mode int

const (
	// ModeStrict trusts Abaqus-generated files: the block is contiguous
	// and ends at the first unrelated keyword or comment, so the rest
	// of the file is never read.
	ModeStrict Mode = iota
	// ModePermissive makes no contiguity assumption. The reported range
	// is the same as in strict mode, but scanning continues to the end
	// of the file and a second disjoint section of the same family is
	// an error instead of silent corruption.
	ModePermissive
)

var (
	ErrNoBlock    = errors.New("keyword block not found")
	ErrSplitBlock = errors.New("keyword block is split across disjoint sections")
	ErrRange      = errors.New("block range out of bounds")
)

// Family describes one keyword family: the line that opens its block
// and the sub-keyword lines that belong inside it. Member may be nil
// for families without sub-keywords.
type Family struct {
	Name   string
	Start  func(string) bool
	Member func(string) bool
}

// Range is the inclusive, zero-based line span [Begin, End] of a
// block. Open marks a block that ran to the end of the file.
type Range struct {
	Begin int
	End   int
	Open  bool
}

// Locate scans lines once and returns the span of the family's block.
// Data lines and family keywords extend the block; an unrelated
// keyword or a comment ends it.
func Locate(lines []string, family Family, mode Mode) (Range, error) {
	const (
		before = iota
		inside
		after
	)
	cursor := before
	var r Range
	for i, raw := range lines {
		line := Classify(raw)
		isStart := line.Kind == KindKeyword && family.Start(raw)
		switch cursor {
		case before:
			if isStart {
				cursor = inside
				r.Begin = i
				r.End = i
			}
		case inside:
			belongs := line.Kind == KindData ||
				(line.Kind == KindKeyword && (isStart || (family.Member != nil && family.Member(raw))))
			if belongs {
				r.End = i
				continue
			}
			if mode == ModeStrict {
				return r, nil
			}
			cursor = after
		case after:
			if isStart {
				return Range{}, fmt.Errorf("%w: %s section reappears at line %d", ErrSplitBlock, family.Name, i+1)
			}
		}
	}
	if cursor == before {
		return Range{}, fmt.Errorf("%w: %s", ErrNoBlock, family.Name)
	}
	if cursor == inside {
		r.Open = true
	}
	return r, nil
}

// Splice replaces lines[r.Begin:r.End+1] with replacement and returns
// the new sequence. A nil replacement deletes the block.
func Splice(lines []string, r Range, replacement []string) ([]string, error) {
	if r.Begin < 0 || r.End < r.Begin || r.End >= len(lines) {
		return nil, fmt.Errorf("%w: [%d, %d] in %d lines", ErrRange, r.Begin, r.End, len(lines))
	}
	out := make([]string, 0, r.Begin+len(replacement)+len(lines)-r.End-1)
	out = append(out, lines[:r.Begin]...)
	out = append(out, replacement...)
	out = append(out, lines[r.End+1:]...)
	return out, nil
}
