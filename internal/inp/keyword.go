package inp

import (
	"fmt"
	"strings"
)

// Keyword is a parsed keyword line.
type Keyword struct {
	Name   string
	Params []Param
}

// Param is a single keyword parameter. Flag parameters (no '=') have
// an empty Value.
type Param struct {
	Key   string
	Value string
}

// ParseKeyword splits a keyword line such as
//
//	*Nset, nset=Set-1, generate
//
// into its name and parameters. Keys and values are
// whitespace-trimmed; case is preserved. This splitter is independent
// of block extraction: the block locator matches family keywords
// directly on the raw line.
func ParseKeyword(raw string) (Keyword, error) {
	if IsCommentLine(raw) || !IsKeywordLine(raw) {
		return Keyword{}, fmt.Errorf("not a keyword line: %q", strings.TrimSpace(raw))
	}
	s := strings.TrimSuffix(raw, "\n")
	s = strings.TrimSuffix(s, "\r")
	parts := strings.Split(s[1:], ",")
	kw := Keyword{Name: strings.TrimSpace(parts[0])}
	for _, part := range parts[1:] {
		kv := strings.SplitN(part, "=", 2)
		p := Param{Key: strings.TrimSpace(kv[0])}
		if len(kv) == 2 {
			p.Value = strings.TrimSpace(kv[1])
		}
		kw.Params = append(kw.Params, p)
	}
	return kw, nil
}
