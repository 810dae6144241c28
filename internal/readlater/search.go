package readlater

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/text/cases"
)

// Predicate selects entries in Search.
type Predicate func(LinkEntry) bool

// MatchKeyword matches entries whose url, title, or joined tags contain
// keyword as a literal substring, ignoring case. Both sides are Unicode
// case-folded before comparison. An empty keyword matches every entry.
func MatchKeyword(keyword string) Predicate {
	fold := cases.Fold()
	needle := fold.String(keyword)
	return func(e LinkEntry) bool {
		for _, field := range []string{e.URL, e.Title, strings.Join(e.Tags, ", ")} {
			if strings.Contains(fold.String(field), needle) {
				return true
			}
		}
		return false
	}
}

// MatchTag matches entries carrying tag, compared case-insensitively.
func MatchTag(tag string) Predicate {
	tag = strings.TrimSpace(tag)
	return func(e LinkEntry) bool {
		for _, t := range e.Tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	}
}

// MatchURLGlob matches entries whose URL matches a glob pattern such as
// "https://*.example.com/*". The "*" wildcard crosses "/" boundaries.
func MatchURLGlob(pattern string) (Predicate, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling URL pattern %q: %w", pattern, err)
	}
	return func(e LinkEntry) bool {
		return g.Match(e.URL)
	}, nil
}

// And matches entries accepted by every predicate. Nil predicates are skipped.
func And(preds ...Predicate) Predicate {
	return func(e LinkEntry) bool {
		for _, p := range preds {
			if p != nil && !p(e) {
				return false
			}
		}
		return true
	}
}
