package readlater

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// DelimiterLine is the line separating records in a list file.
const DelimiterLine = "---"

// Delimiter joins serialized records.
const Delimiter = "\n" + DelimiterLine + "\n"

// List is an in-memory read-later list keyed by URL.
type List struct {
	links map[string]LinkEntry
}

// New returns an empty list.
func New() *List {
	return &List{links: make(map[string]LinkEntry)}
}

// Parse builds a list from file text. Empty or whitespace-only text yields
// an empty list. Records are separated by lines containing only "---";
// blank records left by leading, trailing or doubled delimiters are skipped.
// The first record that fails to parse aborts the load with a *ParseError.
// When two records share a URL the later one wins.
func Parse(text string) (*List, error) {
	l := New()
	for i, seg := range splitRecords(text) {
		entry, err := ParseEntry(seg.text)
		if err != nil {
			return nil, &ParseError{Record: i + 1, Line: seg.line, Err: err}
		}
		l.links[entry.URL] = entry
	}
	return l, nil
}

type segment struct {
	text string
	line int
}

func splitRecords(text string) []segment {
	var (
		segs  []segment
		cur   []string
		start = 1
	)
	flush := func() {
		body := strings.Join(cur, "\n")
		if strings.TrimSpace(body) != "" {
			segs = append(segs, segment{text: body, line: start})
		}
		cur = cur[:0]
	}
	for n, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == DelimiterLine {
			flush()
			start = n + 2
			continue
		}
		if len(cur) == 0 && strings.TrimSpace(line) == "" {
			// Skip blank lines ahead of a record so its start line
			// points at the first field.
			start = n + 2
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return segs
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.links)
}

// Get looks up an entry by exact URL.
func (l *List) Get(url string) (LinkEntry, bool) {
	e, ok := l.links[url]
	if !ok {
		return LinkEntry{}, false
	}
	return e.clone(), true
}

// Put inserts entry, replacing any entry with the same URL. Tags of the
// replaced entry are not carried over. An entry that fails Validate is
// rejected and the list is left unchanged.
func (l *List) Put(entry LinkEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	l.links[entry.URL] = entry.clone()
	return nil
}

// Delete removes the entry for url and reports whether one was present.
// Deleting a missing URL is not an error.
func (l *List) Delete(url string) bool {
	if _, ok := l.links[url]; !ok {
		return false
	}
	delete(l.links, url)
	return true
}

// AddTags appends the given tags to the entry for url, skipping tags it
// already has. Existing order is kept. A tag containing a comma or line
// break is rejected with ErrInvalidField and nothing is added.
func (l *List) AddTags(url string, tags ...string) error {
	e, ok := l.links[url]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	e.Tags = mergeTags(slices.Clone(e.Tags), tags)
	if err := e.Validate(); err != nil {
		return err
	}
	l.links[url] = e
	return nil
}

// RemoveTags drops every tag of the entry for url that equals one of tags.
// Tags the entry doesn't carry are ignored.
func (l *List) RemoveTags(url string, tags ...string) error {
	e, ok := l.links[url]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	drop := make(map[string]bool, len(tags))
	for _, t := range tags {
		drop[strings.TrimSpace(t)] = true
	}
	kept := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		if !drop[t] {
			kept = append(kept, t)
		}
	}
	e.Tags = kept
	l.links[url] = e
	return nil
}

// All yields every entry in serialized order.
func (l *List) All() iter.Seq[LinkEntry] {
	return l.Search(nil)
}

// Search yields the entries matching pred in serialized order. A nil
// predicate matches everything. The predicate runs lazily as the sequence
// is consumed.
func (l *List) Search(pred Predicate) iter.Seq[LinkEntry] {
	return func(yield func(LinkEntry) bool) {
		for _, e := range l.sorted() {
			if pred != nil && !pred(e) {
				continue
			}
			if !yield(e.clone()) {
				return
			}
		}
	}
}

// URLs returns the URLs of all entries in serialized order.
func (l *List) URLs() []string {
	urls := make([]string, 0, len(l.links))
	for e := range l.All() {
		urls = append(urls, e.URL)
	}
	return urls
}

// Equal reports whether both lists hold the same entries.
func (l *List) Equal(o *List) bool {
	if l.Len() != o.Len() {
		return false
	}
	for url, e := range l.links {
		oe, ok := o.links[url]
		if !ok || !e.Equal(oe) {
			return false
		}
	}
	return true
}

// String serializes the list. Records are sorted by their serialized text
// so output is stable across runs regardless of insertion order.
func (l *List) String() string {
	entries := l.sorted()
	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.String()
	}
	return strings.Join(texts, Delimiter)
}

func (l *List) sorted() []LinkEntry {
	type keyed struct {
		text  string
		entry LinkEntry
	}
	ks := make([]keyed, 0, len(l.links))
	for _, e := range l.links {
		ks = append(ks, keyed{text: e.String(), entry: e})
	}
	slices.SortFunc(ks, func(a, b keyed) int {
		return strings.Compare(a.text, b.text)
	})
	out := make([]LinkEntry, len(ks))
	for i, k := range ks {
		out[i] = k.entry
	}
	return out
}
