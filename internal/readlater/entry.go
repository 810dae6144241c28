package readlater

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Field keys recognized in a record. Matching is case-sensitive.
const (
	KeyURL   = "url"
	KeyTitle = "title"
	KeyTags  = "tags"
)

// fieldRe splits a line on its first colon.
var fieldRe = regexp.MustCompile(`^\s*([^:]+?)\s*:\s*(.*?)\s*$`)

// LinkEntry is one saved link.
type LinkEntry struct {
	URL   string
	Title string
	Tags  []string
}

// String renders the entry in canonical record form. The tags line is
// omitted when there are no tags.
func (e LinkEntry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n%s: %s", KeyURL, e.URL, KeyTitle, e.Title)
	if len(e.Tags) > 0 {
		fmt.Fprintf(&b, "\n%s: %s", KeyTags, strings.Join(e.Tags, ", "))
	}
	return b.String()
}

// Validate checks that the entry serializes to a record that parses back
// to the same entry. It returns an error wrapping ErrMissingField or
// ErrInvalidField.
func (e LinkEntry) Validate() error {
	for _, f := range []struct{ key, value string }{{KeyURL, e.URL}, {KeyTitle, e.Title}} {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.key)
		}
		if strings.ContainsAny(f.value, "\r\n") {
			return fmt.Errorf("%w: %s contains a line break", ErrInvalidField, f.key)
		}
		if f.value != strings.TrimSpace(f.value) {
			return fmt.Errorf("%w: %s has surrounding whitespace", ErrInvalidField, f.key)
		}
	}
	for i, t := range e.Tags {
		switch {
		case t == "" || t != strings.TrimSpace(t):
			return fmt.Errorf("%w: tag %q is blank or padded", ErrInvalidField, t)
		case strings.ContainsAny(t, ",\r\n"):
			return fmt.Errorf("%w: tag %q contains a comma or line break", ErrInvalidField, t)
		case slices.Contains(e.Tags[:i], t):
			return fmt.Errorf("%w: duplicate tag %q", ErrInvalidField, t)
		}
	}
	return nil
}

// Equal reports whether two entries have the same url, title and tags in order.
func (e LinkEntry) Equal(o LinkEntry) bool {
	return e.URL == o.URL && e.Title == o.Title && slices.Equal(e.Tags, o.Tags)
}

func (e LinkEntry) clone() LinkEntry {
	e.Tags = slices.Clone(e.Tags)
	return e
}

// ParseEntry parses the text of a single record. Unknown keys and lines
// without a colon are ignored. A repeated url or title line replaces the
// earlier value; repeated tags lines accumulate.
func ParseEntry(text string) (LinkEntry, error) {
	b := NewEntry()
	for _, line := range strings.Split(text, "\n") {
		m := fieldRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		switch m[1] {
		case KeyURL:
			b.URL(m[2])
		case KeyTitle:
			b.Title(m[2])
		case KeyTags:
			b.Tags(SplitTags(m[2])...)
		}
	}
	return b.Build()
}

// SplitTags splits each value on commas, trims the pieces, and drops empty
// ones. It is used for both the tags field and comma-separated CLI input.
func SplitTags(values ...string) []string {
	var tags []string
	for _, v := range values {
		for _, piece := range strings.Split(v, ",") {
			if t := strings.TrimSpace(piece); t != "" {
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// EntryBuilder accumulates the fields of a LinkEntry before validation.
type EntryBuilder struct {
	url   string
	title string
	tags  []string
}

// NewEntry returns an empty builder.
func NewEntry() *EntryBuilder {
	return &EntryBuilder{}
}

// URL sets the link URL.
func (b *EntryBuilder) URL(url string) *EntryBuilder {
	b.url = strings.TrimSpace(url)
	return b
}

// Title sets the link title.
func (b *EntryBuilder) Title(title string) *EntryBuilder {
	b.title = strings.TrimSpace(title)
	return b
}

// Tags appends tags, skipping blanks and tags already added.
func (b *EntryBuilder) Tags(tags ...string) *EntryBuilder {
	b.tags = mergeTags(b.tags, tags)
	return b
}

// Build validates the accumulated fields. See LinkEntry.Validate.
func (b *EntryBuilder) Build() (LinkEntry, error) {
	e := LinkEntry{URL: b.url, Title: b.title, Tags: slices.Clone(b.tags)}
	if err := e.Validate(); err != nil {
		return LinkEntry{}, err
	}
	return e, nil
}

// mergeTags appends each trimmed, non-empty tag of add that is not yet in
// existing. Order of existing is kept and new tags follow in the order given.
func mergeTags(existing, add []string) []string {
	for _, t := range add {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(existing, t) {
			continue
		}
		existing = append(existing, t)
	}
	return existing
}
