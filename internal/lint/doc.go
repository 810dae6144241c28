// Package lint checks a parsed read-later list against the embedded list
// schema. It catches entries that parse but would not survive a round trip
// or are unlikely to be real links: URLs without a scheme or with spaces,
// titles spanning lines, tags containing commas, repeated tags.
package lint
