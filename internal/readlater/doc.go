// Package readlater implements the Open Read-Later list format: a flat text
// file of link records separated by "---" lines, each record holding
// "key: value" fields (url, title, tags).
//
// ParseEntry and LinkEntry.String convert a single record between text and
// memory. List is the keyed collection that the CLI loads, mutates, and
// writes back; Parse and List.String round-trip a whole file.
package readlater
