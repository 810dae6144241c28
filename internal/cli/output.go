package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/readlater-labs/readlater/internal/readlater"
	"github.com/tidwall/pretty"
)

var (
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	urlColor     = color.New(color.FgBlue)
	tagColor     = color.New(color.FgCyan)
)

// jsonEntry is the --json representation of a link.
type jsonEntry struct {
	URL   string   `json:"url"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// printEntries writes entries in record format separated by delimiter lines.
func printEntries(w io.Writer, entries []readlater.LinkEntry) {
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w, readlater.DelimiterLine)
		}
		printEntry(w, e)
	}
}

func printEntry(w io.Writer, e readlater.LinkEntry) {
	fmt.Fprintf(w, "%s: %s\n", readlater.KeyURL, urlColor.Sprint(e.URL))
	fmt.Fprintf(w, "%s: %s\n", readlater.KeyTitle, e.Title)
	if len(e.Tags) > 0 {
		fmt.Fprintf(w, "%s: %s\n", readlater.KeyTags, tagColor.Sprint(strings.Join(e.Tags, ", ")))
	}
}

func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "(none)"
	}
	return strings.Join(tags, ", ")
}

// printJSON writes entries as an indented JSON array, colorized when w is a
// terminal and color is enabled.
func printJSON(w io.Writer, entries []readlater.LinkEntry) error {
	docs := make([]jsonEntry, len(entries))
	for i, e := range entries {
		tags := e.Tags
		if tags == nil {
			tags = []string{}
		}
		docs[i] = jsonEntry{URL: e.URL, Title: e.Title, Tags: tags}
	}
	return writeJSON(w, docs)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = pretty.Pretty(data)
	if !color.NoColor && isTerminal(w) {
		data = pretty.Color(data, nil)
	}
	_, err = w.Write(data)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
