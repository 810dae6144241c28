package lint

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/readlater-labs/readlater/internal/readlater"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/list.schema.json
var schemaBytes []byte

const schemaURL = "list.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Result contains the outcome of a list check.
type Result struct {
	Valid  bool
	Issues []Issue
}

// Issue is a single schema violation.
type Issue struct {
	URL     string // URL of the offending entry, empty for list-level issues
	Field   string // "url", "title", "tags", or "" for the entry itself
	Message string
	Keyword string // schema keyword that failed
}

func (i Issue) String() string {
	var b strings.Builder
	if i.URL != "" {
		b.WriteString(i.URL)
	} else {
		b.WriteString("list")
	}
	if i.Field != "" {
		b.WriteString(" " + i.Field)
	}
	b.WriteString(": " + i.Message)
	return b.String()
}

// entryDoc is the JSON shape validated against the schema.
type entryDoc struct {
	URL   string   `json:"url"`
	Title string   `json:"title"`
	Tags  []string `json:"tags,omitempty"`
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Check validates every entry of list. The error return is for schema
// loading failures; violations are reported in the Result.
func Check(list *readlater.List) (*Result, error) {
	return CheckEntries(slices.Collect(list.All()))
}

// CheckEntries validates entries that are not necessarily held in a List.
func CheckEntries(entries []readlater.LinkEntry) (*Result, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	docs := make([]entryDoc, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, entryDoc{URL: e.URL, Title: e.Title, Tags: e.Tags})
	}

	jsonData, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &Result{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &Result{Valid: false, Issues: extractIssues(ve, docs)}, nil
}

func extractIssues(ve *jsonschema.ValidationError, docs []entryDoc) []Issue {
	var issues []Issue
	collectIssues(ve, docs, &issues)
	if len(issues) == 0 {
		return []Issue{{Message: ve.Error()}}
	}
	return deduplicate(issues)
}

// collectIssues walks the error tree down to leaf errors.
func collectIssues(ve *jsonschema.ValidationError, docs []entryDoc, issues *[]Issue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, docs, issues)
		}
		return
	}

	keyword := ""
	msg := ""
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	if keyword == "" || keyword == "$ref" || keyword == "allOf" {
		return
	}

	issue := Issue{Message: msg, Keyword: keyword}
	loc := ve.InstanceLocation
	if len(loc) > 0 {
		if idx, err := strconv.Atoi(loc[0]); err == nil && idx < len(docs) {
			issue.URL = docs[idx].URL
		}
	}
	if len(loc) > 1 {
		issue.Field = loc[1]
	}
	*issues = append(*issues, issue)
}

func deduplicate(issues []Issue) []Issue {
	seen := make(map[string]bool)
	var result []Issue
	for _, issue := range issues {
		key := issue.URL + "|" + issue.Field + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
