package lint

import (
	"strings"
	"testing"

	"github.com/readlater-labs/readlater/internal/readlater"
)

func TestCheck_Valid(t *testing.T) {
	list, err := readlater.Parse("url: https://example.com\ntitle: Example\ntags: a, b\n---\nurl: mailto:me@example.com\ntitle: Mail")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	result, err := Check(list)
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %v", result.Issues)
	}
}

func TestCheck_Empty(t *testing.T) {
	result, err := Check(readlater.New())
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected empty list to be valid, got %v", result.Issues)
	}
}

func TestCheck_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		entry   readlater.LinkEntry
		field   string
		keyword string
	}{
		{"url without scheme", readlater.LinkEntry{URL: "example.com", Title: "Ex"}, "url", "pattern"},
		{"url with space", readlater.LinkEntry{URL: "https://a.com/x y", Title: "Ex"}, "url", "pattern"},
		{"multi-line title", readlater.LinkEntry{URL: "https://a.com", Title: "one\ntwo"}, "title", "pattern"},
		{"tag with comma", readlater.LinkEntry{URL: "https://a.com", Title: "A", Tags: []string{"a,b"}}, "tags", "pattern"},
		{"repeated tag", readlater.LinkEntry{URL: "https://a.com", Title: "A", Tags: []string{"a", "a"}}, "tags", "uniqueItems"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []readlater.LinkEntry{{URL: "https://ok.com", Title: "OK"}, tt.entry}

			result, err := CheckEntries(entries)
			if err != nil {
				t.Fatalf("Check error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}

			found := false
			for _, issue := range result.Issues {
				if issue.URL == tt.entry.URL && issue.Field == tt.field && issue.Keyword == tt.keyword {
					found = true
				}
				if issue.URL == "https://ok.com" {
					t.Errorf("valid entry reported: %v", issue)
				}
			}
			if !found {
				t.Errorf("no %s issue on %s for %s; got %v", tt.keyword, tt.field, tt.entry.URL, result.Issues)
			}
		})
	}
}

func TestCheck_ListWithBadURL(t *testing.T) {
	list, err := readlater.Parse("url: example.com\ntitle: No scheme")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	result, err := Check(list)
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if result.Valid || len(result.Issues) == 0 || result.Issues[0].URL != "example.com" {
		t.Errorf("Check result = %+v, want a url issue on example.com", result)
	}
}

func TestIssueString(t *testing.T) {
	i := Issue{URL: "https://a.com", Field: "title", Message: "bad"}
	if got := i.String(); !strings.HasPrefix(got, "https://a.com title: bad") {
		t.Errorf("String() = %q", got)
	}
	if got := (Issue{Message: "bad"}).String(); got != "list: bad" {
		t.Errorf("String() = %q", got)
	}
}
