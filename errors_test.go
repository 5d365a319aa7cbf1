package guard_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	guard "github.com/guardhouse/guard"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := guard.Issues{
		{Path: "/a", Code: guard.CodeEmpty},
		{Path: "/b", Code: guard.CodeTooFewItems},
		{Path: "/c", Code: guard.CodeTooShort},
		{Path: "/d", Code: guard.CodeTooLong},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	if !strings.Contains(s, "empty at /a") {
		t.Fatalf("expected first issue in summary, got %q", s)
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("expected overflow marker, got %q", s)
	}
}

func TestAsIssues(t *testing.T) {
	err := guard.NotEmpty([]int{}, "xs")
	iss, ok := guard.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v (%v)", iss, ok)
	}

	wrapped := fmt.Errorf("handler: %w", err)
	if _, ok := guard.AsIssues(wrapped); !ok {
		t.Fatalf("expected issues through wrapping")
	}

	if _, ok := guard.AsIssues(errors.New("plain")); ok {
		t.Fatalf("expected no issues from a plain error")
	}
	if _, ok := guard.AsIssues(nil); ok {
		t.Fatalf("expected no issues from nil")
	}
}

func TestAppendIssues(t *testing.T) {
	var iss guard.Issues
	iss = guard.AppendIssues(iss, guard.Issue{Path: "/x", Code: guard.CodeBlank})
	iss = guard.AppendIssues(iss, guard.Issue{Path: "/y", Code: guard.CodeNilValue})
	if len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(iss))
	}
}

func TestIssuesJSON(t *testing.T) {
	err := guard.MinCount([]int{1}, "ids", 3)
	b, jerr := guard.IssuesJSON(err)
	if jerr != nil {
		t.Fatalf("unexpected marshal error: %v", jerr)
	}
	s := string(b)
	if !strings.Contains(s, `"code":"too_few_items"`) || !strings.Contains(s, `"path":"/ids"`) {
		t.Fatalf("unexpected payload: %s", s)
	}

	b, jerr = guard.IssuesJSON(nil)
	if jerr != nil || string(b) != "[]" {
		t.Fatalf("expected empty array for nil error, got %s (%v)", b, jerr)
	}
}
