package i18n

import (
	"strings"
	"testing"
)

const catalogYAML = `
en:
  too_few_items: "needs at least {min} items, got {got}"
ja:
  too_few_items: "要素は {min} 個以上必要です"
`

func TestLoadCatalog_Substitution(t *testing.T) {
	tr, err := LoadCatalog([]byte(catalogYAML), "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := tr.Message("too_few_items", map[string]string{"min": "3", "got": "1"})
	if msg != "needs at least 3 items, got 1" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestLoadCatalog_FallsBackToDictionary(t *testing.T) {
	tr, err := LoadCatalog([]byte(catalogYAML), "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// not in the catalog; the built-in dictionary answers
	if msg := tr.Message("empty", nil); msg == "empty" || msg == "" {
		t.Fatalf("expected dictionary fallback, got %q", msg)
	}
}

func TestLoadCatalog_Invalid(t *testing.T) {
	_, err := LoadCatalog([]byte("[:"), "en")
	if err == nil || !strings.Contains(err.Error(), "catalog") {
		t.Fatalf("expected catalog parse error, got %v", err)
	}
}
