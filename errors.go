package guard

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeNilValue    = "nil_value"
	CodeZeroValue   = "zero_value"
	CodeOutOfRange  = "out_of_range"
	CodeInvalidEnum = "invalid_enum"
	CodeBlank       = "blank"
	CodeTooShort    = "too_short"
	CodeTooLong     = "too_long"
	CodePattern     = "pattern"

	// Collection checks
	CodeEmpty         = "empty"
	CodeNotEmpty      = "not_empty"
	CodeTooFewItems   = "too_few_items"
	CodeTooManyItems  = "too_many_items"
	CodeMissingItem   = "missing_item"
	CodeForbiddenItem = "forbidden_item"
	CodeMissingNil    = "missing_nil"
	CodeForbiddenNil  = "forbidden_nil"

	// Accessor synthesis failed for the value's concrete type.
	CodeUnsupportedCollection = "unsupported_collection"
)

// Issue represents a single guard violation.
type Issue struct {
	Path    string `json:"path"` // Pointer to the guarded argument (for example: /userIDs).
	Code    string `json:"code"` // One of the codes listed above.
	Message string `json:"message"`
	Cause   error  `json:"-"` // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":1, "max":10, "got":42})
	// for i18n and observability.
	Params map[string]any `json:"params,omitempty"`
}

// Issues is a collection of guard violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_few_items at /userIDs
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes each issue's Cause to errors.Is/errors.As.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
