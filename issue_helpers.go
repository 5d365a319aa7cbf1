package guard

import (
	"fmt"

	"github.com/guardhouse/guard/i18n"
)

// issueFor creates an Issue for the named argument with the given code and
// params, resolving the message through i18n.
func issueFor(name, code string, params map[string]any) Issue {
	return Issue{
		Path:    pathFor(name),
		Code:    code,
		Message: i18n.T(code, stringParams(params)),
		Params:  params,
	}
}

func pathFor(name string) string {
	if name == "" {
		return "/"
	}
	return "/" + name
}

// stringParams projects params into the string map the Translator consumes.
func stringParams(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = fmt.Sprint(v)
	}
	return out
}
