package guard

import (
	json "github.com/goccy/go-json"
)

// IssuesJSON renders the Issues carried by err as a JSON array, suitable for
// API error payloads. A nil err, or an error carrying no Issues, renders as
// an empty array.
func IssuesJSON(err error) ([]byte, error) {
	iss, _ := AsIssues(err)
	if iss == nil {
		iss = Issues{}
	}
	return json.Marshal(iss)
}
