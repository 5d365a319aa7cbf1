package i18n

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalogTranslator resolves messages from a loaded catalog, substituting
// {param} placeholders from the data map. Unknown codes fall back to the
// built-in dictionary.
type catalogTranslator struct {
	lang     string
	messages map[string]map[string]string // lang -> code -> template
}

func (t catalogTranslator) Message(code string, data map[string]string) string {
	if byCode, ok := t.messages[t.lang]; ok {
		if tmpl, ok := byCode[code]; ok {
			return substitute(tmpl, data)
		}
	}
	return dictTranslator{lang: t.lang}.Message(code, data)
}

func substitute(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	out := tmpl
	for k, v := range data {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

// LoadCatalog parses a YAML message catalog into a Translator for lang.
// The expected shape is language -> code -> message template:
//
//	en:
//	  too_few_items: "needs at least {min} items, got {got}"
//	ja:
//	  too_few_items: "要素は {min} 個以上必要です"
//
// Templates may reference issue params with {name} placeholders.
func LoadCatalog(data []byte, lang string) (Translator, error) {
	var messages map[string]map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("i18n: invalid catalog: %w", err)
	}
	if lang == "" {
		lang = "en"
	}
	return catalogTranslator{lang: lang, messages: messages}, nil
}
