package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "item").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "nil_value":
			return "nil は許可されていません"
		case "zero_value":
			return "ゼロ値は許可されていません"
		case "out_of_range":
			return "範囲外です"
		case "invalid_enum":
			return "許可された値ではありません"
		case "blank":
			return "空白は許可されていません"
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "pattern":
			return "形式が不正です"
		case "empty":
			return "空であってはいけません"
		case "not_empty":
			return "空でなければいけません"
		case "too_few_items":
			return "要素が少なすぎます"
		case "too_many_items":
			return "要素が多すぎます"
		case "missing_item":
			return "要素が含まれていません"
		case "forbidden_item":
			return "許可されない要素が含まれています"
		case "missing_nil":
			return "nil 要素が含まれていません"
		case "forbidden_nil":
			return "nil 要素が含まれています"
		case "unsupported_collection":
			return "コレクション型を検査できません"
		}
	default: // "en"
		switch code {
		case "nil_value":
			return "must not be nil"
		case "zero_value":
			return "must not be the zero value"
		case "out_of_range":
			return "out of range"
		case "invalid_enum":
			return "not an allowed value"
		case "blank":
			return "must not be blank"
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "pattern":
			return "does not match the required pattern"
		case "empty":
			return "must not be empty"
		case "not_empty":
			return "must be empty"
		case "too_few_items":
			return "too few items"
		case "too_many_items":
			return "too many items"
		case "missing_item":
			return "required item is missing"
		case "forbidden_item":
			return "contains a forbidden item"
		case "missing_nil":
			return "no nil element present"
		case "forbidden_nil":
			return "contains a nil element"
		case "unsupported_collection":
			return "cannot inspect this collection type"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
