package i18n

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "element" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "not_a_boolean":
			return "真偽値ではありません"
		case "not_a_string":
			return "文字列ではありません"
		case "not_an_int":
			return "int ではありません"
		case "not_a_long":
			return "long ではありません"
		case "not_a_float":
			return "float ではありません"
		case "not_a_double":
			return "double ではありません"
		case "not_an_array":
			return "配列ではありません"
		case "not_an_object":
			return "オブジェクトではありません"
		case "missing_key":
			return "必須キーが不足しています"
		case "neither_variant":
			return "どのバリアントにも一致しません"
		case "unknown_discriminant":
			return "未知の判別子です"
		case "validation":
			return "検証に失敗しました"
		}
	default: // "en"
		switch code {
		case "not_a_boolean":
			return "not a boolean"
		case "not_a_string":
			return "not a string"
		case "not_an_int":
			return "not an int"
		case "not_a_long":
			return "not a long"
		case "not_a_float":
			return "not a float"
		case "not_a_double":
			return "not a double"
		case "not_an_array":
			return "not an array"
		case "not_an_object":
			return "not an object"
		case "missing_key":
			return "required key missing"
		case "neither_variant":
			return "matched neither variant"
		case "unknown_discriminant":
			return "unknown discriminant"
		case "validation":
			return "validation failed"
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
