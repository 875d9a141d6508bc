// Package i18n renders issue codes as short localized titles for error
// reports.
package i18n

import "strings"

// Translator retrieves localized titles for issue codes. data carries the
// issue parameters (for example "expected" and "got") already formatted.
type Translator interface {
	Message(code string, data map[string]string) string
}

// Languages lists the built-in dictionaries.
var Languages = []string{"en", "ja"}

var dictionaries = map[string]map[string]string{
	"en": {
		"parse_error":    "malformed type string",
		"unknown_type":   "unknown type",
		"arity_mismatch": "wrong number of type arguments",
		"type_mismatch":  "type mismatch",
		"encoding":       "invalid binary encoding",
		"invalid_type":   "invalid value type",
		"invalid_format": "invalid format",
		"overflow":       "value out of range",
		"missing_field":  "missing field",
		"duplicate_key":  "duplicate key",
		"truncated":      "input truncated",
	},
	"ja": {
		"parse_error":    "型文字列が不正です",
		"unknown_type":   "未登録の型です",
		"arity_mismatch": "型引数の数が一致しません",
		"type_mismatch":  "型が一致しません",
		"encoding":       "バイナリ表現が不正です",
		"invalid_type":   "値の型が不正です",
		"invalid_format": "形式が不正です",
		"overflow":       "値が範囲外です",
		"missing_field":  "フィールドが不足しています",
		"duplicate_key":  "キーが重複しています",
		"truncated":      "入力が打ち切られました",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if exp, got := data["expected"], data["got"]; exp != "" && got != "" {
		switch t.lang {
		case "ja":
			msg += "（期待値 " + exp + "、実際 " + got + "）"
		default:
			msg += " (expected " + exp + ", got " + got + ")"
		}
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language. Unknown languages
// fall back to English.
func SetLanguage(lang string) {
	lang = strings.ToLower(lang)
	if _, ok := dictionaries[lang]; !ok {
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

// T fetches a title for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
