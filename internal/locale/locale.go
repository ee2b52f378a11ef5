// Package locale holds the bot texts in Russian, Montenegrin and English.
// English is the fallback for unknown languages and missing translations.
package locale

import (
	"fmt"
	"strings"
)

// Supported language codes.
const (
	LangRU = "ru"
	LangME = "me"
	LangEN = "en"
)

// SupportedLanguages lists the selectable languages in display order.
var SupportedLanguages = []string{LangRU, LangME, LangEN}

// LanguageNames maps a language code to its button label.
var LanguageNames = map[string]string{
	LangRU: "🇷🇺 Русский",
	LangME: "🇲🇪 Crnogorski",
	LangEN: "🇬🇧 English",
}

// IsSupported reports whether lang is a known language code.
func IsSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Get returns the text for key in lang, falling back to English.
// A missing key yields a visible marker rather than an empty message.
func Get(key, lang string) string {
	translations, ok := texts[key]
	if !ok {
		return fmt.Sprintf("[Missing translation: %s]", key)
	}
	if text, ok := translations[lang]; ok {
		return text
	}
	if text, ok := translations[LangEN]; ok {
		return text
	}
	return fmt.Sprintf("[No translation for %s]", key)
}

// Format returns the text for key in lang with {name} placeholders
// substituted from the given name/value pairs.
func Format(key, lang string, pairs ...string) string {
	text := Get(key, lang)
	if len(pairs) < 2 {
		return text
	}
	oldnew := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		oldnew = append(oldnew, "{"+pairs[i]+"}", pairs[i+1])
	}
	return strings.NewReplacer(oldnew...).Replace(text)
}
