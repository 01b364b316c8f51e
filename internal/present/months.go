package present

import (
	"fmt"
	"strings"

	"github.com/goodsign/monday"
)

// Day label locales. Russian labels use the genitive month: "12 марта".
const (
	English = monday.LocaleEnUS
	Russian = monday.LocaleRuRU
)

var locales = map[string]monday.Locale{
	"en": English,
	"ru": Russian,
}

// Locale returns the label locale for a code such as "en" or "ru-BY".
func Locale(code string) (monday.Locale, error) {
	lang, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(code)), "-")
	lang, _, _ = strings.Cut(lang, "_")
	if locale, ok := locales[lang]; ok {
		return locale, nil
	}
	return "", fmt.Errorf("unsupported locale %q", code)
}
