package i18n

import (
	"golang.org/x/text/language"

	"feedskill/internal/domain/entities"
)

var (
	supportedTags = []language.Tag{language.English, language.German}
	tagLocales    = []entities.Locale{entities.LocaleEN, entities.LocaleDE}
	matcher       = language.NewMatcher(supportedTags)
)

// Negotiate maps a platform locale such as "en-US" or "de-AT" to a
// supported Locale. Unparseable or unsupported locales get fallback.
func Negotiate(platformLocale string, fallback entities.Locale) entities.Locale {
	if platformLocale == "" {
		return fallback
	}
	tag, err := language.Parse(platformLocale)
	if err != nil {
		return fallback
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return fallback
	}
	return tagLocales[idx]
}
