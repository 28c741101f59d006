package entities

// Locale identifies one of the languages the skill answers in.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleDE Locale = "de"
)

// SupportedLocales is the fixed set of locales every template must exist in.
var SupportedLocales = []Locale{LocaleEN, LocaleDE}

func (l Locale) IsSupported() bool {
	for _, s := range SupportedLocales {
		if s == l {
			return true
		}
	}
	return false
}

func (l Locale) String() string {
	return string(l)
}
