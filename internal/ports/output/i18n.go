package output

import "feedskill/internal/domain/entities"

// T exposes a lenient i18n contract for spoken messages.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	// Missing messages fall back to the default locale, then to the key.
	T(locale entities.Locale, key string, data map[string]any) string
}

// Translator exposes the strict localization contract used by the dispatcher.
type Translator interface {
	// Lookup renders the message identified by key for the given locale,
	// substituting the skill name into its slot if present.
	Lookup(locale entities.Locale, key string) (string, error)

	// Phrases returns every message of a locale as a typed record.
	Phrases(locale entities.Locale) (entities.Phrases, error)
}
