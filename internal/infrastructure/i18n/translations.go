package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"feedskill/internal/domain"
	"feedskill/internal/domain/entities"
	"feedskill/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Message IDs of the embedded translation files.
const (
	MsgSkillName          = "SKILL_NAME"
	MsgWelcomeMessage     = "WELCOME_MESSAGE"
	MsgWelcomeReprompt    = "WELCOME_REPROMPT"
	MsgHelpMessage        = "HELP_MESSAGE"
	MsgHelpReprompt       = "HELP_REPROMPT"
	MsgStopMessage        = "STOP_MESSAGE"
	MsgSomethingWentWrong = "SOMETHING_WENT_WRONG"
	MsgRandomFeed         = "RANDOM_FEED"
)

// Ensure Table implements the output ports.
var (
	_ output.Translator = (*Table)(nil)
	_ output.T          = (*Table)(nil)
)

// Table is the localization table: a go-i18n bundle restricted to the
// supported locales, with every locale's phrases rendered once at load.
type Table struct {
	bundle     *i18n.Bundle
	localizers map[entities.Locale]*i18n.Localizer
	phrases    map[entities.Locale]entities.Phrases
	// defaultLocale is the bundle's default language, used by T as fallback.
	defaultLocale entities.Locale
	log           *slog.Logger
}

// NewTable loads the embedded active.*.toml files and checks that every
// supported locale defines every message. A missing locale or message is a
// build defect and is returned as an error so startup fails.
func NewTable(log *slog.Logger) (*Table, error) {
	return newTable(localeFS, log)
}

func newTable(fsys fs.FS, log *slog.Logger) (*Table, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	t := &Table{
		bundle:        bundle,
		localizers:    make(map[entities.Locale]*i18n.Localizer, len(entities.SupportedLocales)),
		phrases:       make(map[entities.Locale]entities.Phrases, len(entities.SupportedLocales)),
		defaultLocale: entities.LocaleEN,
		log:           log,
	}

	for _, locale := range entities.SupportedLocales {
		file := fmt.Sprintf("active.%s.toml", locale)
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
		t.localizers[locale] = i18n.NewLocalizer(bundle, locale.String())
	}

	for _, locale := range entities.SupportedLocales {
		p, err := t.render(locale)
		if err != nil {
			return nil, err
		}
		t.phrases[locale] = p
	}

	log.Debug("localization table loaded", "locales", len(t.phrases))
	return t, nil
}

// Lookup renders key for locale. The skill name of the same locale is
// available to the message as {{.SkillName}}.
func (t *Table) Lookup(locale entities.Locale, key string) (string, error) {
	if _, ok := t.localizers[locale]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownLocale, locale)
	}
	skillName, err := t.localize(locale, MsgSkillName, nil)
	if err != nil {
		return "", err
	}
	return t.localize(locale, key, map[string]any{"SkillName": skillName})
}

// T renders key for locale, falling back to the default locale and finally
// to the key itself. Misses are logged, never returned.
func (t *Table) T(locale entities.Locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	locales := []entities.Locale{}
	if locale.IsSupported() {
		locales = append(locales, locale)
	}
	if locale != t.defaultLocale {
		locales = append(locales, t.defaultLocale)
	}

	for _, l := range locales {
		skillName, err := t.localize(l, MsgSkillName, nil)
		if err != nil {
			skillName = ""
		}
		vars := map[string]any{"SkillName": skillName}
		for k, v := range data {
			vars[k] = v
		}
		msg, err := t.localize(l, key, vars)
		if err == nil {
			return msg
		}
	}

	t.log.Warn("i18n: message not found", "key", key, "locales", locales)
	return key
}

// Phrases returns the pre-rendered phrases of locale.
func (t *Table) Phrases(locale entities.Locale) (entities.Phrases, error) {
	p, ok := t.phrases[locale]
	if !ok {
		return entities.Phrases{}, fmt.Errorf("%w: %q", domain.ErrUnknownLocale, locale)
	}
	return p, nil
}

// Feeds returns the localized feed placeholders of locale.
func (t *Table) Feeds(locale entities.Locale) ([]entities.FeedItem, error) {
	p, err := t.Phrases(locale)
	if err != nil {
		return nil, err
	}
	return p.Feeds, nil
}

func (t *Table) render(locale entities.Locale) (entities.Phrases, error) {
	p := entities.Phrases{Feeds: []entities.FeedItem{}}
	fields := []struct {
		key string
		dst *string
	}{
		{MsgSkillName, &p.SkillName},
		{MsgWelcomeMessage, &p.WelcomeMessage},
		{MsgWelcomeReprompt, &p.WelcomeReprompt},
		{MsgHelpMessage, &p.HelpMessage},
		{MsgHelpReprompt, &p.HelpReprompt},
		{MsgStopMessage, &p.StopMessage},
		{MsgSomethingWentWrong, &p.SomethingWentWrong},
		{MsgRandomFeed, &p.RandomFeed},
	}
	for _, f := range fields {
		text, err := t.Lookup(locale, f.key)
		if err != nil {
			return entities.Phrases{}, fmt.Errorf("i18n: locale %s: %w", locale, err)
		}
		if text == "" {
			return entities.Phrases{}, fmt.Errorf("i18n: locale %s: %w: %s is empty", locale, domain.ErrUnknownTemplate, f.key)
		}
		*f.dst = text
	}
	return p, nil
}

// localize resolves key in locale only.
func (t *Table) localize(locale entities.Locale, key string, data map[string]any) (string, error) {
	msg, err := t.localizers[locale].Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("%w: %s", domain.ErrUnknownTemplate, key)
		}
		t.log.Error("i18n: localize failed", "key", key, "locale", locale, "error", err)
		return "", fmt.Errorf("i18n: localize %s: %w", key, err)
	}
	return msg, nil
}
