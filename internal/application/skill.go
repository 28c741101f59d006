package application

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"feedskill/internal/domain"
	"feedskill/internal/domain/entities"
	"feedskill/internal/ports/input"
	"feedskill/internal/ports/output"
)

const defaultFeedTimeout = 5 * time.Second

var _ input.SkillUseCase = (*SkillService)(nil)

// Settings are the tunables of the dispatcher.
type Settings struct {
	DefaultLocale entities.Locale
	// FeedTimeout bounds the feed fetch of FeedsIntent.
	FeedTimeout time.Duration
}

// SkillService is the intent dispatcher. It holds no per-invocation state
// and is safe for concurrent use.
type SkillService struct {
	translator output.Translator
	feeds      output.FeedFetcher
	settings   Settings
	log        *slog.Logger
}

func NewSkillService(
	translator output.Translator,
	feeds output.FeedFetcher,
	settings Settings,
	log *slog.Logger,
) *SkillService {
	if settings.DefaultLocale == "" {
		settings.DefaultLocale = entities.LocaleEN
	}
	if settings.FeedTimeout <= 0 {
		settings.FeedTimeout = defaultFeedTimeout
	}
	return &SkillService{
		translator: translator,
		feeds:      feeds,
		settings:   settings,
		log:        log,
	}
}

// Dispatch runs the handler bound to inv.Intent and returns its action.
// It never fails: handler errors and panics become the apology message.
func (s *SkillService) Dispatch(ctx context.Context, inv entities.Invocation) (action entities.Action) {
	log := s.log.With("intent", inv.Intent.String(), "locale", inv.Locale.String(), "request_id", inv.RequestID)

	locale := inv.Locale
	if !locale.IsSupported() {
		log.Warn("unsupported locale, using default", "default_locale", s.settings.DefaultLocale)
		locale = s.settings.DefaultLocale
	}

	phrases, err := s.translator.Phrases(locale)
	if err != nil {
		log.Error("phrases unavailable", "error", err)
		return entities.EndSession()
	}

	attrs := inv.Attributes
	if attrs == nil {
		attrs = entities.SessionAttributes{}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("handler panicked",
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			action = entities.Tell(phrases.SomethingWentWrong)
		}
	}()

	action, err = s.handle(ctx, inv.Intent, phrases, attrs)
	if err != nil {
		log.Warn("handler failed", "error", err)
		return entities.Tell(phrases.SomethingWentWrong)
	}

	log.Debug("intent dispatched", "action", action.Kind.String())
	return action
}

func (s *SkillService) handle(ctx context.Context, intent entities.Intent, p entities.Phrases, attrs entities.SessionAttributes) (entities.Action, error) {
	switch intent {
	case entities.IntentLaunch:
		attrs.SetSpeech(p.WelcomeMessage, p.WelcomeReprompt)
		return entities.Ask(attrs.SpeechOutput(), attrs.RepromptSpeech()), nil
	case entities.IntentFeeds:
		return s.handleFeeds(ctx, p)
	case entities.IntentHelp:
		return help(p, attrs), nil
	case entities.IntentStop, entities.IntentCancel:
		return s.handle(ctx, entities.IntentSessionEnded, p, attrs)
	case entities.IntentSessionEnded:
		return entities.Tell(p.StopMessage), nil
	case entities.IntentUnhandled:
		return help(p, attrs), nil
	}
	s.log.Warn("no handler bound, treating as unhandled", "intent_value", int(intent))
	return help(p, attrs), nil
}

// handleFeeds reads the most recent feed item. An empty feed is reported
// like a failed fetch.
func (s *SkillService) handleFeeds(ctx context.Context, p entities.Phrases) (entities.Action, error) {
	ctx, cancel := context.WithTimeout(ctx, s.settings.FeedTimeout)
	defer cancel()

	items, err := s.feeds.FetchFeeds(ctx)
	if err != nil {
		return entities.Action{}, err
	}
	if len(items) == 0 {
		return entities.Action{}, domain.ErrEmptyFeed
	}
	return entities.Tell(p.RandomFeed + items[0].Teaser), nil
}

func help(p entities.Phrases, attrs entities.SessionAttributes) entities.Action {
	attrs.SetSpeech(p.HelpMessage, p.HelpReprompt)
	return entities.Ask(attrs.SpeechOutput(), attrs.RepromptSpeech())
}
