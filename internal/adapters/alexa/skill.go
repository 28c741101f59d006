package alexa

import (
	"fmt"
	"log/slog"

	"feedskill/internal/application"
	"feedskill/internal/config"
	"feedskill/internal/infrastructure/feed"
	"feedskill/internal/infrastructure/i18n"
)

// NewSkill wires ports: output adapters -> application (dispatcher) -> handler.
func NewSkill(cfg *config.Config, log *slog.Logger) (*Handler, error) {
	table, err := i18n.NewTable(log.With("component", "i18n"))
	if err != nil {
		return nil, fmt.Errorf("load localization table: %w", err)
	}
	feeds := feed.NewClient(cfg.FeedURL, log.With("component", "feed"))

	skill := application.NewSkillService(table, feeds, application.Settings{
		DefaultLocale: cfg.DefaultLocale,
		FeedTimeout:   cfg.FeedTimeout,
	}, log.With("component", "dispatcher"))

	return NewHandler(skill, cfg.DefaultLocale, log.With("component", "alexa")), nil
}
