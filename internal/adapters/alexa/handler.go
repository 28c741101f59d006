package alexa

import (
	"context"
	"log/slog"

	"feedskill/internal/domain/entities"
	"feedskill/internal/infrastructure/i18n"
	"feedskill/internal/ports/input"
)

// Handler translates platform envelopes into skill invocations and back.
type Handler struct {
	skill         input.SkillUseCase
	defaultLocale entities.Locale
	log           *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(skill input.SkillUseCase, defaultLocale entities.Locale, log *slog.Logger) *Handler {
	return &Handler{
		skill:         skill,
		defaultLocale: defaultLocale,
		log:           log,
	}
}

// Handle processes one request envelope. It always returns a well-formed response.
func (h *Handler) Handle(ctx context.Context, env RequestEnvelope) ResponseEnvelope {
	attrs := entities.SessionAttributes{}
	if env.Session != nil {
		for k, v := range env.Session.Attributes {
			attrs[k] = v
		}
	}

	if env.Request.Type == RequestTypeExceptionEncounter {
		// The platform rejects speech in reply to its own error report.
		args := []any{"request_id", env.Request.RequestID}
		if env.Request.Error != nil {
			args = append(args, "error_type", env.Request.Error.Type, "error_message", env.Request.Error.Message)
		}
		h.log.Warn("platform reported an exception", args...)
		return render(entities.EndSession(), attrs)
	}

	if env.Request.Type == RequestTypeSessionEnded && env.Request.Error != nil {
		h.log.Warn("session ended with error",
			"request_id", env.Request.RequestID,
			"reason", env.Request.Reason,
			"error_type", env.Request.Error.Type,
			"error_message", env.Request.Error.Message,
		)
	}

	inv := entities.Invocation{
		Intent:     IntentFor(env.Request),
		Locale:     i18n.Negotiate(env.Request.Locale, h.defaultLocale),
		Attributes: attrs,
		RequestID:  env.Request.RequestID,
	}
	action := h.skill.Dispatch(ctx, inv)
	return render(action, attrs)
}

// HandleLambda adapts Handle to the aws-lambda-go handler signature.
func (h *Handler) HandleLambda(ctx context.Context, env RequestEnvelope) (ResponseEnvelope, error) {
	return h.Handle(ctx, env), nil
}

// IntentFor classifies a platform request. Lifecycle requests map to their
// own intents; intent requests map by name.
func IntentFor(req Request) entities.Intent {
	switch req.Type {
	case RequestTypeLaunch:
		return entities.IntentLaunch
	case RequestTypeSessionEnded:
		return entities.IntentSessionEnded
	case RequestTypeIntent:
		if req.Intent == nil {
			return entities.IntentUnhandled
		}
		return entities.ParseIntent(req.Intent.Name)
	default:
		return entities.IntentUnhandled
	}
}

func render(action entities.Action, attrs entities.SessionAttributes) ResponseEnvelope {
	resp := ResponseEnvelope{
		Version: responseVersion,
		Response: Response{
			ShouldEndSession: action.EndsSession(),
		},
	}
	if len(attrs) > 0 {
		resp.SessionAttributes = attrs
	}

	switch action.Kind {
	case entities.ActionAsk:
		resp.Response.OutputSpeech = plainText(action.Speech)
		resp.Response.Reprompt = &Reprompt{OutputSpeech: *plainText(action.Reprompt)}
	case entities.ActionTell:
		resp.Response.OutputSpeech = plainText(action.Speech)
	}
	return resp
}

func plainText(text string) *OutputSpeech {
	return &OutputSpeech{Type: speechPlainText, Text: text}
}
