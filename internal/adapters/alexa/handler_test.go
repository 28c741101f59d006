package alexa

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"feedskill/internal/domain/entities"
	"feedskill/internal/infrastructure/logger"
)

type fakeSkill struct {
	action entities.Action
	got    []entities.Invocation
	// mutate runs against the invocation's attributes before returning.
	mutate func(entities.SessionAttributes)
}

func (f *fakeSkill) Dispatch(ctx context.Context, inv entities.Invocation) entities.Action {
	f.got = append(f.got, inv)
	if f.mutate != nil {
		f.mutate(inv.Attributes)
	}
	return f.action
}

func TestIntentFor(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want entities.Intent
	}{
		{"launch", Request{Type: RequestTypeLaunch}, entities.IntentLaunch},
		{"session ended", Request{Type: RequestTypeSessionEnded}, entities.IntentSessionEnded},
		{"feeds", Request{Type: RequestTypeIntent, Intent: &Intent{Name: "FeedsIntent"}}, entities.IntentFeeds},
		{"help", Request{Type: RequestTypeIntent, Intent: &Intent{Name: "AMAZON.HelpIntent"}}, entities.IntentHelp},
		{"stop", Request{Type: RequestTypeIntent, Intent: &Intent{Name: "AMAZON.StopIntent"}}, entities.IntentStop},
		{"cancel", Request{Type: RequestTypeIntent, Intent: &Intent{Name: "AMAZON.CancelIntent"}}, entities.IntentCancel},
		{"unknown intent", Request{Type: RequestTypeIntent, Intent: &Intent{Name: "AMAZON.FallbackIntent"}}, entities.IntentUnhandled},
		{"intent request without intent", Request{Type: RequestTypeIntent}, entities.IntentUnhandled},
		{"unknown request type", Request{Type: "AudioPlayer.PlaybackStarted"}, entities.IntentUnhandled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntentFor(tt.req))
		})
	}
}

func TestHandleAsk(t *testing.T) {
	skill := &fakeSkill{
		action: entities.Ask("hello", "still there?"),
		mutate: func(a entities.SessionAttributes) { a.SetSpeech("hello", "still there?") },
	}
	h := NewHandler(skill, entities.LocaleEN, logger.Nop())

	resp := h.Handle(context.Background(), RequestEnvelope{
		Version: "1.0",
		Session: &Session{SessionID: "s-1", Attributes: map[string]any{"visits": float64(2)}},
		Request: Request{Type: RequestTypeLaunch, RequestID: "r-1", Locale: "de-DE"},
	})

	if assert.Len(t, skill.got, 1) {
		inv := skill.got[0]
		assert.Equal(t, entities.IntentLaunch, inv.Intent)
		assert.Equal(t, entities.LocaleDE, inv.Locale)
		assert.Equal(t, "r-1", inv.RequestID)
	}

	assert.Equal(t, "1.0", resp.Version)
	assert.False(t, resp.Response.ShouldEndSession)
	assert.Equal(t, &OutputSpeech{Type: "PlainText", Text: "hello"}, resp.Response.OutputSpeech)
	assert.Equal(t, &Reprompt{OutputSpeech: OutputSpeech{Type: "PlainText", Text: "still there?"}}, resp.Response.Reprompt)
	assert.Equal(t, map[string]any{
		"visits":         float64(2),
		"speechOutput":   "hello",
		"repromptSpeech": "still there?",
	}, resp.SessionAttributes)
}

func TestHandleTell(t *testing.T) {
	skill := &fakeSkill{action: entities.Tell("Goodbye!")}
	h := NewHandler(skill, entities.LocaleEN, logger.Nop())

	resp := h.Handle(context.Background(), RequestEnvelope{
		Request: Request{
			Type:   RequestTypeSessionEnded,
			Locale: "fr-FR",
			Reason: "ERROR",
			Error:  &RequestError{Type: "INVALID_RESPONSE", Message: "bad"},
		},
	})

	if assert.Len(t, skill.got, 1) {
		assert.Equal(t, entities.LocaleEN, skill.got[0].Locale)
	}
	assert.True(t, resp.Response.ShouldEndSession)
	assert.Equal(t, &OutputSpeech{Type: "PlainText", Text: "Goodbye!"}, resp.Response.OutputSpeech)
	assert.Nil(t, resp.Response.Reprompt)
	assert.Nil(t, resp.SessionAttributes)
}

func TestHandleExceptionEncounteredEndsSession(t *testing.T) {
	skill := &fakeSkill{action: entities.Tell("unused")}
	h := NewHandler(skill, entities.LocaleEN, logger.Nop())

	resp := h.Handle(context.Background(), RequestEnvelope{
		Request: Request{
			Type:  RequestTypeExceptionEncounter,
			Error: &RequestError{Type: "INVALID_RESPONSE", Message: "oops"},
		},
	})

	assert.Empty(t, skill.got)
	assert.True(t, resp.Response.ShouldEndSession)
	assert.Nil(t, resp.Response.OutputSpeech)
	assert.Nil(t, resp.Response.Reprompt)
}

func TestHandleLambda(t *testing.T) {
	skill := &fakeSkill{action: entities.Tell("Goodbye!")}
	h := NewHandler(skill, entities.LocaleEN, logger.Nop())

	resp, err := h.HandleLambda(context.Background(), RequestEnvelope{
		Request: Request{Type: RequestTypeIntent, Intent: &Intent{Name: "AMAZON.StopIntent"}, Locale: "en-US"},
	})
	assert.NoError(t, err)
	assert.True(t, resp.Response.ShouldEndSession)
	if assert.Len(t, skill.got, 1) {
		assert.Equal(t, entities.IntentStop, skill.got[0].Intent)
	}
}
