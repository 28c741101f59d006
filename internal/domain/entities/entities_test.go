package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name string
		want Intent
	}{
		{"LaunchRequest", IntentLaunch},
		{"FeedsIntent", IntentFeeds},
		{"AMAZON.HelpIntent", IntentHelp},
		{"AMAZON.StopIntent", IntentStop},
		{"AMAZON.CancelIntent", IntentCancel},
		{"SessionEndedRequest", IntentSessionEnded},
		{"Unhandled", IntentUnhandled},
		{"AMAZON.FallbackIntent", IntentUnhandled},
		{"", IntentUnhandled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIntent(tt.name))
		})
	}
}

func TestIntentStringRoundTrip(t *testing.T) {
	for _, intent := range AllIntents {
		assert.Equal(t, intent, ParseIntent(intent.String()))
	}
	assert.Equal(t, NameUnhandled, Intent(99).String())
}

func TestActionEndsSession(t *testing.T) {
	assert.False(t, Ask("a", "b").EndsSession())
	assert.True(t, Tell("a").EndsSession())
	assert.True(t, EndSession().EndsSession())
	assert.Empty(t, Tell("a").Reprompt)
}

func TestLocaleIsSupported(t *testing.T) {
	assert.True(t, LocaleEN.IsSupported())
	assert.True(t, LocaleDE.IsSupported())
	assert.False(t, Locale("fr").IsSupported())
	assert.False(t, Locale("").IsSupported())
}

func TestSessionAttributes(t *testing.T) {
	attrs := SessionAttributes{"other": 1}
	assert.Empty(t, attrs.SpeechOutput())

	attrs.SetSpeech("speech", "reprompt")
	assert.Equal(t, "speech", attrs.SpeechOutput())
	assert.Equal(t, "reprompt", attrs.RepromptSpeech())
	assert.Equal(t, 1, attrs["other"])

	attrs[AttrSpeechOutput] = 42
	assert.Empty(t, attrs.SpeechOutput())
}
