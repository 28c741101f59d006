package entities

const (
	AttrSpeechOutput   = "speechOutput"
	AttrRepromptSpeech = "repromptSpeech"
)

// SessionAttributes is the per-invocation attribute bag. The platform owns
// persistence; handlers only write to it before the action is emitted.
type SessionAttributes map[string]any

func (a SessionAttributes) SpeechOutput() string {
	return a.str(AttrSpeechOutput)
}

func (a SessionAttributes) RepromptSpeech() string {
	return a.str(AttrRepromptSpeech)
}

func (a SessionAttributes) SetSpeech(speech, reprompt string) {
	a[AttrSpeechOutput] = speech
	a[AttrRepromptSpeech] = reprompt
}

func (a SessionAttributes) str(key string) string {
	s, _ := a[key].(string)
	return s
}

// Invocation is everything a handler needs for one dispatch.
type Invocation struct {
	Intent     Intent
	Locale     Locale
	Attributes SessionAttributes
	RequestID  string
}
