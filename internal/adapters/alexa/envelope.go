package alexa

// Request types sent by the platform.
const (
	RequestTypeLaunch             = "LaunchRequest"
	RequestTypeIntent             = "IntentRequest"
	RequestTypeSessionEnded       = "SessionEndedRequest"
	RequestTypeExceptionEncounter = "System.ExceptionEncountered"
)

const (
	responseVersion = "1.0"
	speechPlainText = "PlainText"
)

// RequestEnvelope is the JSON body of an inbound skill request.
// See https://developer.amazon.com/docs/custom-skills/request-and-response-json-reference.html
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Request Request  `json:"request"`
}

type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	Application Application    `json:"application"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type Request struct {
	Type      string        `json:"type" binding:"required"`
	RequestID string        `json:"requestId"`
	Timestamp string        `json:"timestamp,omitempty"`
	Locale    string        `json:"locale"`
	Intent    *Intent       `json:"intent,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	Error     *RequestError `json:"error,omitempty"`
}

type Intent struct {
	Name               string `json:"name"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

// RequestError is set on SessionEndedRequest and System.ExceptionEncountered.
type RequestError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ResponseEnvelope is the JSON body returned to the platform.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}
