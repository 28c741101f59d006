package entities

// ActionKind tags the shape of an Action.
type ActionKind int

const (
	// ActionAsk speaks and keeps the microphone open.
	ActionAsk ActionKind = iota + 1
	// ActionTell speaks and closes the session.
	ActionTell
	// ActionEndSession closes the session without speech.
	ActionEndSession
)

func (k ActionKind) String() string {
	switch k {
	case ActionAsk:
		return "ask"
	case ActionTell:
		return "tell"
	case ActionEndSession:
		return "end_session"
	default:
		return "unknown"
	}
}

// Action is the single outbound result of one dispatch.
// Reprompt is only set for ActionAsk; Speech is empty for ActionEndSession.
type Action struct {
	Kind     ActionKind
	Speech   string
	Reprompt string
}

func Ask(speech, reprompt string) Action {
	return Action{Kind: ActionAsk, Speech: speech, Reprompt: reprompt}
}

func Tell(speech string) Action {
	return Action{Kind: ActionTell, Speech: speech}
}

func EndSession() Action {
	return Action{Kind: ActionEndSession}
}

// EndsSession reports whether the platform should stop listening after this action.
func (a Action) EndsSession() bool {
	return a.Kind != ActionAsk
}
