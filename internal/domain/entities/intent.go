package entities

// Intent is the classified inbound request a handler is bound to.
type Intent int

const (
	IntentUnhandled Intent = iota
	IntentLaunch
	IntentFeeds
	IntentHelp
	IntentStop
	IntentCancel
	IntentSessionEnded
)

// Platform names of the intents, as they appear on the wire.
const (
	NameLaunchRequest       = "LaunchRequest"
	NameFeedsIntent         = "FeedsIntent"
	NameHelpIntent          = "AMAZON.HelpIntent"
	NameStopIntent          = "AMAZON.StopIntent"
	NameCancelIntent        = "AMAZON.CancelIntent"
	NameSessionEndedRequest = "SessionEndedRequest"
	NameUnhandled           = "Unhandled"
)

var intentNames = map[Intent]string{
	IntentUnhandled:    NameUnhandled,
	IntentLaunch:       NameLaunchRequest,
	IntentFeeds:        NameFeedsIntent,
	IntentHelp:         NameHelpIntent,
	IntentStop:         NameStopIntent,
	IntentCancel:       NameCancelIntent,
	IntentSessionEnded: NameSessionEndedRequest,
}

// AllIntents lists every intent the dispatcher has a branch for.
var AllIntents = []Intent{
	IntentUnhandled,
	IntentLaunch,
	IntentFeeds,
	IntentHelp,
	IntentStop,
	IntentCancel,
	IntentSessionEnded,
}

// ParseIntent maps a platform name to its Intent. Names without a bound
// handler map to IntentUnhandled.
func ParseIntent(name string) Intent {
	for intent, n := range intentNames {
		if n == name {
			return intent
		}
	}
	return IntentUnhandled
}

func (i Intent) String() string {
	if n, ok := intentNames[i]; ok {
		return n
	}
	return NameUnhandled
}
