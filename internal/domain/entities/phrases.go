package entities

// Phrases is the fully rendered set of spoken texts for one locale.
// Every field is required; a locale missing any of them is rejected at load time.
type Phrases struct {
	SkillName          string
	WelcomeMessage     string
	WelcomeReprompt    string
	HelpMessage        string
	HelpReprompt       string
	StopMessage        string
	SomethingWentWrong string
	RandomFeed         string

	// Feeds is reserved for localized feed content and is empty for now.
	Feeds []FeedItem
}
