package version

const (
	AppName        = "Chronos"
	AppDescription = "Command bot for moderation, reminders and Monster Hunter lookups"
	AppVersion     = "2.0.0"
	Repository     = "https://github.com/eliasrilegard/chronos"
)
