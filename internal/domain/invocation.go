package domain

// Invocation holds the inputs of a single run. It is built once and passed
// by value to every step.
type Invocation struct {
	BotToken    string
	ChatID      string
	TopicID     string
	MessageText string
	ImageURL    string
}

func (i Invocation) HasImage() bool {
	return i.ImageURL != ""
}

func (i Invocation) HasMessage() bool {
	return i.MessageText != ""
}
