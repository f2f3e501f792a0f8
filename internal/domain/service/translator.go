package service

// Translator renders localised message templates.
type Translator interface {
	// T renders messageID in lang with the given template data.
	// Unknown languages fall back to the default language.
	T(lang, messageID string, data map[string]any) string
}

// Message IDs shared by the translation bundles.
const (
	// MessagePushEventUpdateTitle expects the EventName template field.
	MessagePushEventUpdateTitle = "push_event_update_title"
)
