package latitude

// Role identifies the author of a conversation message.
type Role string

// Roles used in conversation messages.
const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Content is a single content block inside a conversation message. Type is
// currently always "text" for outgoing messages.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Message is a conversation message sent to the gateway, used by Chat and
// CreateLog. Messages inside stream events use the flattened StepMessage
// shape instead.
type Message struct {
	Role    Role      `json:"role"`
	Content []Content `json:"content"`
}

// TextMessage builds a message with a single text content block.
func TextMessage(role Role, text string) Message {
	return Message{
		Role:    role,
		Content: []Content{{Type: "text", Text: text}},
	}
}
