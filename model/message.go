package model

// Sender identifies who a message bubble belongs to.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one rendered line of conversation.
type Message struct {
	Text   string `yaml:"text"`
	Sender Sender `yaml:"sender"`
}

func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}
