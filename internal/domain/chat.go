package domain

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one entry in the append-only conversation transcript.
// Messages are never mutated once appended and persist verbatim.
type ChatMessage struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// GreetingMessage seeds the transcript when no chat history exists.
const GreetingMessage = "Hello! I'm your personal AI coach. What goal is on your mind today? Let's break it down and make a plan!"

// InitialTranscript returns the default transcript: the single greeting.
func InitialTranscript() []ChatMessage {
	return []ChatMessage{{Sender: SenderBot, Text: GreetingMessage}}
}
