package storefront

import (
	"context"
	"strings"
	"sync"
	"time"
)

type ChatSender string

const (
	SenderClient  ChatSender = "client"
	SenderManager ChatSender = "manager"
)

const (
	chatGreeting = "Здравствуйте! Чем могу помочь?"
	chatReply    = "Спасибо за ваше сообщение! Менеджер ответит в ближайшее время."
)

type ChatMessage struct {
	Sender ChatSender
	Text   string
}

// Chat is the support widget: a local transcript with a scripted manager.
// Nothing is sent anywhere; every client message gets the same canned reply
// after a delay.
type Chat struct {
	delay time.Duration

	mu       sync.Mutex
	messages []ChatMessage
}

func NewChat(delay time.Duration) *Chat {
	return &Chat{
		delay:    delay,
		messages: []ChatMessage{{Sender: SenderManager, Text: chatGreeting}},
	}
}

// Send records a client message and, after the reply delay, the manager's
// canned answer. Blank messages are ignored. If ctx ends first the client
// message stays in the transcript without an answer.
func (c *Chat) Send(ctx context.Context, text string) (ChatMessage, bool, error) {
	if strings.TrimSpace(text) == "" {
		return ChatMessage{}, false, nil
	}
	c.append(ChatMessage{Sender: SenderClient, Text: text})

	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ChatMessage{}, false, ctx.Err()
	case <-timer.C:
	}

	reply := ChatMessage{Sender: SenderManager, Text: chatReply}
	c.append(reply)
	return reply, true, nil
}

// Transcript returns a copy of the conversation so far
func (c *Chat) Transcript() []ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	messages := make([]ChatMessage, len(c.messages))
	copy(messages, c.messages)
	return messages
}

func (c *Chat) append(msg ChatMessage) {
	c.mu.Lock()
	c.messages = append(c.messages, msg)
	c.mu.Unlock()
}
