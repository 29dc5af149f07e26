// Package contact keeps messages sent through the contact form.
package contact

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripable/internal/forms"
)

// Message is one received contact request.
type Message struct {
	ID         string
	Name       string
	Email      string
	Body       string
	ReceivedAt time.Time
}

// Inbox is an in-memory, bounded message store. The oldest message is
// dropped once the limit is reached.
type Inbox struct {
	mu       sync.Mutex
	messages []Message
	limit    int
	logger   *zap.Logger
}

// NewInbox returns an inbox holding at most limit messages.
func NewInbox(limit int, logger *zap.Logger) *Inbox {
	if limit <= 0 {
		limit = 100
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Inbox{limit: limit, logger: logger}
}

// Submit validates the form and stores it.
func (i *Inbox) Submit(form forms.Contact, now time.Time) (Message, error) {
	if err := form.Validate(); err != nil {
		return Message{}, err
	}
	msg := Message{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(form.Name),
		Email:      form.Email,
		Body:       strings.TrimSpace(form.Message),
		ReceivedAt: now,
	}
	i.mu.Lock()
	i.messages = append(i.messages, msg)
	if len(i.messages) > i.limit {
		i.messages = i.messages[len(i.messages)-i.limit:]
	}
	i.mu.Unlock()

	i.logger.Info("contact message received",
		zap.String("id", msg.ID),
		zap.String("email", msg.Email),
		zap.Int("length", len(msg.Body)))
	return msg, nil
}

// List returns messages oldest first.
func (i *Inbox) List() []Message {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]Message, len(i.messages))
	copy(out, i.messages)
	return out
}
