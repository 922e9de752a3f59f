package notifier

import (
	"context"

	"SwingSentinel/internal/model"
)

// StubSender records messages instead of sending them.
type StubSender struct {
	Name string
	Err  error
	Sent []model.AlertMessage
}

func (s *StubSender) Channel() string { return s.Name }

func (s *StubSender) Send(_ context.Context, msg model.AlertMessage) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, msg)
	return nil
}
