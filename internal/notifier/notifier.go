package notifier

import (
	"context"

	"SwingSentinel/internal/model"
)

// Sender delivers a rendered message over one transport.
type Sender interface {
	Channel() string
	Send(ctx context.Context, msg model.AlertMessage) error
}

// FormatFunc renders a brief for one channel.
type FormatFunc func(b *model.Brief) model.AlertMessage

type route struct {
	sender Sender
	format FormatFunc
}

// Dispatcher sends a brief through every registered channel, in order.
type Dispatcher struct {
	routes []route
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// Add registers a sender with the formatter for its channel.
func (d *Dispatcher) Add(s Sender, format FormatFunc) {
	d.routes = append(d.routes, route{sender: s, format: format})
}

// Channels lists the registered channels in send order.
func (d *Dispatcher) Channels() []string {
	out := make([]string, len(d.routes))
	for i, r := range d.routes {
		out[i] = r.sender.Channel()
	}
	return out
}

// Dispatch stops at the first failing channel and returns the channels that
// had already been delivered.
func (d *Dispatcher) Dispatch(ctx context.Context, b *model.Brief) ([]string, error) {
	var sent []string
	for _, r := range d.routes {
		if err := r.sender.Send(ctx, r.format(b)); err != nil {
			return sent, err
		}
		sent = append(sent, r.sender.Channel())
	}
	return sent, nil
}
