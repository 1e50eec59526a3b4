package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenCmd wraps a subscription channel as a one-shot Bubble Tea command.
// The returned command blocks until the next event and delivers it as the
// tea.Msg. A cancelled context or a closed channel yields nil, which tells
// the runtime to stop waiting.
func ListenCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}

// ContinuousListener feeds a broker subscription into a Bubble Tea update
// loop one event at a time. The viewer uses it to tail the debug log: the
// model calls Listen once at Init and again after handling each event, so
// exactly one receive is in flight at any moment.
type ContinuousListener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewContinuousListener subscribes to the broker for the lifetime of ctx.
// Cancelling ctx tears down the subscription and makes pending and future
// Listen commands resolve to nil.
func NewContinuousListener[T any](ctx context.Context, broker *Broker[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{ctx: ctx, ch: broker.Subscribe(ctx)}
}

// Listen returns a command that resolves with the next event. Call it again
// from Update after each delivered event to keep the stream flowing.
func (l *ContinuousListener[T]) Listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-l.ctx.Done():
			return nil
		case event, ok := <-l.ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}
