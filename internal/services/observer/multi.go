package observer

import "context"

// multi fans every event out to a list of observers in order
type multi struct {
	observers []Observer
}

// NewMulti creates an observer that forwards to each of observers. Nil
// entries are skipped.
func NewMulti(observers ...Observer) Observer {
	m := &multi{}
	for _, o := range observers {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
	return m
}

func (m *multi) RoundStarted(ctx context.Context, event *RoundStartedEvent) {
	for _, o := range m.observers {
		o.RoundStarted(ctx, event)
	}
}

func (m *multi) BidPlaced(ctx context.Context, event *BidPlacedEvent) {
	for _, o := range m.observers {
		o.BidPlaced(ctx, event)
	}
}

func (m *multi) ChallengeResolved(ctx context.Context, event *ChallengeResolvedEvent) {
	for _, o := range m.observers {
		o.ChallengeResolved(ctx, event)
	}
}

func (m *multi) InvalidMove(ctx context.Context, event *InvalidMoveEvent) {
	for _, o := range m.observers {
		o.InvalidMove(ctx, event)
	}
}

func (m *multi) GameOver(ctx context.Context, event *GameOverEvent) {
	for _, o := range m.observers {
		o.GameOver(ctx, event)
	}
}

// nop discards every event
type nop struct{}

// NewNop creates an observer that ignores all events
func NewNop() Observer {
	return nop{}
}

func (nop) RoundStarted(context.Context, *RoundStartedEvent)           {}
func (nop) BidPlaced(context.Context, *BidPlacedEvent)                 {}
func (nop) ChallengeResolved(context.Context, *ChallengeResolvedEvent) {}
func (nop) InvalidMove(context.Context, *InvalidMoveEvent)             {}
func (nop) GameOver(context.Context, *GameOverEvent)                   {}
