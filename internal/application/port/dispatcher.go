package port

import (
	"context"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

// IntentDispatcher accepts intents for serialized reduction.
type IntentDispatcher interface {
	Dispatch(ctx context.Context, intent entity.Intent)
}

// StateReader exposes read-only session state.
type StateReader interface {
	State() entity.SessionState
}

// StateListener is notified after every applied intent.
type StateListener func(state entity.SessionState)

// SessionStore is the session surface consumed by the UI layer.
type SessionStore interface {
	IntentDispatcher
	StateReader
	Subscribe(listener StateListener) (unsubscribe func())
}
