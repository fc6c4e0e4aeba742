// Package session owns the live desktop session: it serializes intents
// through the reducer and publishes each new state to subscribers.
package session

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbdesk/internal/application/port"
	"github.com/bnema/dumbdesk/internal/application/usecase"
	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/logging"
)

// Options configures a Session.
type Options struct {
	// AssertInvariants checks every reduced state and panics on violation.
	AssertInvariants bool
}

type subscriber struct {
	id       uint64
	listener port.StateListener
}

type queuedIntent struct {
	ctx    context.Context
	intent entity.Intent
}

// Session is the single owner of SessionState.
//
// Intents are applied one at a time in arrival order. A listener that
// dispatches while being notified enqueues its intent; it is applied after
// the current one has been fully published.
type Session struct {
	reducer *usecase.SessionReducer
	opts    Options

	mu        sync.Mutex
	state     entity.SessionState
	queue     []queuedIntent
	draining  bool
	listeners []subscriber
	nextSubID uint64
	outcomes  []func(usecase.Outcome)
}

var _ port.SessionStore = (*Session)(nil)

// New creates a session starting from initial.
func New(reducer *usecase.SessionReducer, initial entity.SessionState, opts Options) *Session {
	return &Session{
		reducer: reducer,
		opts:    opts,
		state:   initial.Clone(),
	}
}

// State returns a copy of the current state.
func (s *Session) State() entity.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers a listener called after every applied intent.
// Listeners are notified in subscription order.
func (s *Session) Subscribe(listener port.StateListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.listeners = append(s.listeners, subscriber{id: id, listener: listener})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.listeners = slices.DeleteFunc(s.listeners, func(sub subscriber) bool {
				return sub.id == id
			})
			s.mu.Unlock()
		})
	}
}

// SubscriberCount returns the number of registered listeners.
func (s *Session) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// OnOutcome registers a hook that observes every reduction, applied or not.
func (s *Session) OnOutcome(fn func(usecase.Outcome)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, fn)
}

// Dispatch enqueues intent. If no other dispatch is draining the queue,
// the caller drains it before returning.
//
// A panic while applying an intent (a failed invariant check or a listener
// panic) discards the queue and leaves the session ready for the next
// Dispatch.
func (s *Session) Dispatch(ctx context.Context, intent entity.Intent) {
	s.mu.Lock()
	s.queue = append(s.queue, queuedIntent{ctx: ctx, intent: intent})
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.queue = nil
		s.draining = false
		s.mu.Unlock()
	}()

	for {
		next, ok := s.dequeue()
		if !ok {
			return
		}
		s.apply(next)
	}
}

func (s *Session) dequeue() (queuedIntent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return queuedIntent{}, false
	}
	next := s.queue[0]
	s.queue[0] = queuedIntent{}
	s.queue = s.queue[1:]
	return next, true
}

func (s *Session) apply(next queuedIntent) {
	state, out, listeners, hooks, err := s.reduce(next.intent)
	if err != nil {
		panic(err)
	}

	logOutcome(next.ctx, next.intent, out)
	for _, fn := range hooks {
		fn(out)
	}
	for _, sub := range listeners {
		sub.listener(state.Clone())
	}
}

// reduce applies intent to the current state and snapshots who must be told.
// A broken invariant is returned as an error and the state is not committed.
func (s *Session) reduce(intent entity.Intent) (entity.SessionState, usecase.Outcome, []subscriber, []func(usecase.Outcome), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, out := s.reducer.Reduce(s.state, intent)
	if s.opts.AssertInvariants {
		if err := checkInvariants(state, out); err != nil {
			return entity.SessionState{}, out, nil, nil, err
		}
	}
	s.state = state

	var listeners []subscriber
	if out.Applied {
		listeners = slices.Clone(s.listeners)
	}
	return state, out, listeners, slices.Clone(s.outcomes), nil
}

func checkInvariants(state entity.SessionState, out usecase.Outcome) error {
	err := usecase.CheckInvariants(state)
	if err == nil {
		return nil
	}
	var violation *entity.InvariantViolation
	if errors.As(err, &violation) {
		violation.Intent = out.Intent
	}
	return err
}

func logOutcome(ctx context.Context, intent entity.Intent, out usecase.Outcome) {
	logger := logging.FromContext(ctx)

	var ev *zerolog.Event
	switch {
	case out.Applied:
		ev = logger.Debug()
	case out.Reason == usecase.ReasonUnknownApplication:
		ev = logger.Warn()
	case out.Reason == usecase.ReasonNoOp:
		ev = logger.Trace()
	default:
		// Stale targets are expected when a gesture races a close.
		ev = logger.Debug()
	}

	ev = ev.Str("intent", string(out.Intent)).Bool("applied", out.Applied)
	if wi, ok := intent.(entity.WindowIntent); ok {
		ev = ev.Str("window_id", string(wi.Target()))
	}
	if open, ok := intent.(entity.Open); ok {
		ev = ev.Str("app_id", string(open.AppID))
	}
	if out.Reason != usecase.ReasonNone {
		ev = ev.Str("reason", string(out.Reason))
	}
	if out.Err != nil {
		ev = ev.Err(out.Err)
	}
	ev.Msg("intent reduced")
}
