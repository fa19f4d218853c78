package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/awardkeeper/internal/client/actions"
	"github.com/dmitrijs2005/awardkeeper/internal/logging"
)

// Listener observes every dispatched descriptor together with the state it
// produced. Listeners run synchronously on the dispatching goroutine and see
// descriptors in the order they were folded. A listener may read the store
// but must not dispatch.
type Listener func(actions.Action, State)

// Store is safe for concurrent use. Dispatches are serialized.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners map[int]Listener
	nextID    int
	log       logging.Logger

	// notifyMu is taken before mu is released so that notifications keep
	// fold order while readers are not blocked by listeners.
	notifyMu sync.Mutex
}

func New(log logging.Logger) *Store {
	return &Store{
		state:     NewState(),
		listeners: map[int]Listener{},
		log:       log.With("module", "store"),
	}
}

// Dispatch folds a into the state. It always succeeds; unknown kinds are
// ignored.
func (s *Store) Dispatch(a actions.Action) {
	apply, ok := Appliers[a.Type]
	if !ok {
		s.log.Debug(context.Background(), "unknown action", "type", a.Type)
		return
	}

	s.mu.Lock()
	s.state = apply(s.state, a)
	st := s.state
	ls := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		ls = append(ls, l)
	}
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	s.log.Debug(context.Background(), "dispatch", "type", a.Type)
	for _, l := range ls {
		l(a, st)
	}
}

func (s *Store) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
