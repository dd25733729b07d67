package persist

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/store"
)

const saveTimeout = 10 * time.Second

// Syncer writes the store to its slot after every mutation. Bursts of
// mutations collapse into one write of the latest state.
type Syncer struct {
	slot Slot
	key  string
	log  *logrus.Entry

	dirty chan struct{}
	stop  chan struct{}
	done  chan struct{}

	mu          sync.Mutex
	attached    bool
	closed      bool
	unsubscribe func()
	lastErr     error
}

func NewSyncer(slot Slot, key string) *Syncer {
	return &Syncer{
		slot:  slot,
		key:   key,
		log:   config.WithContext(context.Background()).WithFields(logrus.Fields{"component": "persist", "slot": key}),
		dirty: make(chan struct{}, 1),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Load rehydrates st from the slot. It reports false when the slot is empty.
func (s *Syncer) Load(ctx context.Context, st *store.Store) (bool, error) {
	data, err := s.slot.Read(ctx, s.key)
	if errors.Is(err, ErrSlotEmpty) {
		s.log.Debug("No persisted state, starting fresh")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	state, err := Decode(data)
	if err != nil {
		return false, err
	}
	st.Restore(state)
	s.log.WithField("projects", len(state.Projects)).Info("State restored")
	return true, nil
}

func (s *Syncer) Save(ctx context.Context, st store.State) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}
	return s.slot.Write(ctx, s.key, data)
}

// Attach starts the background writer for st.
func (s *Syncer) Attach(st *store.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached || s.closed {
		return
	}
	s.attached = true
	s.unsubscribe = st.Subscribe(func(store.State) {
		select {
		case s.dirty <- struct{}{}:
		default:
		}
	})
	go s.run(st)
}

func (s *Syncer) run(st *store.Store) {
	defer close(s.done)
	for {
		select {
		case <-s.dirty:
			s.flush(st)
		case <-s.stop:
			select {
			case <-s.dirty:
				s.flush(st)
			default:
			}
			return
		}
	}
}

func (s *Syncer) flush(st *store.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	err := s.Save(ctx, st.Snapshot())
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	if err != nil {
		s.log.WithError(err).Error("Failed to persist state")
		return
	}
	s.log.Debug("State persisted")
}

// Err returns the outcome of the most recent background write.
func (s *Syncer) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Close stops listening, writes any pending state and closes the slot.
func (s *Syncer) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	attached := s.attached
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.mu.Unlock()

	if attached {
		close(s.stop)
		select {
		case <-s.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := s.Err(); err != nil {
		_ = s.slot.Close()
		return err
	}
	return s.slot.Close()
}
