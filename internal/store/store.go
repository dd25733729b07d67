// Package store holds the application state of Memento: the session, the
// project collection with its study content, the chat log and the workspace
// navigation state. Every mutation is applied under a single lock, and readers
// only ever receive deep copies.
package store

import (
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	util "github.com/saulo-duarte/memento/internal/utils"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrQuizNotFound    = errors.New("quiz not found")
)

type Listener func(State)

type Store struct {
	mu    sync.RWMutex
	state State

	clock util.Clock
	newID func() string
	log   logrus.FieldLogger

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextListen  int
}

type Option func(*Store)

func WithClock(c util.Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = l
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		state:     InitialState(),
		clock:     util.NewMonotonicClock(nil),
		newID:     uuid.NewString,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		s.log = discard
	}
	return s
}

// NewID mints an identifier with the same generator the store uses for its own
// records, so callers building flashcards or quizzes share one id space.
func (s *Store) NewID() string {
	return s.newID()
}

// Subscribe registers fn to run after every committed mutation. Listeners run
// outside the store lock and receive their own snapshot.
func (s *Store) Subscribe(fn Listener) func() {
	s.listenersMu.Lock()
	id := s.nextListen
	s.nextListen++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// mutate runs fn under the write lock. When fn reports a change, listeners are
// notified with the committed state.
func (s *Store) mutate(fn func(st *State) bool) {
	s.mu.Lock()
	changed := fn(&s.state)
	var snapshot State
	if changed {
		snapshot = cloneState(s.state)
	}
	s.mu.Unlock()

	if changed {
		s.notify(snapshot)
	}
}

func (s *Store) notify(snapshot State) {
	s.listenersMu.Lock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenersMu.Unlock()

	for i, fn := range fns {
		if i == 0 {
			fn(snapshot)
			continue
		}
		fn(cloneState(snapshot))
	}
}

func (s *Store) read(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// Restore replaces the whole state, typically with one rehydrated from a
// persisted slot. A dangling current project or an unknown view is repaired.
func (s *Store) Restore(st State) {
	st = cloneState(st)
	if st.Projects == nil {
		st.Projects = []Project{}
	}
	if st.ChatMessages == nil {
		st.ChatMessages = []ChatMessage{}
	}
	if !st.CurrentView.IsValid() {
		st.CurrentView = ViewTranscription
	}
	if st.CurrentProjectID != "" && indexOf(st.Projects, st.CurrentProjectID) < 0 {
		s.log.WithField("project_id", st.CurrentProjectID).Warn("Dropping dangling current project on restore")
		st.CurrentProjectID = ""
	}
	if st.User == nil {
		st.IsAuthenticated = false
	}

	s.mutate(func(cur *State) bool {
		*cur = st
		return true
	})
}

func (s *Store) Snapshot() State {
	var out State
	s.read(func(st *State) {
		out = cloneState(*st)
	})
	return out
}

func (s *Store) User() *User {
	var out *User
	s.read(func(st *State) {
		if st.User != nil {
			u := *st.User
			out = &u
		}
	})
	return out
}

func (s *Store) IsAuthenticated() bool {
	var out bool
	s.read(func(st *State) {
		out = st.IsAuthenticated
	})
	return out
}

func (s *Store) Projects() []Project {
	var out []Project
	s.read(func(st *State) {
		out = make([]Project, len(st.Projects))
		for i, p := range st.Projects {
			out[i] = cloneProject(p)
		}
	})
	return out
}

func (s *Store) Project(id string) (Project, bool) {
	var (
		out   Project
		found bool
	)
	s.read(func(st *State) {
		if i := indexOf(st.Projects, id); i >= 0 {
			out = cloneProject(st.Projects[i])
			found = true
		}
	})
	return out, found
}

func (s *Store) CurrentProject() *Project {
	var out *Project
	s.read(func(st *State) {
		if i := indexOf(st.Projects, st.CurrentProjectID); i >= 0 {
			p := cloneProject(st.Projects[i])
			out = &p
		}
	})
	return out
}

func (s *Store) ChatMessages() []ChatMessage {
	var out []ChatMessage
	s.read(func(st *State) {
		out = make([]ChatMessage, len(st.ChatMessages))
		copy(out, st.ChatMessages)
	})
	return out
}

// ProjectChat returns the messages tagged with projectID, in append order.
func (s *Store) ProjectChat(projectID string) []ChatMessage {
	out := []ChatMessage{}
	s.read(func(st *State) {
		for _, m := range st.ChatMessages {
			if m.ProjectID == projectID {
				out = append(out, m)
			}
		}
	})
	return out
}

func (s *Store) SidebarOpen() bool {
	var out bool
	s.read(func(st *State) {
		out = st.SidebarOpen
	})
	return out
}

func (s *Store) CurrentView() View {
	var out View
	s.read(func(st *State) {
		out = st.CurrentView
	})
	return out
}

func indexOf(projects []Project, id string) int {
	if id == "" {
		return -1
	}
	for i := range projects {
		if projects[i].ID == id {
			return i
		}
	}
	return -1
}
