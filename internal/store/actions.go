package store

import (
	"fmt"

	"github.com/sirupsen/logrus"

	util "github.com/saulo-duarte/memento/internal/utils"
)

func (s *Store) Login(user User) {
	s.mutate(func(st *State) bool {
		u := user
		st.User = &u
		st.IsAuthenticated = true
		return true
	})
	s.log.WithField("user_id", user.ID).Debug("Session started")
}

// Logout ends the session and leaves the workspace. Projects and chat are kept.
func (s *Store) Logout() {
	s.mutate(func(st *State) bool {
		if st.User == nil && !st.IsAuthenticated && st.CurrentProjectID == "" {
			return false
		}
		st.User = nil
		st.IsAuthenticated = false
		st.CurrentProjectID = ""
		return true
	})
}

func (s *Store) CreateProject(name string) Project {
	now := s.clock.Now()
	p := Project{
		ID:         s.newID(),
		Name:       name,
		Flashcards: []Flashcard{},
		Quizzes:    []Quiz{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.mutate(func(st *State) bool {
		st.Projects = append(st.Projects, p)
		st.CurrentProjectID = p.ID
		return true
	})

	s.log.WithFields(logrus.Fields{"project_id": p.ID, "name": name}).Debug("Project created")
	return cloneProject(p)
}

// SetCurrentProject selects the project with the given id. Unknown ids leave
// the selection untouched.
func (s *Store) SetCurrentProject(id string) bool {
	found := false
	s.mutate(func(st *State) bool {
		if indexOf(st.Projects, id) < 0 {
			return false
		}
		found = true
		if st.CurrentProjectID == id {
			return false
		}
		st.CurrentProjectID = id
		return true
	})
	return found
}

func (s *Store) ClearCurrentProject() {
	s.mutate(func(st *State) bool {
		if st.CurrentProjectID == "" {
			return false
		}
		st.CurrentProjectID = ""
		return true
	})
}

// UpdateProject merges the non-nil fields of u into the project and refreshes
// its updatedAt. Nested sequences are replaced as a whole.
func (s *Store) UpdateProject(id string, u ProjectUpdate) (Project, bool) {
	var (
		out   Project
		found bool
	)
	s.mutate(func(st *State) bool {
		i := indexOf(st.Projects, id)
		if i < 0 {
			return false
		}
		p := st.Projects[i]
		if u.Name != nil {
			p.Name = *u.Name
		}
		if u.AudioFile != nil {
			p.AudioFile = cloneStrPtr(u.AudioFile)
		}
		if u.Transcription != nil {
			p.Transcription = cloneStrPtr(u.Transcription)
		}
		if u.Flashcards != nil {
			p.Flashcards = cloneFlashcards(*u.Flashcards)
		}
		if u.Quizzes != nil {
			p.Quizzes = cloneQuizzes(*u.Quizzes)
		}
		p.UpdatedAt = util.Later(s.clock.Now(), p.UpdatedAt)

		st.Projects[i] = p
		out = cloneProject(p)
		found = true
		return true
	})

	if !found {
		s.log.WithField("project_id", id).Debug("Update ignored for unknown project")
	}
	return out, found
}

// ModifyProject runs fn on a copy of the project under the store lock and
// commits the copy unless fn returns an error. id and createdAt are kept.
// Use it when a change depends on the project's current contents.
func (s *Store) ModifyProject(id string, fn func(p *Project) error) (Project, error) {
	var (
		out Project
		err error
	)
	s.mutate(func(st *State) bool {
		i := indexOf(st.Projects, id)
		if i < 0 {
			err = fmt.Errorf("modify project %s: %w", id, ErrProjectNotFound)
			return false
		}
		p := cloneProject(st.Projects[i])
		if err = fn(&p); err != nil {
			return false
		}
		p.ID = st.Projects[i].ID
		p.CreatedAt = st.Projects[i].CreatedAt
		p.UpdatedAt = util.Later(s.clock.Now(), st.Projects[i].UpdatedAt)

		st.Projects[i] = cloneProject(p)
		out = p
		return true
	})
	return out, err
}

func (s *Store) DeleteProject(id string) bool {
	found := false
	s.mutate(func(st *State) bool {
		i := indexOf(st.Projects, id)
		if i < 0 {
			return false
		}
		projects := make([]Project, 0, len(st.Projects)-1)
		projects = append(projects, st.Projects[:i]...)
		projects = append(projects, st.Projects[i+1:]...)
		st.Projects = projects
		if st.CurrentProjectID == id {
			st.CurrentProjectID = ""
		}
		found = true
		return true
	})

	if found {
		s.log.WithField("project_id", id).Debug("Project deleted")
	}
	return found
}

// AddChatMessage appends a message tagged with the current project, if any.
func (s *Store) AddChatMessage(content string, sender Sender) ChatMessage {
	var msg ChatMessage
	s.mutate(func(st *State) bool {
		msg = s.newMessage(st.CurrentProjectID, content, sender)
		st.ChatMessages = append(st.ChatMessages, msg)
		return true
	})
	return msg
}

// AppendChatMessage appends a message tagged with an explicit project id.
// Delayed replies use it so they land in the conversation they answer.
func (s *Store) AppendChatMessage(projectID, content string, sender Sender) ChatMessage {
	var msg ChatMessage
	s.mutate(func(st *State) bool {
		msg = s.newMessage(projectID, content, sender)
		st.ChatMessages = append(st.ChatMessages, msg)
		return true
	})
	return msg
}

func (s *Store) newMessage(projectID, content string, sender Sender) ChatMessage {
	return ChatMessage{
		ID:        s.newID(),
		ProjectID: projectID,
		Content:   content,
		Sender:    sender,
		Timestamp: s.clock.Now(),
	}
}

func (s *Store) ClearChat() {
	s.mutate(func(st *State) bool {
		if len(st.ChatMessages) == 0 {
			return false
		}
		st.ChatMessages = []ChatMessage{}
		return true
	})
}

func (s *Store) ClearProjectChat(projectID string) {
	s.mutate(func(st *State) bool {
		kept := make([]ChatMessage, 0, len(st.ChatMessages))
		for _, m := range st.ChatMessages {
			if m.ProjectID != projectID {
				kept = append(kept, m)
			}
		}
		if len(kept) == len(st.ChatMessages) {
			return false
		}
		st.ChatMessages = kept
		return true
	})
}

func (s *Store) SetSidebarOpen(open bool) {
	s.mutate(func(st *State) bool {
		if st.SidebarOpen == open {
			return false
		}
		st.SidebarOpen = open
		return true
	})
}

// SetCurrentView switches the workspace pane. Views outside the closed set
// are ignored.
func (s *Store) SetCurrentView(view View) bool {
	if !view.IsValid() {
		return false
	}
	s.mutate(func(st *State) bool {
		if st.CurrentView == view {
			return false
		}
		st.CurrentView = view
		return true
	})
	return true
}
