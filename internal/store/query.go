package store

import "strings"

// SearchProjects returns the projects whose name contains query, ignoring case,
// in collection order. An empty query matches everything.
func (s *Store) SearchProjects(query string) []Project {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := []Project{}
	s.read(func(st *State) {
		for _, p := range st.Projects {
			if needle == "" || strings.Contains(strings.ToLower(p.Name), needle) {
				out = append(out, cloneProject(p))
			}
		}
	})
	return out
}

func (s *Store) Stats() Stats {
	var out Stats
	s.read(func(st *State) {
		out.Projects = len(st.Projects)
		out.ChatMessages = len(st.ChatMessages)
		for _, p := range st.Projects {
			out.Flashcards += len(p.Flashcards)
			out.Quizzes += len(p.Quizzes)
			for _, q := range p.Quizzes {
				if q.Completed() {
					out.CompletedQuizzes++
				}
			}
			if p.Transcription != nil && strings.TrimSpace(*p.Transcription) != "" {
				out.TranscribedAudios++
			}
		}
	})
	return out
}
