package store

func cloneStrPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneFlashcards(in []Flashcard) []Flashcard {
	out := make([]Flashcard, len(in))
	for i, f := range in {
		f.Tags = cloneStrings(f.Tags)
		out[i] = f
	}
	return out
}

func cloneQuestions(in []QuizQuestion) []QuizQuestion {
	out := make([]QuizQuestion, len(in))
	for i, q := range in {
		q.Options = cloneStrings(q.Options)
		q.Explanation = cloneStrPtr(q.Explanation)
		out[i] = q
	}
	return out
}

func cloneQuiz(q Quiz) Quiz {
	q.Questions = cloneQuestions(q.Questions)
	if q.Score != nil {
		v := *q.Score
		q.Score = &v
	}
	if q.CompletedAt != nil {
		v := *q.CompletedAt
		q.CompletedAt = &v
	}
	return q
}

func cloneQuizzes(in []Quiz) []Quiz {
	out := make([]Quiz, len(in))
	for i, q := range in {
		out[i] = cloneQuiz(q)
	}
	return out
}

func cloneProject(p Project) Project {
	p.AudioFile = cloneStrPtr(p.AudioFile)
	p.Transcription = cloneStrPtr(p.Transcription)
	p.Flashcards = cloneFlashcards(p.Flashcards)
	p.Quizzes = cloneQuizzes(p.Quizzes)
	return p
}

func cloneState(s State) State {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.Projects = make([]Project, len(s.Projects))
	for i, p := range s.Projects {
		out.Projects[i] = cloneProject(p)
	}
	out.ChatMessages = make([]ChatMessage, len(s.ChatMessages))
	copy(out.ChatMessages, s.ChatMessages)
	return out
}
