package store_test

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/saulo-duarte/memento/internal/store"
)

var _ = Describe("Store", func() {
	var s *store.Store

	BeforeEach(func() {
		s = newTestStore()
	})

	Context("initial state", func() {
		It("starts logged out on the transcription view with the sidebar open", func() {
			st := s.Snapshot()
			Expect(st.User).To(BeNil())
			Expect(st.IsAuthenticated).To(BeFalse())
			Expect(st.Projects).To(BeEmpty())
			Expect(st.ChatMessages).To(BeEmpty())
			Expect(st.SidebarOpen).To(BeTrue())
			Expect(st.CurrentView).To(Equal(store.ViewTranscription))
			Expect(s.CurrentProject()).To(BeNil())
		})
	})

	Context("session", func() {
		It("accepts any identity on login", func() {
			s.Login(store.User{ID: "user-1", Name: "Demo", Email: "demo@memento.app"})

			Expect(s.IsAuthenticated()).To(BeTrue())
			Expect(s.User()).To(Equal(&store.User{ID: "user-1", Name: "Demo", Email: "demo@memento.app"}))
		})

		It("clears the session and the selection on logout but keeps projects and chat", func() {
			s.Login(store.User{ID: "user-1"})
			p := s.CreateProject("Biology 101")
			s.AddChatMessage("hello", store.SenderUser)

			s.Logout()

			Expect(s.IsAuthenticated()).To(BeFalse())
			Expect(s.User()).To(BeNil())
			Expect(s.CurrentProject()).To(BeNil())
			Expect(s.Projects()).To(HaveLen(1))
			Expect(s.Projects()[0].ID).To(Equal(p.ID))
			Expect(s.ChatMessages()).To(HaveLen(1))
		})

		It("treats a second logout as a no-op", func() {
			s.Logout()
			before := s.Snapshot()

			notified := 0
			unsubscribe := s.Subscribe(func(store.State) { notified++ })
			defer unsubscribe()

			s.Logout()
			Expect(s.Snapshot()).To(Equal(before))
			Expect(notified).To(BeZero())
		})
	})

	Context("creating projects", func() {
		It("mints distinct ids and preserves insertion order", func() {
			names := []string{"a", "b", "c", "d", "e"}
			seen := map[string]bool{}
			for _, n := range names {
				p := s.CreateProject(n)
				Expect(seen).NotTo(HaveKey(p.ID))
				seen[p.ID] = true
			}

			projects := s.Projects()
			Expect(projects).To(HaveLen(len(names)))
			for i, p := range projects {
				Expect(p.Name).To(Equal(names[i]))
			}
		})

		It("starts empty, stamps both dates and becomes current", func() {
			p := s.CreateProject("Chemistry")

			Expect(p.Flashcards).To(BeEmpty())
			Expect(p.Quizzes).To(BeEmpty())
			Expect(p.Transcription).To(BeNil())
			Expect(p.AudioFile).To(BeNil())
			Expect(p.UpdatedAt).To(Equal(p.CreatedAt))
			Expect(s.CurrentProject().ID).To(Equal(p.ID))
		})

		It("does not validate the name", func() {
			p := s.CreateProject("   ")
			Expect(p.Name).To(Equal("   "))
			Expect(s.Projects()).To(HaveLen(1))
		})

		It("uses uuids by default", func() {
			p := store.New().CreateProject("x")
			Expect(p.ID).To(MatchRegexp(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`))
		})
	})

	Context("selecting the current project", func() {
		It("selects by id", func() {
			a := s.CreateProject("a")
			s.CreateProject("b")

			Expect(s.SetCurrentProject(a.ID)).To(BeTrue())
			Expect(s.CurrentProject().ID).To(Equal(a.ID))
		})

		It("ignores unknown ids", func() {
			b := s.CreateProject("b")

			Expect(s.SetCurrentProject("missing")).To(BeFalse())
			Expect(s.CurrentProject().ID).To(Equal(b.ID))
		})

		It("can leave the workspace", func() {
			s.CreateProject("b")
			s.ClearCurrentProject()
			Expect(s.CurrentProject()).To(BeNil())
		})
	})

	Context("updating projects", func() {
		It("keeps the collection copy and the current project identical", func() {
			p := s.CreateProject("Biology 101")
			cards := []store.Flashcard{flashcard("f1", "q1"), flashcard("f2", "q2")}

			updated, ok := s.UpdateProject(p.ID, store.ProjectUpdate{Flashcards: &cards})
			Expect(ok).To(BeTrue())

			fromCollection, found := s.Project(p.ID)
			Expect(found).To(BeTrue())
			Expect(*s.CurrentProject()).To(Equal(fromCollection))
			Expect(updated).To(Equal(fromCollection))
			Expect(updated.UpdatedAt).To(BeTemporally(">", p.UpdatedAt))
		})

		It("merges only the provided fields", func() {
			p := s.CreateProject("Physics")
			s.UpdateProject(p.ID, store.ProjectUpdate{Transcription: ptr("waves")})
			updated, _ := s.UpdateProject(p.ID, store.ProjectUpdate{Name: ptr("Physics II")})

			Expect(updated.Name).To(Equal("Physics II"))
			Expect(*updated.Transcription).To(Equal("waves"))
			Expect(updated.CreatedAt).To(Equal(p.CreatedAt))
			Expect(updated.ID).To(Equal(p.ID))
		})

		It("replaces nested sequences wholesale", func() {
			p := s.CreateProject("History")
			first := []store.Flashcard{flashcard("f1", "q1"), flashcard("f2", "q2")}
			s.UpdateProject(p.ID, store.ProjectUpdate{Flashcards: &first})

			second := []store.Flashcard{flashcard("f3", "q3")}
			updated, _ := s.UpdateProject(p.ID, store.ProjectUpdate{Flashcards: &second})

			Expect(updated.Flashcards).To(HaveLen(1))
			Expect(updated.Flashcards[0].ID).To(Equal("f3"))
		})

		It("refreshes updatedAt even for an empty update", func() {
			p := s.CreateProject("Art")
			updated, ok := s.UpdateProject(p.ID, store.ProjectUpdate{})
			Expect(ok).To(BeTrue())
			Expect(updated.UpdatedAt).To(BeTemporally(">", p.UpdatedAt))
		})

		It("does not update a project that is not current through the current copy", func() {
			a := s.CreateProject("a")
			b := s.CreateProject("b")

			s.UpdateProject(a.ID, store.ProjectUpdate{Name: ptr("a2")})

			Expect(s.CurrentProject().ID).To(Equal(b.ID))
			Expect(s.CurrentProject().Name).To(Equal("b"))
		})

		It("ignores unknown ids", func() {
			s.CreateProject("a")
			before := s.Snapshot()

			_, ok := s.UpdateProject("missing", store.ProjectUpdate{Name: ptr("x")})
			Expect(ok).To(BeFalse())
			Expect(s.Snapshot()).To(Equal(before))
		})

		It("does not alias the caller's slices", func() {
			p := s.CreateProject("Alias")
			cards := []store.Flashcard{flashcard("f1", "q1")}
			s.UpdateProject(p.ID, store.ProjectUpdate{Flashcards: &cards})

			cards[0].Question = "mutated"
			got, _ := s.Project(p.ID)
			Expect(got.Flashcards[0].Question).To(Equal("q1"))

			got.Flashcards[0].Tags[0] = "mutated"
			again, _ := s.Project(p.ID)
			Expect(again.Flashcards[0].Tags[0]).To(Equal("biology"))
		})
	})

	Context("modifying projects in place", func() {
		It("applies the change to the current contents and refreshes updatedAt", func() {
			p := s.CreateProject("Chemistry")
			quizzes := []store.Quiz{quiz("qz1", 0)}
			s.UpdateProject(p.ID, store.ProjectUpdate{Quizzes: &quizzes})
			_, err := s.CompleteQuiz(p.ID, "qz1", []int{0})
			Expect(err).NotTo(HaveOccurred())
			before, _ := s.Project(p.ID)

			updated, err := s.ModifyProject(p.ID, func(p *store.Project) error {
				p.Quizzes = append(p.Quizzes, quiz("qz2", 1))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Quizzes).To(HaveLen(2))
			Expect(*updated.Quizzes[0].Score).To(Equal(100))
			Expect(updated.UpdatedAt).To(BeTemporally(">", before.UpdatedAt))

			got, _ := s.Project(p.ID)
			Expect(got).To(Equal(updated))
		})

		It("keeps id and createdAt", func() {
			p := s.CreateProject("Keep")
			updated, err := s.ModifyProject(p.ID, func(p *store.Project) error {
				p.ID = "other"
				p.CreatedAt = p.CreatedAt.Add(-time.Hour)
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ID).To(Equal(p.ID))
			Expect(updated.CreatedAt).To(Equal(p.CreatedAt))
		})

		It("commits nothing when the change fails", func() {
			p := s.CreateProject("Abort")
			before := s.Snapshot()
			failure := errors.New("rejected")

			_, err := s.ModifyProject(p.ID, func(p *store.Project) error {
				p.Name = "half done"
				return failure
			})
			Expect(err).To(MatchError(failure))
			Expect(s.Snapshot()).To(Equal(before))
		})

		It("reports unknown projects", func() {
			_, err := s.ModifyProject("missing", func(*store.Project) error { return nil })
			Expect(err).To(MatchError(store.ErrProjectNotFound))
		})
	})

	Context("deleting projects", func() {
		It("removes exactly the match and keeps the others in order", func() {
			a := s.CreateProject("a")
			b := s.CreateProject("b")
			c := s.CreateProject("c")
			s.SetCurrentProject(a.ID)

			Expect(s.DeleteProject(b.ID)).To(BeTrue())

			projects := s.Projects()
			Expect(projects).To(HaveLen(2))
			Expect(projects[0].ID).To(Equal(a.ID))
			Expect(projects[1].ID).To(Equal(c.ID))
			Expect(s.CurrentProject().ID).To(Equal(a.ID))
		})

		It("clears the current project when it is deleted", func() {
			p := s.CreateProject("a")
			s.DeleteProject(p.ID)
			Expect(s.CurrentProject()).To(BeNil())
			Expect(s.Snapshot().CurrentProjectID).To(BeEmpty())
		})

		It("leaves the state deep-equal for unknown ids", func() {
			s.CreateProject("a")
			s.AddChatMessage("hi", store.SenderUser)
			before := s.Snapshot()

			Expect(s.DeleteProject("missing")).To(BeFalse())
			Expect(s.Snapshot()).To(Equal(before))
		})
	})

	Context("chat", func() {
		It("is strictly append-only", func() {
			first := s.AddChatMessage("one", store.SenderUser)
			for i := 0; i < 5; i++ {
				before := len(s.ChatMessages())
				s.AddChatMessage("more", store.SenderAI)
				Expect(s.ChatMessages()).To(HaveLen(before + 1))
			}
			Expect(s.ChatMessages()[0]).To(Equal(first))
		})

		It("stamps id, sender and timestamp", func() {
			msg := s.AddChatMessage("hello", store.SenderAI)
			Expect(msg.ID).NotTo(BeEmpty())
			Expect(msg.Sender).To(Equal(store.SenderAI))
			Expect(msg.Timestamp.IsZero()).To(BeFalse())
		})

		It("tags messages with the current project", func() {
			a := s.CreateProject("a")
			s.AddChatMessage("about a", store.SenderUser)
			b := s.CreateProject("b")
			s.AddChatMessage("about b", store.SenderUser)
			s.AppendChatMessage(a.ID, "reply for a", store.SenderAI)

			Expect(s.ProjectChat(a.ID)).To(HaveLen(2))
			Expect(s.ProjectChat(b.ID)).To(HaveLen(1))
			Expect(s.ChatMessages()).To(HaveLen(3))
		})

		It("empties the log on clear regardless of its length", func() {
			for i := 0; i < 10; i++ {
				s.AddChatMessage("x", store.SenderUser)
			}
			s.ClearChat()
			Expect(s.ChatMessages()).To(BeEmpty())
		})

		It("clears a single project's conversation", func() {
			a := s.CreateProject("a")
			s.AddChatMessage("about a", store.SenderUser)
			b := s.CreateProject("b")
			s.AddChatMessage("about b", store.SenderUser)

			s.ClearProjectChat(a.ID)

			Expect(s.ProjectChat(a.ID)).To(BeEmpty())
			Expect(s.ProjectChat(b.ID)).To(HaveLen(1))
		})

		It("keeps messages when their project is deleted", func() {
			a := s.CreateProject("a")
			s.AddChatMessage("about a", store.SenderUser)
			s.DeleteProject(a.ID)
			Expect(s.ChatMessages()).To(HaveLen(1))
		})
	})

	Context("ui state", func() {
		It("toggles the sidebar without touching anything else", func() {
			s.CreateProject("a")
			before := s.Snapshot()

			s.SetSidebarOpen(false)

			after := s.Snapshot()
			Expect(after.SidebarOpen).To(BeFalse())
			after.SidebarOpen = true
			Expect(after).To(Equal(before))
		})

		DescribeTable("switching views",
			func(view store.View, accepted bool, expected store.View) {
				Expect(s.SetCurrentView(view)).To(Equal(accepted))
				Expect(s.CurrentView()).To(Equal(expected))
			},
			Entry("flashcards", store.ViewFlashcards, true, store.ViewFlashcards),
			Entry("quiz", store.ViewQuiz, true, store.ViewQuiz),
			Entry("chat", store.ViewChat, true, store.ViewChat),
			Entry("unknown view", store.View("settings"), false, store.ViewTranscription),
			Entry("empty view", store.View(""), false, store.ViewTranscription),
		)
	})

	Context("quizzes", func() {
		var projectID string

		BeforeEach(func() {
			p := s.CreateProject("Quiz project")
			projectID = p.ID
			quizzes := []store.Quiz{quiz("qz1", 1, 0, 2), quiz("empty")}
			s.UpdateProject(projectID, store.ProjectUpdate{Quizzes: &quizzes})
		})

		It("scores and stamps completion", func() {
			before, _ := s.Project(projectID)

			result, err := s.CompleteQuiz(projectID, "qz1", []int{1, 0, 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(*result.Score).To(Equal(67))
			Expect(result.CompletedAt).NotTo(BeNil())

			after, _ := s.Project(projectID)
			Expect(after.Quizzes[0].Score).To(Equal(result.Score))
			Expect(after.UpdatedAt).To(BeTemporally(">", before.UpdatedAt))
			Expect(after.Quizzes[1].Completed()).To(BeFalse())
		})

		It("scores an empty quiz as zero", func() {
			result, err := s.CompleteQuiz(projectID, "empty", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(*result.Score).To(BeZero())
		})

		It("reports unknown projects and quizzes", func() {
			_, err := s.CompleteQuiz("missing", "qz1", nil)
			Expect(err).To(MatchError(store.ErrProjectNotFound))

			_, err = s.CompleteQuiz(projectID, "missing", nil)
			Expect(err).To(MatchError(store.ErrQuizNotFound))
		})

		DescribeTable("Score",
			func(answers []int, expected int) {
				Expect(store.Score(quiz("t", 0, 1, 2).Questions, answers)).To(Equal(expected))
			},
			Entry("all correct", []int{0, 1, 2}, 100),
			Entry("none correct", []int{3, 3, 3}, 0),
			Entry("one of three rounds down", []int{0, 3, 3}, 33),
			Entry("two of three rounds up", []int{0, 1, 3}, 67),
			Entry("missing answers are wrong", []int{0}, 33),
			Entry("extra answers are ignored", []int{0, 1, 2, 2}, 100),
		)
	})

	Context("queries", func() {
		It("searches names case-insensitively", func() {
			s.CreateProject("Biology 101")
			s.CreateProject("Chemistry")
			s.CreateProject("Marine biology")

			Expect(s.SearchProjects("BIO")).To(HaveLen(2))
			Expect(s.SearchProjects("")).To(HaveLen(3))
			Expect(s.SearchProjects("physics")).To(BeEmpty())
		})

		It("aggregates dashboard stats", func() {
			p := s.CreateProject("a")
			cards := []store.Flashcard{flashcard("f1", "q1"), flashcard("f2", "q2")}
			quizzes := []store.Quiz{quiz("qz1", 0), quiz("qz2", 1)}
			s.UpdateProject(p.ID, store.ProjectUpdate{
				Flashcards:    &cards,
				Quizzes:       &quizzes,
				Transcription: ptr("text"),
			})
			_, err := s.CompleteQuiz(p.ID, "qz1", []int{0})
			Expect(err).NotTo(HaveOccurred())
			s.CreateProject("b")

			Expect(s.Stats()).To(Equal(store.Stats{
				Projects:          2,
				Flashcards:        2,
				Quizzes:           2,
				CompletedQuizzes:  1,
				TranscribedAudios: 1,
			}))
		})
	})

	Context("subscriptions", func() {
		It("notifies after each committed mutation with the new state", func() {
			var states []store.State
			unsubscribe := s.Subscribe(func(st store.State) { states = append(states, st) })

			p := s.CreateProject("a")
			s.UpdateProject("missing", store.ProjectUpdate{})
			s.SetCurrentView(store.ViewChat)

			Expect(states).To(HaveLen(2))
			Expect(states[0].Projects[0].ID).To(Equal(p.ID))
			Expect(states[1].CurrentView).To(Equal(store.ViewChat))

			unsubscribe()
			s.ClearCurrentProject()
			Expect(states).To(HaveLen(2))
		})

		It("lets listeners read the store without deadlocking", func() {
			var seen int
			s.Subscribe(func(store.State) { seen = len(s.Projects()) })
			s.CreateProject("a")
			Expect(seen).To(Equal(1))
		})
	})

	Context("restore", func() {
		It("round-trips through JSON with dates intact", func() {
			s.Login(store.User{ID: "u1", Name: "Demo", Email: "demo@memento.app"})
			p := s.CreateProject("Biology 101")
			quizzes := []store.Quiz{quiz("qz1", 1)}
			s.UpdateProject(p.ID, store.ProjectUpdate{Quizzes: &quizzes, AudioFile: ptr("lesson.mp3")})
			_, err := s.CompleteQuiz(p.ID, "qz1", []int{1})
			Expect(err).NotTo(HaveOccurred())
			s.AddChatMessage("hi", store.SenderUser)
			original := s.Snapshot()

			raw, err := json.Marshal(original)
			Expect(err).NotTo(HaveOccurred())
			var decoded store.State
			Expect(json.Unmarshal(raw, &decoded)).To(Succeed())

			restored := newTestStore()
			restored.Restore(decoded)
			got := restored.Snapshot()

			Expect(got.User).To(Equal(original.User))
			Expect(got.CurrentProjectID).To(Equal(original.CurrentProjectID))
			Expect(got.Projects).To(HaveLen(1))
			Expect(got.Projects[0].CreatedAt.Equal(original.Projects[0].CreatedAt)).To(BeTrue())
			Expect(got.Projects[0].UpdatedAt.Equal(original.Projects[0].UpdatedAt)).To(BeTrue())
			Expect(got.Projects[0].Quizzes[0].CompletedAt.Equal(*original.Projects[0].Quizzes[0].CompletedAt)).To(BeTrue())
			Expect(got.ChatMessages[0].Timestamp.Equal(original.ChatMessages[0].Timestamp)).To(BeTrue())
			Expect(*got.Projects[0].AudioFile).To(Equal("lesson.mp3"))
		})

		It("repairs a dangling current project and an unknown view", func() {
			st := store.InitialState()
			st.CurrentProjectID = "gone"
			st.CurrentView = "settings"
			st.IsAuthenticated = true

			s.Restore(st)

			Expect(s.CurrentProject()).To(BeNil())
			Expect(s.Snapshot().CurrentProjectID).To(BeEmpty())
			Expect(s.CurrentView()).To(Equal(store.ViewTranscription))
			Expect(s.IsAuthenticated()).To(BeFalse())
		})
	})

	Context("concurrent callers", func() {
		It("never exposes a current project missing from the collection", func() {
			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(2)
				go func() {
					defer wg.Done()
					p := s.CreateProject("p")
					s.DeleteProject(p.ID)
				}()
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					st := s.Snapshot()
					if st.CurrentProjectID != "" {
						Expect(st.CurrentProject()).NotTo(BeNil())
					}
				}()
			}
			wg.Wait()
		})
	})

	It("runs the end-to-end scenario", func() {
		p := s.CreateProject("Biology 101")
		st := s.Snapshot()
		Expect(st.Projects).To(HaveLen(1))
		Expect(st.Projects[0].Name).To(Equal("Biology 101"))
		Expect(st.Projects[0].Flashcards).To(BeEmpty())
		Expect(st.Projects[0].Quizzes).To(BeEmpty())
		Expect(s.CurrentProject().ID).To(Equal(p.ID))

		cards := []store.Flashcard{flashcard("f1", "q1"), flashcard("f2", "q2")}
		s.UpdateProject(p.ID, store.ProjectUpdate{Flashcards: &cards})
		Expect(s.Projects()[0].Flashcards).To(HaveLen(2))
		Expect(s.CurrentProject().Flashcards).To(HaveLen(2))

		s.DeleteProject(p.ID)
		Expect(s.Projects()).To(BeEmpty())
		Expect(s.CurrentProject()).To(BeNil())
	})
})
