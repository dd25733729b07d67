package project_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saulo-duarte/memento/internal/project"
	"github.com/saulo-duarte/memento/internal/store"
)

func strPtr(s string) *string { return &s }

func TestProjectService(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	svc := project.NewService(st)

	t.Run("CreateTrimsAndRejectsBlank", func(t *testing.T) {
		if _, err := svc.Create(ctx, project.CreateProjectDTO{Name: "   "}); !errors.Is(err, project.ErrInvalidName) {
			t.Errorf("esperado ErrInvalidName, obtido %v", err)
		}
		p, err := svc.Create(ctx, project.CreateProjectDTO{Name: "  Genética  "})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if p.Name != "Genética" || p.Status != project.NOT_INITIALIZED {
			t.Errorf("projeto incorreto: %+v", p)
		}
	})

	t.Run("OpenSelectsProject", func(t *testing.T) {
		a, _ := svc.Create(ctx, project.CreateProjectDTO{Name: "A"})
		svc.Create(ctx, project.CreateProjectDTO{Name: "B"})

		ws, err := svc.Open(ctx, a.ID)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if ws.Project.ID != a.ID || st.CurrentProject().ID != a.ID {
			t.Error("projeto aberto deveria ser o atual")
		}

		if _, err := svc.Open(ctx, "missing"); !errors.Is(err, store.ErrProjectNotFound) {
			t.Errorf("esperado ErrProjectNotFound, obtido %v", err)
		}
		if st.CurrentProject().ID != a.ID {
			t.Error("id desconhecido não deveria mudar a seleção")
		}
	})

	t.Run("UpdatePatchesFields", func(t *testing.T) {
		p, _ := svc.Create(ctx, project.CreateProjectDTO{Name: "Física"})

		if _, err := svc.Update(ctx, p.ID, project.UpdateProjectDTO{}); !errors.Is(err, project.ErrEmptyUpdate) {
			t.Errorf("esperado ErrEmptyUpdate, obtido %v", err)
		}
		if _, err := svc.Update(ctx, p.ID, project.UpdateProjectDTO{Name: strPtr(" ")}); !errors.Is(err, project.ErrInvalidName) {
			t.Errorf("esperado ErrInvalidName, obtido %v", err)
		}

		got, err := svc.Update(ctx, p.ID, project.UpdateProjectDTO{Transcription: strPtr("Leis de Newton")})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if got.Name != "Física" || got.Transcription == nil || got.Status != project.IN_PROGRESS {
			t.Errorf("atualização incorreta: %+v", got)
		}
		if got.UpdatedAt.Before(p.UpdatedAt) {
			t.Error("updatedAt não deveria retroceder")
		}
	})

	t.Run("DeleteRequiresConfirmation", func(t *testing.T) {
		p, _ := svc.Create(ctx, project.CreateProjectDTO{Name: "Descartável"})

		if err := svc.Delete(ctx, p.ID, false); !errors.Is(err, project.ErrConfirmationRequired) {
			t.Errorf("esperado ErrConfirmationRequired, obtido %v", err)
		}
		if _, ok := st.Project(p.ID); !ok {
			t.Fatal("projeto não deveria ser removido sem confirmação")
		}
		if err := svc.Delete(ctx, p.ID, true); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if err := svc.Delete(ctx, p.ID, true); !errors.Is(err, store.ErrProjectNotFound) {
			t.Errorf("segunda remoção deveria retornar ErrProjectNotFound, obtido %v", err)
		}
	})

	t.Run("ListFiltersByName", func(t *testing.T) {
		got := svc.List(ctx, "FÍS")
		if len(got) != 1 || got[0].Name != "Física" {
			t.Errorf("filtro incorreto: %+v", got)
		}
	})
}

func TestStatusOf(t *testing.T) {
	score := 80
	completedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	done := store.Quiz{ID: "q1", Score: &score, CompletedAt: &completedAt}
	open := store.Quiz{ID: "q2"}

	cases := []struct {
		name string
		p    store.Project
		want project.ProjectStatus
	}{
		{"Empty", store.Project{}, project.NOT_INITIALIZED},
		{"BlankTranscription", store.Project{Transcription: strPtr("  ")}, project.NOT_INITIALIZED},
		{"AudioOnly", store.Project{AudioFile: strPtr("a.mp3")}, project.IN_PROGRESS},
		{"PendingQuiz", store.Project{Quizzes: []store.Quiz{done, open}}, project.IN_PROGRESS},
		{"AllQuizzesTaken", store.Project{Quizzes: []store.Quiz{done}}, project.COMPLETED},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := project.StatusOf(tc.p); got != tc.want {
				t.Errorf("esperado %s, obtido %s", tc.want, got)
			}
		})
	}
}
