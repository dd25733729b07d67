package container

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/memento/internal/auth"
	"github.com/saulo-duarte/memento/internal/chat"
	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/dashboard"
	"github.com/saulo-duarte/memento/internal/flashcard"
	"github.com/saulo-duarte/memento/internal/generation"
	"github.com/saulo-duarte/memento/internal/persist"
	"github.com/saulo-duarte/memento/internal/project"
	"github.com/saulo-duarte/memento/internal/quiz"
	"github.com/saulo-duarte/memento/internal/router"
	"github.com/saulo-duarte/memento/internal/store"
	"github.com/saulo-duarte/memento/internal/ui"
	"github.com/saulo-duarte/memento/internal/user"
)

type Container struct {
	Config *config.Config
	Store  *store.Store
	Syncer *persist.Syncer

	ProjectContainer    *project.Container
	FlashcardContainer  *flashcard.Container
	QuizContainer       *quiz.QuizContainer
	GenerationContainer *generation.GenerationContainer
	DashboardContainer  *dashboard.DashboardContainer
}

// New opens the configured storage slot, restores the last saved state and
// starts persisting every change.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	config.InitLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	config.InitCrypto()

	slot, err := persist.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	st := store.New(store.WithLogger(config.Log.WithField("component", "store")))
	syncer := persist.NewSyncer(slot, cfg.Storage.Key)
	if _, err := syncer.Load(ctx, st); err != nil {
		_ = slot.Close()
		return nil, fmt.Errorf("load state: %w", err)
	}
	syncer.Attach(st)

	projectContainer := project.NewContainer(st)
	generationContainer := generation.NewGenerationContainer(st, generation.Delays{
		Transcription: cfg.Content.TranscriptionDelay,
		Reply:         cfg.Content.ReplyDelay,
	})

	return &Container{
		Config:              cfg,
		Store:               st,
		Syncer:              syncer,
		ProjectContainer:    projectContainer,
		FlashcardContainer:  flashcard.NewContainer(st),
		QuizContainer:       quiz.NewQuizContainer(st),
		GenerationContainer: generationContainer,
		DashboardContainer:  dashboard.NewDashboardContainer(st, projectContainer.Service),
	}, nil
}

// Router builds the HTTP API. The signing secret is only required here.
func (c *Container) Router() *chi.Mux {
	auth.Init(c.Config.Auth.JWTSecret)
	authHandler := auth.NewHandler(c.Store, c.Config.Auth.SessionTTL, c.Config.IsProduction())

	return router.New(router.RouterConfig{
		AllowedOrigins:    c.Config.HTTP.AllowedOrigins,
		Session:           c.Store,
		AuthHandler:       authHandler,
		UserHandler:       user.NewHandler(c.Store, authHandler),
		ProjectHandler:    c.ProjectContainer.Handler,
		FlashcardHandler:  c.FlashcardContainer.Handler,
		QuizHandler:       c.QuizContainer.Handler,
		GenerationHandler: c.GenerationContainer.Handler,
		ChatHandler:       chat.NewHandler(c.Store, c.GenerationContainer.Service),
		UIHandler:         ui.NewHandler(c.Store),
		DashboardHandler:  c.DashboardContainer.Handler,
	})
}

// Close waits for scheduled generation work and flushes the last state.
func (c *Container) Close(ctx context.Context) error {
	c.GenerationContainer.Service.Wait()
	return c.Syncer.Close(ctx)
}
