package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/adasgupta/simtutor/internal/app"
	"github.com/adasgupta/simtutor/internal/classify"
	"github.com/adasgupta/simtutor/internal/extract"
	"github.com/adasgupta/simtutor/internal/llm"
	"github.com/adasgupta/simtutor/internal/respond"
	"github.com/adasgupta/simtutor/internal/store"
	"github.com/adasgupta/simtutor/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	manager, st, err := buildManager(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(manager)
}

// buildManager wires the full tutoring pipeline: store, LLM provider,
// classifier, responder, concept extractor, controller, manager.
// The caller owns the returned store and must close it.
func buildManager(cmd *cobra.Command) (*tutor.Manager, *store.Store, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	eventRepo := st.EventRepo()

	provider, err := buildProvider(ctx, eventRepo)
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	controller, err := tutor.NewController(
		classify.New(provider, classify.DefaultConfig()),
		respond.New(provider, respond.DefaultConfig()),
		eventRepo,
		tutor.DefaultConfig(),
	)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("build controller: %w", err)
	}

	manager := tutor.NewManager(controller, extract.New(provider, extract.DefaultConfig()))
	return manager, st, nil
}

// buildProvider resolves LLM configuration from SIMTUTOR_* env vars,
// falling back to probing standard API key variables.
func buildProvider(ctx context.Context, eventRepo store.EventRepo) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Set an API key (GOOGLE_API_KEY, ANTHROPIC_API_KEY, or OPENAI_API_KEY) to enable tutoring.")
			return nil, err
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}
	return provider, nil
}
