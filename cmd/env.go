package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/abhisek/swipemath/internal/config"
	"github.com/abhisek/swipemath/internal/llm"
	"github.com/abhisek/swipemath/internal/logging"
	"github.com/abhisek/swipemath/internal/questions"
	"github.com/abhisek/swipemath/internal/store"
	"github.com/spf13/cobra"
)

// env bundles what every game command needs. Store is nil when the
// command was set up without one.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store

	logCloser io.Closer
}

// setupEnv loads configuration, starts logging and optionally opens the
// store.
func setupEnv(cmd *cobra.Command, withStore bool) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	e := &env{cfg: cfg, logger: logger, logCloser: closer}

	if withStore {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			e.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		e.store = st
	}
	return e, nil
}

func (e *env) Close() {
	if e.store != nil {
		_ = e.store.Close()
	}
	_ = e.logCloser.Close()
}

func (e *env) eventRepo() store.EventRepo {
	if e.store == nil {
		return nil
	}
	return e.store.EventRepo()
}

// source builds the question source and names it. The LLM source is used
// when enabled and a provider is configured; otherwise questions are local.
func (e *env) source(ctx context.Context, seed uint64) (questions.Source, string) {
	if seed == 0 {
		seed = e.cfg.Game.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	local := questions.NewLocalGenerator(seed)
	if !e.cfg.Source.UseLLM {
		return local, "local"
	}

	var recorder llm.Recorder
	if e.store != nil {
		recorder = e.store.EventRepo()
	}
	provider, err := llm.NewProviderFromEnv(ctx, recorder, e.logger)
	if err != nil {
		e.logger.Warn("LLM provider unavailable, using local questions", "error", err)
		return local, "local"
	}
	if provider == nil {
		return local, "local"
	}

	remote := questions.NewLLMSource(provider, questions.DefaultConfig(), e.logger)
	return questions.NewFallbackSource(remote, local,
		questions.WithRemoteTimeout(e.cfg.Source.RemoteTimeout),
		questions.WithFallbackLogger(e.logger),
	), "llm"
}
