package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/askelan/quizd/internal/api"
	"github.com/askelan/quizd/internal/config"
	"github.com/askelan/quizd/internal/llm"
	"github.com/askelan/quizd/internal/store"
	"github.com/askelan/quizd/internal/trivia"
	"github.com/askelan/quizd/internal/triviagen"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the trivia API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides QUIZD_ADDR env var)")
}

// runServe opens the store, builds the engine, and serves the API until
// interrupted.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// Local .env is optional; real deployments set the environment.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.HTTPAddr = addr
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	bank := trivia.NewStore(cfg.BankSize)
	archived, err := st.QuestionRepo().RecentQuestions(ctx, cfg.BankSize)
	if err != nil {
		return fmt.Errorf("load question archive: %w", err)
	}
	for _, q := range archived {
		bank.Add(q.Question, q.Answer)
	}
	if n := bank.Len(); n > 0 {
		log.Printf("loaded %d archived questions into the bank", n)
	}

	var gen trivia.Generator
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Serving questions from the stored bank only.")
	} else {
		genCfg := triviagen.DefaultConfig()
		genCfg.UseSchema = cfg.GenSchema
		gen = triviagen.New(provider, genCfg)
	}

	engine := trivia.NewEngine(bank, gen, st.QuestionRepo(), cfg.DefaultPlayer)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.New(engine, st.PlayerRepo(), cfg.CORSOrigins),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("quizd listening on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-sigCh:
		log.Printf("received %s, shutting down", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
