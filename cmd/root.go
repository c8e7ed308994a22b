package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/blitzquiz/internal/config"
	"github.com/abhisek/blitzquiz/internal/logger"
	"github.com/abhisek/blitzquiz/internal/questionbank"
	"github.com/abhisek/blitzquiz/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "blitzquiz",
	Short: "Timed multiple-choice quiz in the terminal",
	Long:  "BlitzQuiz: five questions, thirty seconds each. Answer fast, then see how you did.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

// Execute runs the root command, cancelling its context on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides BLITZQUIZ_CONFIG env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides log.file)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error (overrides log.level)")

	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration and applies flag overrides, which take
// precedence over the file and the environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Log.File = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// quizEnv bundles what every quiz-playing command needs.
type quizEnv struct {
	cfg       config.Config
	log       zerolog.Logger
	questions []quiz.Question
	closer    io.Closer
}

// setup loads config, opens the log sink and checks the question bank.
// Callers must close rt.closer.
func setup(cmd *cobra.Command) (*quizEnv, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	w, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	log := logger.Setup(w, cfg.Log.Level, cfg.Log.Format)

	questions := questionbank.Default()
	if err := questionbank.Validate(questions); err != nil {
		w.Close()
		return nil, fmt.Errorf("question bank: %w", err)
	}

	log.Debug().
		Int("time_limit", cfg.TimeLimitSeconds()).
		Dur("feedback_delay", cfg.Quiz.FeedbackDelay.Std()).
		Str("theme", cfg.UI.Theme).
		Msg("configuration loaded")

	return &quizEnv{cfg: cfg, log: log, questions: questions, closer: w}, nil
}
