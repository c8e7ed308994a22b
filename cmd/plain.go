package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/abhisek/blitzquiz/internal/plain"
)

var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Play in line mode without the full-screen UI",
	Long: `Play the quiz as plain text lines on stdin/stdout.

Type 1-4 to choose an option and an empty line to submit it. Each question
still runs against the clock. At the end, answer y to play again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.closer.Close()
		return runPlainMode(cmd, rt)
	},
}

func runPlainMode(cmd *cobra.Command, rt *quizEnv) error {
	r, err := plain.New(cmd.InOrStdin(), cmd.OutOrStdout(), rt.questions, plain.Options{
		TimeLimit:     rt.cfg.TimeLimitSeconds(),
		FeedbackDelay: rt.cfg.Quiz.FeedbackDelay.Std(),
		Logger:        rt.log,
	})
	if err != nil {
		return err
	}
	if err := r.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
