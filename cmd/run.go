package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/blitzquiz/internal/app"
)

// runApp launches the TUI, or line mode when stdout is not a terminal.
func runApp(cmd *cobra.Command) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.closer.Close()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		rt.log.Info().Msg("stdout is not a terminal, using plain mode")
		return runPlainMode(cmd, rt)
	}

	return app.Run(app.Options{
		Questions: rt.questions,
		Config:    rt.cfg,
		Logger:    rt.log,
	})
}
