package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqlacademy-labs/sqlacademy/internal/ui"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the SQLAcademy API server",
		Long: `Start the HTTP API server backing the learning platform frontend.

The server boots the in-memory lesson database, opens the progress store
and serves the curriculum, playground and progress endpoints until
interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cc := NewCommandContext(cmd)
			defer cc.Close()

			if err := cc.OpenFixture(ctx); err != nil {
				return err
			}
			if err := cc.OpenProgress(); err != nil {
				return err
			}

			srv := ui.NewServer(ui.Config{
				Fixture:       cc.Fixture,
				Sandbox:       cc.Sandbox,
				Progress:      cc.Progress,
				Port:          cc.Cfg.Port,
				SessionSecret: cc.Cfg.SessionSecret,
				Logger:        cc.Logger,
			})
			return srv.Serve(ctx)
		},
	}
}
