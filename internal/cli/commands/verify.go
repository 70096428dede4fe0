package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sqlacademy-labs/sqlacademy/internal/curriculum"
)

// NewVerifyCommand creates the verify command. It executes every lesson's
// canonical solution against the fixture database so content defects are
// caught before learners hit them.
func NewVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Run every lesson's canonical solution against the fixture database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cc := NewCommandContext(cmd)
			defer cc.Close()

			if err := cc.OpenFixture(ctx); err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Lição", "Status", "Linhas", "Erro"})

			failures := 0
			for _, lesson := range curriculum.AllLessons() {
				res, err := cc.Sandbox.Execute(ctx, lesson.Solution)
				if err != nil {
					failures++
					t.AppendRow(table.Row{lesson.ID, "FAIL", "-", err.Error()})
					continue
				}
				status := "ok"
				if len(res.Rows) == 0 {
					// A solution that returns nothing can never be matched.
					failures++
					status = "EMPTY"
				}
				t.AppendRow(table.Row{lesson.ID, status, len(res.Rows), ""})
			}
			t.Render()

			if failures > 0 {
				return fmt.Errorf("%d lesson solution(s) failed verification", failures)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "All %d lesson solutions verified\n", curriculum.LessonCount())
			return nil
		},
	}
}
