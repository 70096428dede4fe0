package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sqlacademy-labs/sqlacademy/internal/curriculum"
)

// NewProgressCommand creates the progress command.
func NewProgressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show XP, level, streak and achievements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			defer cc.Close()

			if err := cc.OpenProgress(); err != nil {
				return err
			}
			summary := cc.Progress.Summarize(cc.Cfg.LearnerID)

			if cc.Cfg.OutputFormat == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Nível %d — %s\n", summary.Level, summary.LevelTitle)
			_, _ = fmt.Fprintf(w, "XP: %d (%.0f%% para o próximo nível, faltam %d XP)\n",
				summary.XP, summary.ProgressToNextLevel, summary.NextLevelXP-summary.XP)
			_, _ = fmt.Fprintf(w, "Sequência: %d dia(s)\n", summary.Streak)
			_, _ = fmt.Fprintf(w, "Lições concluídas: %d de %d\n\n",
				len(summary.CompletedLessons), curriculum.LessonCount())

			t := table.NewWriter()
			t.SetOutputMirror(w)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Conquista", "Descrição", "Desbloqueada"})
			for _, a := range summary.Achievements {
				unlocked := ""
				if a.Unlocked {
					unlocked = "✓"
					if a.UnlockedAt != nil {
						unlocked = a.UnlockedAt.Format("2006-01-02")
					}
				}
				t.AppendRow(table.Row{fmt.Sprintf("%s %s", a.Icon, a.Title), a.Description, unlocked})
			}
			t.Render()
			return nil
		},
	}
}
