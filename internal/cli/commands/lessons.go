package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sqlacademy-labs/sqlacademy/internal/curriculum"
)

// NewLessonsCommand creates the lessons command.
func NewLessonsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lessons",
		Short: "List modules and lessons with completion state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			defer cc.Close()

			if err := cc.OpenProgress(); err != nil {
				return err
			}
			completed := cc.Progress.CompletedSet(cc.Cfg.LearnerID)

			if cc.Cfg.OutputFormat == "json" {
				return renderLessonsJSON(cmd, completed)
			}

			w := cmd.OutOrStdout()
			for i, m := range curriculum.Modules() {
				unlocked := curriculum.IsModuleUnlocked(i, completed)
				status := ""
				if !unlocked {
					status = " [bloqueado]"
				}
				_, _ = fmt.Fprintf(w, "%s — %s (%s, %d%%)%s\n",
					m.Title, m.Description, m.Level,
					curriculum.ModuleProgress(m.ID, completed), status)

				t := table.NewWriter()
				t.SetOutputMirror(w)
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"#", "Lição", "Concluída"})
				for _, l := range m.Lessons {
					done := ""
					if completed[l.ID] {
						done = "✓"
					}
					t.AppendRow(table.Row{l.Order, l.Title, done})
				}
				t.Render()
				_, _ = fmt.Fprintln(w)
			}
			return nil
		},
	}
}

func renderLessonsJSON(cmd *cobra.Command, completed map[string]bool) error {
	type lessonOut struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}
	type moduleOut struct {
		ID       string      `json:"id"`
		Title    string      `json:"title"`
		Level    string      `json:"level"`
		Locked   bool        `json:"locked"`
		Progress int         `json:"progress"`
		Lessons  []lessonOut `json:"lessons"`
	}

	var out []moduleOut
	for i, m := range curriculum.Modules() {
		mo := moduleOut{
			ID:       m.ID,
			Title:    m.Title,
			Level:    string(m.Level),
			Locked:   !curriculum.IsModuleUnlocked(i, completed),
			Progress: curriculum.ModuleProgress(m.ID, completed),
		}
		for _, l := range m.Lessons {
			mo.Lessons = append(mo.Lessons, lessonOut{ID: l.ID, Title: l.Title, Completed: completed[l.ID]})
		}
		out = append(out, mo)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
