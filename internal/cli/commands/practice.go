package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/sqlacademy-labs/sqlacademy/internal/fixture"
	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
)

// NewPracticeCommand creates the practice command, an interactive REPL
// against the fixture database.
func NewPracticeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "practice",
		Short: "Open an interactive SQL session against the lesson database",
		Long: `Open a read-only SQL REPL against the fictional store database.

The same sandbox rules as the web playground apply: only SELECT queries
are allowed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cc := NewCommandContext(cmd)
			defer cc.Close()

			if err := cc.OpenFixture(ctx); err != nil {
				return err
			}

			return runPracticeREPL(cmd, cc)
		},
	}
}

func runPracticeREPL(cmd *cobra.Command, cc *CommandContext) error {
	ctx := cmd.Context()

	// History lives next to the progress database.
	historyFile := filepath.Join(filepath.Dir(cc.Cfg.StatePath), "practice_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sql> ",
		HistoryFile:     historyFile,
		AutoComplete:    newTableCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".sair",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "SQLAcademy — ambiente de prática (loja fictícia)")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Digite .help para comandos, .sair para encerrar")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	var multiLineBuffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			multiLineBuffer.Reset()
			rl.SetPrompt("sql> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if handled := handleDotCommand(ctx, cmd, cc, line); handled {
				if line == ".sair" || line == ".quit" || line == ".exit" {
					break
				}
				continue
			}
		}

		// Accumulate multi-line SQL until semicolon
		multiLineBuffer.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			multiLineBuffer.WriteString(" ")
			rl.SetPrompt(" ...> ")
			continue
		}
		rl.SetPrompt("sql> ")

		query := multiLineBuffer.String()
		multiLineBuffer.Reset()

		res, err := cc.Sandbox.Execute(ctx, query)
		if err != nil {
			var qerr *sandbox.QueryError
			if errors.As(err, &qerr) {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Erro: %s\n", qerr.Message)
			} else {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Erro: %v\n", err)
			}
			continue
		}
		if err := renderResult(cmd.OutOrStdout(), res, cc.Cfg.OutputFormat); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Erro: %v\n", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

func handleDotCommand(ctx context.Context, cmd *cobra.Command, cc *CommandContext, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".sair", ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(cmd.OutOrStdout())
		return true

	case ".tables":
		for _, name := range fixture.TableNames {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return true

	case ".schema":
		if err := showSchema(ctx, cmd.OutOrStdout(), cc); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Erro: %v\n", err)
		}
		return true

	case ".clear":
		fmt.Print("\033[H\033[2J")
		return true

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Comando desconhecido: %s (digite .help)\n", command)
		return true
	}
}

func showSchema(ctx context.Context, w io.Writer, cc *CommandContext) error {
	tables, err := cc.Fixture.DescribeSchema(ctx)
	if err != nil {
		return err
	}
	for _, t := range tables {
		_, _ = fmt.Fprintf(w, "%s (%s)\n", t.Name, strings.Join(t.Columns, ", "))
	}
	return nil
}

func printREPLHelp(w io.Writer) {
	help := `
Comandos:
  .help           Mostra esta mensagem
  .tables         Lista as tabelas disponíveis
  .schema         Mostra as colunas de cada tabela
  .clear          Limpa a tela
  .sair / .quit   Encerra a sessão

Dicas:
  - Consultas devem terminar com ponto e vírgula (;)
  - Use as setas para navegar no histórico
  - Tab completa nomes de tabelas
`
	_, _ = fmt.Fprintln(w, help)
}

// newTableCompleter creates a readline completer for the fixture tables.
func newTableCompleter() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(fixture.TableNames)+5)
	for _, name := range fixture.TableNames {
		items = append(items, readline.PcItem(name))
	}
	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".tables"),
		readline.PcItem(".schema"),
		readline.PcItem(".clear"),
		readline.PcItem(".sair"),
	)
	return readline.NewPrefixCompleter(items...)
}
