package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"studyshare/internal/tui"
)

// NewTUICommand creates the interactive terminal UI command.
func NewTUICommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tui",
		Short:         "Browse and share notes interactively",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout may carry the program's own output, so failures go to stderr
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.ErrOrStderr()}
			svc, err := openService(rootOpts)
			if err != nil {
				return fail(f, ErrCodeConfig, ExitCommandError, err)
			}

			p := tea.NewProgram(tui.New(svc),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
	return cmd
}
