package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewSubjectsCommand creates the subjects command.
func NewSubjectsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "subjects",
		Short:         "List subjects with their note counts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			svc, err := openService(rootOpts)
			if err != nil {
				return fail(f, ErrCodeConfig, ExitCommandError, err)
			}

			subjects := svc.Subjects()
			return f.Success(subjects, func(w io.Writer) {
				for _, s := range subjects {
					fmt.Fprintf(w, "%-20s %s\n", bold.Sprint(s.Name), faint.Sprintf("%d", s.Count))
				}
			})
		},
	}
	return cmd
}
