package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"studyshare/internal/notes"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "show <id>",
		Short:         "Show the details of one note",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runShow(rootOpts *RootOptions, id string, cmd *cobra.Command) error {
	f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

	svc, err := openService(rootOpts)
	if err != nil {
		return fail(f, ErrCodeConfig, ExitCommandError, err)
	}

	note, err := svc.GetByID(id)
	switch {
	case errors.Is(err, notes.ErrInvalidID):
		return fail(f, ErrCodeInvalidArg, ExitCommandError, err)
	case errors.Is(err, notes.ErrNoteNotFound):
		return fail(f, ErrCodeNotFound, ExitFailure, fmt.Errorf("%w: %s", err, id))
	case err != nil:
		return fail(f, ErrCodeConfig, ExitFailure, err)
	}

	return f.Success(note, func(w io.Writer) {
		bold.Fprintf(w, "%s %s\n", note.Image, note.Title)
		fmt.Fprintf(w, "%s · %s\n\n", cyan.Sprint(note.Subject), cyan.Sprint(note.Grade))
		if note.Description != "" {
			fmt.Fprintf(w, "%s\n\n", note.Description)
		}
		faint.Fprintf(w, "Shared by %s\n", note.Helper)
	})
}
