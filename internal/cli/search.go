package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"studyshare/internal/notes"
)

type searchOptions struct {
	Subject string
	Grade   string
	Limit   int
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search notes by title, subject or helper",
		Long: `Search the catalog for notes whose title, subject or helper name
contains the query, ignoring case. With no query every note is listed,
newest first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(rootOpts, opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Subject, "subject", "s", "", "only notes in this subject")
	cmd.Flags().StringVarP(&opts.Grade, "grade", "g", "", "only notes for this grade level")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 50, "maximum number of results")

	return cmd
}

func runSearch(rootOpts *RootOptions, opts *searchOptions, query string, cmd *cobra.Command) error {
	f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

	if opts.Grade != "" && !notes.Grade(opts.Grade).Valid() {
		return fail(f, ErrCodeInvalidArg, ExitCommandError, fmt.Errorf("unknown grade %q", opts.Grade))
	}

	svc, err := openService(rootOpts)
	if err != nil {
		return fail(f, ErrCodeConfig, ExitCommandError, err)
	}

	results := svc.Search(notes.SearchQuery{
		Query:   query,
		Subject: opts.Subject,
		Grade:   notes.Grade(opts.Grade),
		Limit:   opts.Limit,
	})

	return f.Success(results, func(w io.Writer) {
		if len(results) == 0 {
			if query != "" {
				fmt.Fprintf(w, "No notes found matching %q.\n", query)
			} else {
				fmt.Fprintln(w, "No notes have been shared yet.")
			}
			return
		}
		for _, n := range results {
			printNoteLine(w, n)
		}
	})
}

func printNoteLine(w io.Writer, n notes.Note) {
	faint.Fprintf(w, "#%-3d ", n.ID)
	bold.Fprintf(w, "%s %s\n", n.Image, n.Title)
	fmt.Fprintf(w, "     %s · %s ", cyan.Sprint(n.Subject), cyan.Sprint(n.Grade))
	faint.Fprintf(w, "by %s\n", n.Helper)
}

// fail reports err through f and returns an ExitError carrying exit
func fail(f *OutputFormatter, code string, exit int, err error) error {
	if ferr := f.Error(code, err.Error()); ferr != nil {
		return ferr
	}
	return WrapExitError(exit, code, err)
}
