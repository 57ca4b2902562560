package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpserver "studyshare/internal/mcp"
)

// NewMCPCommand creates the command serving the MCP tools over stdio.
func NewMCPCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the note catalog as MCP tools over stdio",
		Long: `Run an MCP server on stdin/stdout exposing list_subjects, search_notes,
get_note, get_recent_notes and share_note. Shared notes live only as
long as the process.`,
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
			return server.ServeStdio(mcpserver.NewServer(svc))
		},
	}
	return cmd
}
