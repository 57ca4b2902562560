package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"studyshare/internal/config"
	"studyshare/internal/notes"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	SeedFile   string
	Format     string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the StudyShare CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "studyshare",
		Short: "StudyShare - share knowledge, help each other",
		Long:  "Browse, search and share study notes from the terminal.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "config file (default ./studyshare.yaml)")
	cmd.PersistentFlags().StringVar(&opts.SeedFile, "seed", "", "YAML seed catalog (overrides catalog.seed_file)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewSubjectsCommand(opts))
	cmd.AddCommand(NewTUICommand(opts))
	cmd.AddCommand(NewMCPCommand(opts))

	return cmd
}

// openService builds the catalog service from config and flags. The
// --seed flag wins over the configured seed file.
func openService(opts *RootOptions) (*notes.Service, error) {
	seed := opts.SeedFile
	if seed == "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "load config", err)
		}
		seed = cfg.Catalog.SeedFile
	}

	svc, err := notes.Open(seed)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open catalog", err)
	}
	return svc, nil
}
