package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/adoclint-go/internal/configfile"
	"github.com/eykd/adoclint-go/internal/ruleset"
)

// ErrNoConfigSource is returned when config commands have no source wired.
var ErrNoConfigSource = errors.New("configuration commands are not available")

// ConfigSource locates and loads rules files.
type ConfigSource interface {
	// Resolve returns path, or the nearest default rules file when path is empty.
	Resolve(path string) (string, error)
	Load(path string) (*ruleset.Config, error)
	Schema() string
}

// NewConfigCmd creates the config command group.
func NewConfigCmd(src ConfigSource) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "config",
		Short:        "Inspect and validate rules files",
		SilenceUsage: true,
	}
	cmd.AddCommand(newConfigCheckCmd(src), newConfigSchemaCmd(src))
	return cmd
}

func newConfigCheckCmd(src ConfigSource) *cobra.Command {
	return &cobra.Command{
		Use:          "check [file]",
		Short:        "Validate a rules file against the schema and rule constraints",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if src == nil {
				return ErrNoConfigSource
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			path, err := src.Resolve(path)
			if err != nil {
				return err
			}

			cfg, err := src.Load(path)
			if err != nil {
				var schemaErr *configfile.SchemaError
				if errors.As(err, &schemaErr) {
					for _, is := range schemaErr.Issues {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %s: %s\n", path, is.Field, is.Message)
					}
				}
				return &ContextError{Op: "config check", Path: path, Err: err}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", path, describeConfig(cfg))
			return nil
		},
	}
}

func newConfigSchemaCmd(src ConfigSource) *cobra.Command {
	return &cobra.Command{
		Use:          "schema",
		Short:        "Print the JSON Schema for rules files",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if src == nil {
				return ErrNoConfigSource
			}
			fmt.Fprint(cmd.OutOrStdout(), src.Schema())
			return nil
		},
	}
}

// describeConfig summarizes a loaded rule set in one line.
func describeConfig(cfg *ruleset.Config) string {
	sections, blocks := 0, len(cfg.Document.Blocks)
	var walk func([]*ruleset.SectionRule)
	walk = func(rules []*ruleset.SectionRule) {
		for _, s := range rules {
			sections++
			blocks += len(s.Blocks)
			walk(s.Subsections)
		}
	}
	walk(cfg.Document.Sections)
	return fmt.Sprintf("%d section rule(s), %d block rule(s), %d suppression(s)", sections, blocks, len(cfg.Suppress))
}
