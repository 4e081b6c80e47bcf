package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eykd/adoclint-go/internal/configfile"
)

// FileCreator creates files for the init command.
type FileCreator interface {
	Exists(path string) bool
	WriteFile(ctx context.Context, path, content string) error
}

// starterRules is the rules file written by init.
const starterRules = `# adoclint rules. Run "adoclint config schema" for the full format.
document:
  blocks:
    - paragraph:
        severity: warn
        lines:
          max: 12
  sections:
    - name: introduction
      level: 1
      title:
        pattern: "^Introduction"
      occurrence:
        min: 1
        max: 1
      allowedBlocks:
        - paragraph:
            name: summary
            severity: warn
            order: 1
            sentence:
              words:
                max: 40
        - image:
            severity: error
            order: 2
            alt:
              required: true
        - listing:
            severity: warn
            language:
              required: true
suppress: []
`

// NewInitCmd creates the init command. The getwd function returns the
// directory where the rules file will be written.
func NewInitCmd(getwd func() (string, error), files FileCreator) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Write a starter " + configfile.DefaultFilename + " in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if files == nil || getwd == nil {
				return fmt.Errorf("init is not available")
			}
			cwd, err := getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}

			path := filepath.Join(cwd, configfile.DefaultFilename)
			if files.Exists(path) && !force {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists (use --force to overwrite)\n", configfile.DefaultFilename)
				return nil
			}

			if err := files.WriteFile(cmd.Context(), path, starterRules); err != nil {
				return &ContextError{Op: "init", Path: path, Err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing rules file")

	return cmd
}
