package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallCalc/internal/model"
	"github.com/piwi3910/WallCalc/internal/project"
)

// configCommand creates the application config command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialise application defaults",
	}

	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configPathCommand())

	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := project.LoadAppConfig(c.Paths().Config())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			enc := json.NewEncoder(c.Out)
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		},
	}
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config, catalog and templates files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			paths := c.Paths()

			if _, err := os.Stat(paths.Config()); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite it", paths.Config())
			}

			if err := project.SaveAppConfig(paths.Config(), model.DefaultAppConfig()); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			if force {
				if err := project.SaveCatalog(paths.Catalog(), model.DefaultRollCatalog()); err != nil {
					return fmt.Errorf("save catalog: %w", err)
				}
			} else if _, err := project.LoadCatalog(paths.Catalog()); err != nil {
				return fmt.Errorf("create catalog: %w", err)
			}
			if _, err := os.Stat(paths.Templates()); os.IsNotExist(err) {
				if err := project.SaveTemplates(paths.Templates(), model.NewTemplateStore()); err != nil {
					return fmt.Errorf("save templates: %w", err)
				}
			}

			logger.Debug("initialised data directory", "dir", paths.Dir)
			printSuccess(c.Out, "Initialised %s", paths.Dir)
			printFile(c.Out, paths.Config())
			printFile(c.Out, paths.Catalog())
			printFile(c.Out, paths.Templates())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing config and catalog")
	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.Out, c.Paths().Dir)
			return nil
		},
	}
}
