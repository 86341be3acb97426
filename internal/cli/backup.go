package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallCalc/internal/project"
)

// backupCommand creates the backup command.
func (c *CLI) backupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore config, catalog and templates",
	}

	cmd.AddCommand(c.backupExportCommand())
	cmd.AddCommand(c.backupImportCommand())

	return cmd
}

func (c *CLI) backupExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write all data to a single backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := c.Paths()

			cfg, err := project.LoadAppConfig(paths.Config())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cat, err := project.LoadCatalog(paths.Catalog())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			templates, err := project.LoadTemplates(paths.Templates())
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}

			if err := project.ExportAllData(args[0], cfg, cat, templates); err != nil {
				return err
			}
			printSuccess(c.Out, "Backed up %d presets and %d templates", len(cat.Rolls), len(templates.Templates))
			printFile(c.Out, args[0])
			return nil
		},
	}
}

func (c *CLI) backupImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Restore data from a backup file",
		Long:  "Restore data from a backup file. Config and templates are replaced; roll presets are merged into the existing catalog.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			logger.Debug("read backup", "version", backup.Version, "created_at", backup.CreatedAt)

			if err := project.RestoreBackup(c.Paths(), backup); err != nil {
				return err
			}
			printSuccess(c.Out, "Restored backup from %s", backup.CreatedAt)
			return nil
		},
	}
}
