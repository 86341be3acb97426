package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallCalc/internal/model"
	"github.com/piwi3910/WallCalc/internal/project"
)

// catalogCommand creates the roll catalog command.
func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage roll presets",
	}

	cmd.AddCommand(c.catalogListCommand())
	cmd.AddCommand(c.catalogAddCommand())
	cmd.AddCommand(c.catalogRemoveCommand())
	cmd.AddCommand(c.catalogImportCommand())
	cmd.AddCommand(c.catalogExportCommand())

	return cmd
}

func (c *CLI) catalogListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roll presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := project.LoadCatalog(c.Paths().Catalog())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			if len(cat.Rolls) == 0 {
				printInfo(c.Out, "Catalog is empty")
				return nil
			}

			printTitle(c.Out, fmt.Sprintf("%d roll presets", len(cat.Rolls)))
			for _, rp := range cat.Rolls {
				line := fmt.Sprintf("%-8s %-24s %5.1f cm x %5.2f m", rp.ID, rp.Name, rp.WidthCm, rp.LengthM)
				if rp.PatternRepeatCm > 0 {
					line += fmt.Sprintf("  repeat %.1f cm", rp.PatternRepeatCm)
				}
				if rp.PricePerRoll > 0 {
					line += fmt.Sprintf("  %.2f", rp.PricePerRoll)
				}
				fmt.Fprintln(c.Out, "  "+StyleValue.Render(line))
			}
			return nil
		},
	}
}

func (c *CLI) catalogAddCommand() *cobra.Command {
	var width, length, repeat, price float64

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a roll preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || length <= 0 {
				return fmt.Errorf("--width and --length must be positive")
			}
			if repeat < 0 || price < 0 {
				return fmt.Errorf("--repeat and --price cannot be negative")
			}

			path := c.Paths().Catalog()
			cat, err := project.LoadCatalog(path)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			if cat.FindByName(args[0]) != nil {
				return fmt.Errorf("a preset named %q already exists", args[0])
			}

			rp := model.NewRollPreset(args[0], width, length, repeat, price)
			cat.Add(rp)
			if err := project.SaveCatalog(path, cat); err != nil {
				return fmt.Errorf("save catalog: %w", err)
			}
			printSuccess(c.Out, "Added %s (%s)", rp.Name, rp.ID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", model.DefaultRollWidthCm, "roll width in cm")
	cmd.Flags().Float64Var(&length, "length", model.DefaultRollLengthM, "roll length in m")
	cmd.Flags().Float64Var(&repeat, "repeat", 0, "pattern repeat in cm")
	cmd.Flags().Float64Var(&price, "price", 0, "price per roll")
	return cmd
}

func (c *CLI) catalogRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME|ID",
		Aliases: []string{"remove"},
		Short:   "Remove a roll preset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.Paths().Catalog()
			cat, err := project.LoadCatalog(path)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			rp := cat.FindByName(args[0])
			if rp == nil {
				rp = cat.FindByID(args[0])
			}
			if rp == nil {
				return fmt.Errorf("roll preset %q not found", args[0])
			}
			name := rp.Name
			cat.Remove(rp.ID)

			if err := project.SaveCatalog(path, cat); err != nil {
				return fmt.Errorf("save catalog: %w", err)
			}
			printSuccess(c.Out, "Removed %s", name)
			return nil
		},
	}
}

func (c *CLI) catalogImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Merge roll presets from a catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.Paths().Catalog()
			cat, err := project.LoadCatalog(path)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			before := len(cat.Rolls)

			merged, err := project.ImportCatalog(args[0], cat)
			if err != nil {
				return fmt.Errorf("import catalog: %w", err)
			}
			if err := project.SaveCatalog(path, merged); err != nil {
				return fmt.Errorf("save catalog: %w", err)
			}
			printSuccess(c.Out, "Imported %d new presets", len(merged.Rolls)-before)
			return nil
		},
	}
}

func (c *CLI) catalogExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the roll catalog to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := project.LoadCatalog(c.Paths().Catalog())
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			if err := project.ExportCatalog(args[0], cat); err != nil {
				return fmt.Errorf("export catalog: %w", err)
			}
			printFile(c.Out, args[0])
			return nil
		},
	}
}
