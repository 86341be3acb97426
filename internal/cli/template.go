package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/WallCalc/internal/model"
	"github.com/piwi3910/WallCalc/internal/project"
)

// templateCommand creates the room template command.
func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Save and reuse room setups",
	}

	cmd.AddCommand(c.templateListCommand())
	cmd.AddCommand(c.templateSaveCommand())
	cmd.AddCommand(c.templateRemoveCommand())

	return cmd
}

func (c *CLI) templateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List room templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(c.Paths().Templates())
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}
			if len(store.Templates) == 0 {
				printInfo(c.Out, "No templates saved")
				return nil
			}

			printTitle(c.Out, fmt.Sprintf("%d room templates", len(store.Templates)))
			for _, t := range store.Templates {
				fmt.Fprintln(c.Out, "  "+StyleValue.Render(fmt.Sprintf("%-8s %s", t.ID, t.Name)))
				printDetail(c.Out, "%.2f m x %.2f m, %d windows, %d doors, roll %.1f cm x %.2f m",
					t.Room.PerimeterM, t.Room.HeightM, len(t.Windows), len(t.Doors), t.Roll.WidthCm, t.Roll.LengthM)
				if t.Description != "" {
					printDetail(c.Out, "%s", t.Description)
				}
			}
			return nil
		},
	}
}

func (c *CLI) templateSaveCommand() *cobra.Command {
	var from, description string
	var replace bool

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save a project file as a room template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.LoadProject(from)
			if err != nil {
				return err
			}

			path := c.Paths().Templates()
			store, err := project.LoadTemplates(path)
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}
			if existing := store.FindByName(args[0]); existing != nil {
				if !replace {
					return fmt.Errorf("template %q already exists, use --replace to overwrite it", args[0])
				}
				store.Remove(existing.ID)
			}

			t := model.NewRoomTemplate(args[0], description, p)
			store.Add(t)
			if err := project.SaveTemplates(path, store); err != nil {
				return fmt.Errorf("save templates: %w", err)
			}
			printSuccess(c.Out, "Saved template %s (%s)", t.Name, t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "project", "", "project file to capture")
	cmd.Flags().StringVar(&description, "description", "", "template description")
	cmd.Flags().BoolVar(&replace, "replace", false, "overwrite a template with the same name")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func (c *CLI) templateRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME|ID",
		Aliases: []string{"remove"},
		Short:   "Remove a room template",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.Paths().Templates()
			store, err := project.LoadTemplates(path)
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}

			t := store.FindByName(args[0])
			if t == nil {
				t = store.FindByID(args[0])
			}
			if t == nil {
				return fmt.Errorf("template %q not found", args[0])
			}
			name := t.Name
			store.Remove(t.ID)

			if err := project.SaveTemplates(path, store); err != nil {
				return fmt.Errorf("save templates: %w", err)
			}
			printSuccess(c.Out, "Removed template %s", name)
			return nil
		},
	}
}
