package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/project-manager/internal/config"
	"github.com/ytget/project-manager/internal/form"
	"github.com/ytget/project-manager/internal/model"
	"github.com/ytget/project-manager/internal/projects"
)

type connectFunc func(cmd *cobra.Command) (*session, error)

// fieldFlags holds the editable record fields given on the command line
type fieldFlags struct {
	name        string
	description string
	progress    string
	dueDate     string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "project name")
	cmd.Flags().StringVar(&f.description, "description", "", "project description")
	cmd.Flags().StringVar(&f.progress, "progress", "", "progress in percent, 0-100")
	cmd.Flags().StringVar(&f.dueDate, "due", "", "due date, free text")
}

// apply overwrites the fields of in whose flags were set
func (f *fieldFlags) apply(cmd *cobra.Command, in form.Input) form.Input {
	if cmd.Flags().Changed("name") {
		in.Name = f.name
	}
	if cmd.Flags().Changed("description") {
		in.Description = f.description
	}
	if cmd.Flags().Changed("progress") {
		in.Progress = f.progress
	}
	if cmd.Flags().Changed("due") {
		in.DueDate = f.dueDate
	}
	return in
}

func newListCmd(connect connectFunc) *cobra.Command {
	var (
		sortByName bool
		term       string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the project table",
		Long: `Print every project in the table.

Examples:
  # All projects in table order
  projectctl list

  # Sorted by name
  projectctl list --sort

  # Projects whose name or description contains a word
  projectctl list --search website`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if sortByName {
				s.ctrl.Sort()
			}

			view := s.ctrl.Current()
			if v, ok := s.ctrl.Search(term); ok {
				view = v
			}

			if asJSON {
				return printJSON(cmd, view, s.ctrl)
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&sortByName, "sort", false, "sort by name")
	cmd.Flags().StringVar(&term, "search", "", "show only projects containing this word")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print records as JSON")
	return cmd
}

func newAddCmd(connect connectFunc) *cobra.Command {
	fields := &fieldFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		Long: `Add a project with a freshly generated ID.

Examples:
  projectctl add --name Website --description "Company site" --progress 10 --due 2024-06-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := form.New(nil)
			outcome, err := f.Save(fields.apply(cmd, f.InitialInput()))
			if err != nil {
				return err
			}

			s, err := connect(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.ctrl.Add(s.ctx, outcome); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.ID())
			return nil
		},
	}

	fields.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func newEditCmd(connect connectFunc) *cobra.Command {
	fields := &fieldFlags{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a project",
		Long: `Change fields of an existing project. Fields without a flag keep their
current value.

Examples:
  projectctl edit 3f1c... --progress 80`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			p, err := s.ctrl.RequireSelection(args[0])
			if err != nil {
				return err
			}

			f := form.New(&p)
			outcome, err := f.Save(fields.apply(cmd, f.InitialInput()))
			if err != nil {
				return err
			}
			if err := s.ctrl.Edit(s.ctx, p.ID, outcome); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.ctrl.Current().String())
			return nil
		},
	}

	fields.register(cmd)
	return cmd
}

func newDeleteCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.ctrl.Delete(s.ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.ctrl.Current().String())
			return nil
		},
	}
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, written, err := config.WriteDefault(opts.configPath)
			if err != nil {
				return err
			}
			if !written {
				fmt.Fprintf(cmd.OutOrStdout(), "Config already exists: %s\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			data, err := config.Marshal(*cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	return configCmd
}

// printJSON writes the records shown in view, in view order
func printJSON(cmd *cobra.Command, view projects.View, m projects.Manager) error {
	records := make([]model.Project, 0, len(view.Rows))
	for _, r := range view.Rows {
		if p, ok := m.Get(r.ID); ok {
			records = append(records, p)
		}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
