package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devstart/cli/internal/config"
	"github.com/devstart/cli/internal/output"
	"github.com/devstart/cli/internal/prompt"
	"github.com/devstart/cli/internal/scaffold"
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	var (
		descriptionFlag string
		authorFlag      string
		pythonFlag      string
		dirFlag         string

		ciFlag           bool
		devcontainerFlag bool
		precommitFlag    bool
		dockerFlag       bool
		diagramsFlag     bool
		assistantFlag    bool

		yesFlag bool
	)

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new Python project skeleton",
		Long: `Create a new Python project with dev tooling pre-configured.

The project name must be a valid Python identifier. Pass "." to scaffold
into the current directory; the name is then derived from the directory's
base name.

Values not supplied via flags are asked for interactively, seeded from
~/.devstart/config.yaml when present. With --no-interactive, built-in
defaults apply instead and every feature flag defaults to enabled.

Examples:
  # Create a project, answering prompts for the rest
  devstart new my_app

  # Scaffold into the current (empty) directory
  devstart new .

  # Take all defaults, no Docker setup
  devstart new my_app -y --docker=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := scaffold.Options{
				Description:   descriptionFlag,
				Author:        authorFlag,
				PythonVersion: pythonFlag,
			}

			// Tri-state feature flags: untouched flags stay unset so the
			// defaults file and prompts can still fill them.
			setFlag := func(name string, v bool) *bool {
				if cmd.Flags().Changed(name) {
					return &v
				}
				return nil
			}
			opts.CI = setFlag("ci", ciFlag)
			opts.Devcontainer = setFlag("devcontainer", devcontainerFlag)
			opts.PreCommit = setFlag("precommit", precommitFlag)
			opts.Docker = setFlag("docker", dockerFlag)
			opts.Diagrams = setFlag("diagrams", diagramsFlag)
			opts.Assistant = setFlag("assistant", assistantFlag)

			workDir := dirFlag
			if workDir == "" {
				var err error
				workDir, err = os.Getwd()
				if err != nil {
					return fmt.Errorf("getting working directory: %w", err)
				}
			}

			var rawName string
			if len(args) == 1 {
				rawName = args[0]
			}
			name, useCWD := scaffold.ResolveName(rawName, filepath.Base(workDir))
			opts.Name = name

			defaults, err := config.LoadDefaults("")
			if err != nil {
				output.Warn("ignoring unreadable defaults file", "error", err)
			} else {
				opts = applyUserDefaults(opts, defaults)
			}

			if yesFlag || !output.IsTTY() {
				opts = scaffold.ApplyDefaults(opts)
			} else {
				p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
				opts, err = p.Fill(opts)
				if err != nil {
					return err
				}
			}

			cfg := scaffold.Resolve(opts, useCWD)
			if err := scaffold.Validate(cfg); err != nil {
				return err
			}

			printSummary(cfg)

			gen := scaffold.NewGenerator(scaffold.GenerateOptions{
				Config:  cfg,
				WorkDir: workDir,
			})

			var result *scaffold.Result
			err = output.RunWithSpinner(cmd.Context(), func() error {
				r, genErr := gen.Generate()
				result = r
				return genErr
			}, output.WithTitle("Generating project..."))
			if err != nil {
				if result != nil && len(result.Files) > 0 {
					output.Warn("generation aborted, destination contains a partial project tree",
						"root", result.Root,
						"written", len(result.Files))
				}
				return err
			}

			printResult(cfg, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&descriptionFlag, "description", "d", "", "Project description")
	cmd.Flags().StringVarP(&authorFlag, "author", "a", "", "Author name")
	cmd.Flags().StringVar(&pythonFlag, "python", "", "Python version (X.Y)")
	cmd.Flags().StringVar(&dirFlag, "dir", "", "Parent directory to create the project in (defaults to the current directory)")
	cmd.Flags().BoolVar(&ciFlag, "ci", true, "Include GitHub Actions CI workflow")
	cmd.Flags().BoolVar(&devcontainerFlag, "devcontainer", true, "Include devcontainer setup")
	cmd.Flags().BoolVar(&precommitFlag, "precommit", true, "Include pre-commit hooks config")
	cmd.Flags().BoolVar(&dockerFlag, "docker", true, "Include Docker setup")
	cmd.Flags().BoolVar(&diagramsFlag, "diagrams", true, "Include PlantUML diagram templates")
	cmd.Flags().BoolVar(&assistantFlag, "assistant", true, "Include Continue local AI assistant config")
	cmd.Flags().BoolVarP(&yesFlag, "no-interactive", "y", false, "Use defaults, skip all prompts")

	return cmd
}

// applyUserDefaults fills unset options from the user defaults file.
// Explicit flags always win; built-in defaults apply last.
func applyUserDefaults(opts scaffold.Options, d *config.Defaults) scaffold.Options {
	if opts.Author == "" {
		opts.Author = d.Author
	}
	if opts.PythonVersion == "" {
		opts.PythonVersion = d.Python
	}
	if opts.Description == "" {
		opts.Description = d.Description
	}

	if opts.CI == nil {
		opts.CI = d.CI
	}
	if opts.Devcontainer == nil {
		opts.Devcontainer = d.Devcontainer
	}
	if opts.PreCommit == nil {
		opts.PreCommit = d.Precommit
	}
	if opts.Docker == nil {
		opts.Docker = d.Docker
	}
	if opts.Diagrams == nil {
		opts.Diagrams = d.Diagrams
	}
	if opts.Assistant == nil {
		opts.Assistant = d.Assistant
	}

	return opts
}

// printSummary prints the resolved configuration as a table.
func printSummary(cfg scaffold.Config) {
	t := output.NewTable("Setting", "Value")
	t.Row("Project", output.StyleNoun.Render(cfg.Name))
	t.Row("Description", cfg.Description)
	t.Row("Author", cfg.Author)
	t.Row("Python", cfg.PythonVersion)
	t.Row("CI", output.YesNo(cfg.CI))
	t.Row("Devcontainer", output.YesNo(cfg.Devcontainer))
	t.Row("Pre-commit", output.YesNo(cfg.PreCommit))
	t.Row("Docker", output.YesNo(cfg.Docker))
	t.Row("Diagrams", output.YesNo(cfg.Diagrams))
	t.Row("Assistant", output.YesNo(cfg.Assistant))

	output.Println("")
	output.Println(t.String())
	output.Println("")
}

// printResult prints the generated file tree and next steps.
func printResult(cfg scaffold.Config, result *scaffold.Result) {
	output.Println(output.RenderFileTree(cfg.Name, result.Files))
	output.Println(output.FormatCheckmark(
		fmt.Sprintf("Project %s created successfully", output.StyleNoun.Render(cfg.Name))))

	output.Println("")
	output.Println("Next steps:")
	if !cfg.UseCWD {
		output.Println("  $ cd " + cfg.Name)
	}
	output.Println("  $ make setup")
	output.Println("  $ uv run python -m " + cfg.Name)
}
