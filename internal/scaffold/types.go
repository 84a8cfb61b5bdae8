// Package scaffold generates Python project skeletons from embedded templates.
package scaffold

// Options carries a possibly-incomplete project configuration as collected
// from flags, the user defaults file, or interactive prompts. Nil pointers
// and empty strings mean "not provided yet".
type Options struct {
	// Name is the project name, or "." to scaffold into the current directory.
	Name string

	// Description is a one-line project description.
	Description string

	// Author is the author name embedded in pyproject.toml.
	Author string

	// PythonVersion is the target Python version in X.Y form.
	PythonVersion string

	// CI includes a GitHub Actions workflow.
	CI *bool

	// Devcontainer includes a devcontainer descriptor.
	Devcontainer *bool

	// PreCommit includes a pre-commit hooks configuration.
	PreCommit *bool

	// Docker includes Dockerfile, compose file, and .dockerignore.
	Docker *bool

	// Diagrams includes a PlantUML diagram template.
	Diagrams *bool

	// Assistant includes a Continue local AI assistant config.
	Assistant *bool
}

// Config is a fully resolved project configuration. All fields are final
// once Validate has passed; the generator never mutates it.
type Config struct {
	Name          string
	Description   string
	Author        string
	PythonVersion string

	CI           bool
	Devcontainer bool
	PreCommit    bool
	Docker       bool
	Diagrams     bool
	Assistant    bool

	// UseCWD scaffolds into the current working directory instead of
	// creating a new subdirectory. Set when the name argument was ".".
	UseCWD bool
}

// Context holds the values available to every template render of a run.
// Description and Author are pre-escaped for embedding in TOML basic
// strings. Built once per run and read-only afterwards.
type Context struct {
	ProjectName   string
	Description   string
	Author        string
	PythonVersion string

	CI           bool
	Devcontainer bool
	PreCommit    bool
	Docker       bool
	Diagrams     bool
	Assistant    bool
}

// NewContext builds the template context from a resolved configuration.
func NewContext(cfg Config) Context {
	return Context{
		ProjectName:   cfg.Name,
		Description:   EscapeTOMLString(cfg.Description),
		Author:        EscapeTOMLString(cfg.Author),
		PythonVersion: cfg.PythonVersion,
		CI:            cfg.CI,
		Devcontainer:  cfg.Devcontainer,
		PreCommit:     cfg.PreCommit,
		Docker:        cfg.Docker,
		Diagrams:      cfg.Diagrams,
		Assistant:     cfg.Assistant,
	}
}

// GenerateOptions configures a generation run.
type GenerateOptions struct {
	// Config is the resolved and validated project configuration.
	Config Config

	// WorkDir is the directory the destination root is resolved against.
	// Defaults to the current working directory.
	WorkDir string
}

// Result contains the outcome of a generation run.
type Result struct {
	// Root is the absolute path of the destination root.
	Root string

	// Files lists the root-relative paths of every file written, in
	// emission order. Each entry is appended only after its write
	// succeeded, so on failure the list reflects what is on disk.
	Files []string
}
