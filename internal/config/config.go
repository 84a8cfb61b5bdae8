// Package config provides loading of user-level devstart defaults.
package config

// Defaults holds user-level default values applied to any field the user
// did not supply on the command line. Nil pointers mean "not configured";
// built-in defaults apply.
type Defaults struct {
	// Author is the default author name for new projects.
	// Env: DEVSTART_AUTHOR
	Author string `mapstructure:"author"`

	// Python is the default Python version in X.Y form.
	// Env: DEVSTART_PYTHON
	Python string `mapstructure:"python"`

	// Description is the default one-line project description.
	Description string `mapstructure:"description"`

	// Feature flag defaults.
	CI           *bool `mapstructure:"ci"`
	Devcontainer *bool `mapstructure:"devcontainer"`
	Precommit    *bool `mapstructure:"precommit"`
	Docker       *bool `mapstructure:"docker"`
	Diagrams     *bool `mapstructure:"diagrams"`
	Assistant    *bool `mapstructure:"assistant"`
}

// DefaultConfigTemplate is the commented starter file written by
// `devstart config init`.
const DefaultConfigTemplate = `# devstart user defaults.
# Values here apply whenever the matching flag or prompt answer is omitted.

# author: Your Name
# python: "3.13"
# description: A new Python project

# Feature flag defaults (all true when unset):
# ci: true
# devcontainer: true
# precommit: true
# docker: true
# diagrams: true
# assistant: true
`
