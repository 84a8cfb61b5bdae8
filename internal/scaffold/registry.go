package scaffold

import "strings"

// namePlaceholder marks the spot in a registry path where the project
// package name is substituted.
const namePlaceholder = "{name}"

// FileSpec pairs a root-relative output path with the embedded template
// that produces it. Paths use forward slashes; the generator converts them
// for the host filesystem when writing.
type FileSpec struct {
	Path     string
	Template string
}

// FileGroup is a fixed list of files emitted together under one condition.
// A nil Flag means the group is always emitted.
type FileGroup struct {
	// Name identifies the group in logs.
	Name string

	// Flag selects the gating feature flag, nil for unconditional groups.
	Flag func(Config) bool

	// Files are emitted in order when the group is selected.
	Files []FileSpec
}

// fileGroups is the declarative generation table. Groups are iterated in
// this exact order; within a group, files are written in listed order.
var fileGroups = []FileGroup{
	{
		Name: "source",
		Files: []FileSpec{
			{Path: "src/{name}/__init__.py", Template: "base/init.py.tmpl"},
			{Path: "src/{name}/__main__.py", Template: "base/main_module.py.tmpl"},
			{Path: "src/{name}/main.py", Template: "base/main.py.tmpl"},
		},
	},
	{
		Name: "tests",
		Files: []FileSpec{
			{Path: "tests/__init__.py", Template: "base/tests_init.py.tmpl"},
			{Path: "tests/conftest.py", Template: "base/conftest.py.tmpl"},
			{Path: "tests/test_main.py", Template: "base/test_main.py.tmpl"},
		},
	},
	{
		Name: "root",
		Files: []FileSpec{
			{Path: "pyproject.toml", Template: "base/pyproject.toml.tmpl"},
			{Path: "README.md", Template: "base/README.md.tmpl"},
			{Path: ".gitignore", Template: "base/gitignore.tmpl"},
			{Path: "Makefile", Template: "base/Makefile.tmpl"},
			{Path: ".env", Template: "base/env.tmpl"},
		},
	},
	{
		Name: "vscode",
		Files: []FileSpec{
			{Path: ".vscode/launch.json", Template: "base/vscode_launch.json.tmpl"},
			{Path: ".vscode/settings.json", Template: "base/vscode_settings.json.tmpl"},
		},
	},
	{
		Name: "assistant",
		Flag: func(c Config) bool { return c.Assistant },
		Files: []FileSpec{
			{Path: ".continue/config.yaml", Template: "assistant/continue_config.yaml.tmpl"},
		},
	},
	{
		Name: "docker",
		Flag: func(c Config) bool { return c.Docker },
		Files: []FileSpec{
			{Path: "docker/Dockerfile", Template: "docker/Dockerfile.tmpl"},
			{Path: "docker/docker-compose.yml", Template: "docker/docker-compose.yml.tmpl"},
			{Path: ".dockerignore", Template: "docker/dockerignore.tmpl"},
		},
	},
	{
		Name: "ci",
		Flag: func(c Config) bool { return c.CI },
		Files: []FileSpec{
			{Path: ".github/workflows/ci.yml", Template: "ci/ci.yml.tmpl"},
		},
	},
	{
		Name: "devcontainer",
		Flag: func(c Config) bool { return c.Devcontainer },
		Files: []FileSpec{
			{Path: ".devcontainer/devcontainer.json", Template: "devcontainer/devcontainer.json.tmpl"},
		},
	},
	{
		Name: "precommit",
		Flag: func(c Config) bool { return c.PreCommit },
		Files: []FileSpec{
			{Path: ".pre-commit-config.yaml", Template: "precommit/pre-commit-config.yaml.tmpl"},
		},
	},
	{
		Name: "diagrams",
		Flag: func(c Config) bool { return c.Diagrams },
		Files: []FileSpec{
			{Path: "docs/diagrams/class_diagram.puml", Template: "diagrams/class_diagram.puml.tmpl"},
		},
	},
}

// Groups returns the generation table. The returned slice is shared; callers
// must not modify it.
func Groups() []FileGroup {
	return fileGroups
}

// Plan computes the ordered list of files a generation run will produce for
// cfg: every unconditional group plus each group whose gating flag is set,
// with the project name substituted into paths.
func Plan(cfg Config) []FileSpec {
	var plan []FileSpec
	for _, g := range fileGroups {
		if g.Flag != nil && !g.Flag(cfg) {
			continue
		}
		for _, f := range g.Files {
			plan = append(plan, FileSpec{
				Path:     strings.ReplaceAll(f.Path, namePlaceholder, cfg.Name),
				Template: f.Template,
			})
		}
	}
	return plan
}
