package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/devstart/cli/internal/output"
)

// vcsMetadataDir is the only entry allowed in the current directory when
// scaffolding in place.
const vcsMetadataDir = ".git"

// Generator plans and executes the write of a project tree.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate writes the full project tree for the configured project and
// returns the destination root with the ordered list of files created.
//
// The destination pre-condition check and the writes are not atomic against
// concurrent filesystem modification, and a mid-run failure leaves the
// files written so far in place. Both are accepted limitations for an
// interactive tool; callers report the partial tree to the user.
func (g *Generator) Generate() (*Result, error) {
	cfg := g.opts.Config

	workDir := g.opts.WorkDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
	}

	root, err := resolveRoot(cfg, workDir)
	if err != nil {
		return nil, err
	}

	output.Debug("generating project",
		"name", cfg.Name,
		"root", root,
		"in_place", cfg.UseCWD)

	renderer := NewRenderer(NewContext(cfg))
	result := &Result{Root: root}

	for _, f := range Plan(cfg) {
		content, err := renderer.Render(f.Template)
		if err != nil {
			return result, err
		}

		target := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return result, fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return result, fmt.Errorf("writing %s: %w", f.Path, err)
		}

		output.Debug("created file", "path", f.Path)
		result.Files = append(result.Files, f.Path)
	}

	return result, nil
}

// resolveRoot determines the destination root and enforces its
// pre-condition before anything is written.
func resolveRoot(cfg Config, workDir string) (string, error) {
	if cfg.UseCWD {
		entries, err := os.ReadDir(workDir)
		if err != nil {
			return "", fmt.Errorf("reading current directory: %w", err)
		}
		for _, e := range entries {
			if e.Name() != vcsMetadataDir {
				return "", &DetailError{
					Type:     "destination not empty",
					Message:  fmt.Sprintf("current directory %q is not empty", workDir),
					Location: workDir,
					Hint:     "Use '.' only in an empty directory.",
					Cause:    ErrDestinationNotEmpty,
				}
			}
		}
		return workDir, nil
	}

	root := filepath.Join(workDir, cfg.Name)
	if _, err := os.Stat(root); err == nil {
		return "", &DetailError{
			Type:     "destination exists",
			Message:  fmt.Sprintf("directory %q already exists", cfg.Name),
			Location: root,
			Hint:     "Remove it or choose a different name.",
			Cause:    ErrDestinationExists,
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking destination %s: %w", root, err)
	}

	return root, nil
}
