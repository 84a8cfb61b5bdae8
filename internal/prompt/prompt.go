// Package prompt collects missing configuration values interactively.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/devstart/cli/internal/output"
	"github.com/devstart/cli/internal/scaffold"
)

// Prompter asks for configuration values over a line-based stream.
// In and Out are injectable so tests can drive the dialogue.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Ask prompts for a text value, returning defaultValue on empty input.
func (p *Prompter) Ask(label, defaultValue string) (string, error) {
	fmt.Fprintf(p.out, "  %s %s: ",
		output.StyleBold.Render(label),
		output.StyleDim.Render("("+defaultValue+")"))

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// Confirm prompts for a yes/no answer, re-asking on invalid input.
func (p *Prompter) Confirm(label string, defaultYes bool) (bool, error) {
	hint := "[Y/n]"
	if !defaultYes {
		hint = "[y/N]"
	}

	for {
		fmt.Fprintf(p.out, "  %s %s: ",
			output.StyleBold.Render(label),
			output.StyleDim.Render(hint))

		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(p.out, "  "+output.FormatCross(
				fmt.Sprintf("%q is not valid, expected y (yes) or n (no)", line)))
		}
	}
}

// Fill prompts for every value of opts that was not already provided and
// returns the completed options. Values present on input are never asked
// again.
func (p *Prompter) Fill(opts scaffold.Options) (scaffold.Options, error) {
	var err error

	if opts.Name == "" {
		if opts.Name, err = p.Ask("Project name", scaffold.DefaultProjectName); err != nil {
			return opts, err
		}
	}
	if opts.Description == "" {
		if opts.Description, err = p.Ask("Project description", scaffold.DefaultDescription); err != nil {
			return opts, err
		}
	}
	if opts.Author == "" {
		if opts.Author, err = p.Ask("Author name", scaffold.DefaultAuthor); err != nil {
			return opts, err
		}
	}
	if opts.PythonVersion == "" {
		if opts.PythonVersion, err = p.Ask("Python version", scaffold.DefaultPythonVersion); err != nil {
			return opts, err
		}
	}

	fmt.Fprintln(p.out)

	flags := []struct {
		label string
		value **bool
	}{
		{"Include GitHub Actions CI?", &opts.CI},
		{"Include devcontainer setup?", &opts.Devcontainer},
		{"Include pre-commit hooks?", &opts.PreCommit},
		{"Include Docker setup?", &opts.Docker},
		{"Include PlantUML diagram templates?", &opts.Diagrams},
		{"Include Continue local AI config?", &opts.Assistant},
	}

	for _, f := range flags {
		if *f.value != nil {
			continue
		}
		answer, err := p.Confirm(f.label, true)
		if err != nil {
			return opts, err
		}
		*f.value = &answer
	}

	return opts, nil
}

// readLine reads one trimmed line, failing if the input stream is closed.
func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", fmt.Errorf("input closed")
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}
