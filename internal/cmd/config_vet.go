package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/devstart/cli/internal/config"
	"github.com/devstart/cli/internal/output"
	"github.com/devstart/cli/internal/scaffold"
)

// vetDefaults mirrors config.Defaults with yaml tags for strict decoding.
type vetDefaults struct {
	Author       string `yaml:"author"`
	Python       string `yaml:"python"`
	Description  string `yaml:"description"`
	CI           *bool  `yaml:"ci"`
	Devcontainer *bool  `yaml:"devcontainer"`
	Precommit    *bool  `yaml:"precommit"`
	Docker       *bool  `yaml:"docker"`
	Diagrams     *bool  `yaml:"diagrams"`
	Assistant    *bool  `yaml:"assistant"`
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	var fileFlag string

	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate the defaults file",
		Long: `Validate the defaults file: unknown keys are rejected and the
python version, when set, must be in X.Y form.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := fileFlag
			if path == "" {
				var err error
				path, err = config.GetConfigFile()
				if err != nil {
					return fmt.Errorf("determining defaults file path: %w", err)
				}
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			dec := yaml.NewDecoder(bytes.NewReader(raw))
			dec.KnownFields(true)

			var d vetDefaults
			// A fully commented-out file decodes to io.EOF; that is valid.
			if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
				return fmt.Errorf("parsing %s: %w", path, err)
			}

			if d.Python != "" {
				if err := scaffold.ValidatePythonVersion(d.Python); err != nil {
					return err
				}
			}

			output.Println(output.FormatCheckmark(path + " is valid"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Defaults file to validate (defaults to ~/.devstart/config.yaml)")

	return cmd
}
