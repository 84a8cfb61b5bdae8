package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devstart/cli/internal/scaffold"
	"github.com/devstart/cli/internal/testutil"
)

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestAsk(t *testing.T) {
	t.Run("answer given", func(t *testing.T) {
		p, _ := newPrompter("my_app\n")
		got, err := p.Ask("Project name", "my_project")
		require.NoError(t, err)
		assert.Equal(t, "my_app", got)
	})

	t.Run("empty input takes default", func(t *testing.T) {
		p, _ := newPrompter("\n")
		got, err := p.Ask("Project name", "my_project")
		require.NoError(t, err)
		assert.Equal(t, "my_project", got)
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		p, _ := newPrompter("  my_app  \n")
		got, err := p.Ask("Project name", "my_project")
		require.NoError(t, err)
		assert.Equal(t, "my_app", got)
	})

	t.Run("closed input", func(t *testing.T) {
		p, _ := newPrompter("")
		_, err := p.Ask("Project name", "my_project")
		assert.Error(t, err)
	})
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", true, true},
		{"yes long", "yes\n", false, true},
		{"no", "n\n", true, false},
		{"no long", "no\n", true, false},
		{"uppercase", "Y\n", false, true},
		{"empty takes default yes", "\n", true, true},
		{"empty takes default no", "\n", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newPrompter(tt.input)
			got, err := p.Confirm("Include Docker setup?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid input re-asks", func(t *testing.T) {
		p, out := newPrompter("maybe\ny\n")
		got, err := p.Confirm("Include Docker setup?", false)
		require.NoError(t, err)
		assert.True(t, got)
		assert.Contains(t, out.String(), "maybe")
	})
}

func TestFill(t *testing.T) {
	t.Run("prompts for everything when empty", func(t *testing.T) {
		// Four text answers, then six flag confirmations.
		p, _ := newPrompter("my_app\nA thing\nJane\n3.12\ny\nn\ny\nn\ny\nn\n")

		got, err := p.Fill(scaffold.Options{})
		require.NoError(t, err)

		assert.Equal(t, "my_app", got.Name)
		assert.Equal(t, "A thing", got.Description)
		assert.Equal(t, "Jane", got.Author)
		assert.Equal(t, "3.12", got.PythonVersion)

		require.NotNil(t, got.CI)
		assert.True(t, *got.CI)
		require.NotNil(t, got.Devcontainer)
		assert.False(t, *got.Devcontainer)
		require.NotNil(t, got.PreCommit)
		assert.True(t, *got.PreCommit)
		require.NotNil(t, got.Docker)
		assert.False(t, *got.Docker)
		require.NotNil(t, got.Diagrams)
		assert.True(t, *got.Diagrams)
		require.NotNil(t, got.Assistant)
		assert.False(t, *got.Assistant)
	})

	t.Run("provided values are not asked again", func(t *testing.T) {
		// Only description, python, and the two unset flags are prompted.
		p, out := newPrompter("\n\ny\nn\n")

		opts := scaffold.Options{
			Name:         "my_app",
			Author:       "Jane",
			CI:           testutil.BoolPtr(true),
			Devcontainer: testutil.BoolPtr(false),
			PreCommit:    testutil.BoolPtr(true),
			Docker:       testutil.BoolPtr(false),
		}

		got, err := p.Fill(opts)
		require.NoError(t, err)

		assert.Equal(t, "my_app", got.Name)
		assert.Equal(t, scaffold.DefaultDescription, got.Description)
		assert.Equal(t, scaffold.DefaultPythonVersion, got.PythonVersion)
		require.NotNil(t, got.Diagrams)
		assert.True(t, *got.Diagrams)
		require.NotNil(t, got.Assistant)
		assert.False(t, *got.Assistant)

		assert.NotContains(t, out.String(), "Project name")
		assert.NotContains(t, out.String(), "Author name")
		assert.NotContains(t, out.String(), "Docker")
	})

	t.Run("input closed mid-dialogue", func(t *testing.T) {
		p, _ := newPrompter("my_app\n")
		_, err := p.Fill(scaffold.Options{})
		assert.Error(t, err)
	})

	t.Run("empty answers take defaults", func(t *testing.T) {
		p, _ := newPrompter("\n\n\n\n\n\n\n\n\n\n")

		got, err := p.Fill(scaffold.Options{})
		require.NoError(t, err)

		assert.Equal(t, scaffold.DefaultProjectName, got.Name)
		assert.Equal(t, scaffold.DefaultAuthor, got.Author)
		require.NotNil(t, got.Docker)
		assert.True(t, *got.Docker)
	})
}
