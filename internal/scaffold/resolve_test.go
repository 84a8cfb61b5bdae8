package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveName(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		dirname    string
		wantName   string
		wantUseCWD bool
	}{
		{"passthrough", "my_app", "whatever", "my_app", false},
		{"dot uses dirname", ".", "myproject", "myproject", true},
		{"dot sanitizes hyphens", ".", "my-app!", "my_app_", true},
		{"dot with leading digit", ".", "2cool", "_2cool", true},
		{"dot with empty dirname", ".", "", DefaultProjectName, true},
		{"dot with all invalid chars", ".", "---", "___", true},
		{"empty name passes through", "", "dir", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, useCWD := ResolveName(tt.raw, tt.dirname)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantUseCWD, useCWD)
		})
	}
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "my_app", SanitizeName("my_app"))
	assert.Equal(t, "my_app_", SanitizeName("my-app!"))
	assert.Equal(t, "_2cool", SanitizeName("2cool"))
	assert.Equal(t, DefaultProjectName, SanitizeName(""))
}

func TestApplyDefaults(t *testing.T) {
	t.Run("fills everything when empty", func(t *testing.T) {
		opts := ApplyDefaults(Options{})

		assert.Equal(t, DefaultProjectName, opts.Name)
		assert.Equal(t, DefaultDescription, opts.Description)
		assert.Equal(t, DefaultAuthor, opts.Author)
		assert.Equal(t, DefaultPythonVersion, opts.PythonVersion)

		for _, flag := range []*bool{opts.CI, opts.Devcontainer, opts.PreCommit, opts.Docker, opts.Diagrams, opts.Assistant} {
			if assert.NotNil(t, flag) {
				assert.True(t, *flag)
			}
		}
	})

	t.Run("idempotent on a complete config", func(t *testing.T) {
		no := false
		complete := Options{
			Name:          "proj",
			Description:   "desc",
			Author:        "author",
			PythonVersion: "3.12",
			CI:            &no,
			Devcontainer:  &no,
			PreCommit:     &no,
			Docker:        &no,
			Diagrams:      &no,
			Assistant:     &no,
		}

		got := ApplyDefaults(complete)
		assert.Equal(t, complete, got)

		// A second application changes nothing either
		assert.Equal(t, got, ApplyDefaults(got))
	})
}

func TestResolve(t *testing.T) {
	yes := true
	opts := Options{
		Name:          "proj",
		Description:   "desc",
		Author:        "author",
		PythonVersion: "3.13",
		CI:            &yes,
	}

	cfg := Resolve(opts, true)

	assert.Equal(t, "proj", cfg.Name)
	assert.True(t, cfg.UseCWD)
	assert.True(t, cfg.CI)
	// Nil flags resolve to disabled
	assert.False(t, cfg.Docker)
	assert.False(t, cfg.Assistant)
}
