package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	files := []string{
		"src/myproj/__init__.py",
		"src/myproj/main.py",
		"tests/test_main.py",
		"pyproject.toml",
		"README.md",
	}

	got := RenderFileTree("myproj", files)

	assert.Contains(t, got, "myproj/")
	assert.Contains(t, got, "src/")
	assert.Contains(t, got, "tests/")
	assert.Contains(t, got, "main.py")
	assert.Contains(t, got, "pyproject.toml")
	assert.Contains(t, got, treeEdge)
	assert.Contains(t, got, treeLast)
}

func TestRenderFileTreeDirectoriesFirst(t *testing.T) {
	got := RenderFileTree("p", []string{
		"zz.txt",
		"aa/nested.txt",
	})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	// Root, then the aa/ directory with its child, then the file.
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], "aa/")
	assert.Contains(t, lines[2], "nested.txt")
	assert.Contains(t, lines[3], "zz.txt")
}

func TestRenderFileTreeSortsAlphabetically(t *testing.T) {
	got := RenderFileTree("p", []string{"b.txt", "a.txt", "c.txt"})

	a := strings.Index(got, "a.txt")
	b := strings.Index(got, "b.txt")
	c := strings.Index(got, "c.txt")
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestRenderFileTreeLastEntryConnector(t *testing.T) {
	got := RenderFileTree("p", []string{"a.txt", "b.txt"})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[1], treeEdge))
	assert.True(t, strings.HasPrefix(lines[2], treeLast))
}

func TestRenderFileTreeEmpty(t *testing.T) {
	assert.Empty(t, RenderFileTree("p", nil))
}

func TestRenderFileTreeDeepNesting(t *testing.T) {
	got := RenderFileTree("p", []string{".github/workflows/ci.yml"})

	assert.Contains(t, got, ".github/")
	assert.Contains(t, got, "workflows/")
	assert.Contains(t, got, "ci.yml")

	// The deepest entry is indented under its two parent directories.
	for _, line := range strings.Split(got, "\n") {
		if strings.Contains(line, "ci.yml") {
			assert.True(t, strings.HasPrefix(line, treeSpace+treeSpace))
		}
	}
}
