package scaffold

import (
	"embed"
	"io/fs"
	"strings"
)

// templateRoot is the directory prefix of the embedded template tree.
const templateRoot = "templates"

//go:embed templates
var templateFS embed.FS

// TemplateNames returns the identifiers of every embedded template,
// relative to the template root.
func TemplateNames() ([]string, error) {
	var names []string

	err := fs.WalkDir(templateFS, templateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		names = append(names, strings.TrimPrefix(path, templateRoot+"/"))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}
