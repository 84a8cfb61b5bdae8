package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	// Tree characters
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "
)

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name     string
	IsDir    bool
	Children []*TreeNode
}

// RenderFileTree renders the given root-relative file paths as a tree
// rooted at rootName. Directories sort before files, both alphabetically.
func RenderFileTree(rootName string, files []string) string {
	if len(files) == 0 {
		return ""
	}

	root := &TreeNode{
		Name:     rootName,
		IsDir:    true,
		Children: []*TreeNode{},
	}

	for _, path := range files {
		parts := strings.Split(filepath.ToSlash(path), "/")
		current := root

		for i, part := range parts {
			isLast := i == len(parts)-1

			// Find or create child
			var child *TreeNode
			for _, c := range current.Children {
				if c.Name == part {
					child = c
					break
				}
			}

			if child == nil {
				child = &TreeNode{
					Name:     part,
					IsDir:    !isLast,
					Children: []*TreeNode{},
				}
				current.Children = append(current.Children, child)
			}

			current = child
		}
	}

	sortTree(root)

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(root.Name + "/"))
	sb.WriteString("\n")
	renderChildren(&sb, root, "")
	return sb.String()
}

// sortTree recursively sorts tree nodes (directories first, then alphabetically).
func sortTree(node *TreeNode) {
	if len(node.Children) == 0 {
		return
	}

	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})

	for _, child := range node.Children {
		sortTree(child)
	}
}

// renderChildren renders the children of node with proper connectors.
func renderChildren(sb *strings.Builder, node *TreeNode, prefix string) {
	for i, child := range node.Children {
		isLast := i == len(node.Children)-1

		connector := treeEdge
		childPrefix := prefix + treeVert
		if isLast {
			connector = treeLast
			childPrefix = prefix + treeSpace
		}

		name := child.Name
		if child.IsDir {
			name = StyleBold.Render(name + "/")
		} else {
			name = StyleCreated.Render(name)
		}

		sb.WriteString(prefix + connector + name + "\n")
		renderChildren(sb, child, childPrefix)
	}
}
