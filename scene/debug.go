package scene

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/AYColumbia/quill/geom"
)

// DumpTree returns a printable rendering of the subtree rooted at e, one
// node per line with tag, id, classes and box geometry. Intended for
// debugging and log output.
func DumpTree(e *Element) string {
	tree := treeprint.New()
	tree.SetValue(nodeLabel(e))
	addChildren(tree, e)
	return tree.String()
}

func addChildren(branch treeprint.Tree, e *Element) {
	for i := 0; i < e.NumChildren(); i++ {
		child := e.Child(i)
		sub := branch.AddBranch(nodeLabel(child))
		addChildren(sub, child)
	}
}

func nodeLabel(e *Element) string {
	label := e.tag
	if e.id != "" {
		label += "#" + e.id
	}
	for _, class := range e.classes {
		label += "." + class
	}
	size := e.Box().Size(geom.AreaBorder)
	offset := e.absoluteOffset
	label += fmt.Sprintf(" [%gx%g @ %g,%g]", size.X, size.Y, offset.X, offset.Y)
	if !e.visible {
		label += " (hidden)"
	}
	return label
}
