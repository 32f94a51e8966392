package verify

import (
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// hasTitleHeading reports whether body carries a level-1 heading outside
// code blocks.
func hasTitleHeading(body string) bool {
	if body == "" {
		return false
	}

	mdParser := parser.NewWithExtensions(parser.CommonExtensions | parser.FencedCode)
	doc := mdParser.Parse([]byte(body))

	found := false
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if h, ok := node.(*ast.Heading); ok && h.Level == 1 {
			found = true
			return ast.Terminate
		}
		return ast.GoToNext
	})
	return found
}
