package figure

import (
	"github.com/yuin/goldmark/ast"
)

var (
	KindFigureGroup = ast.NewNodeKind("FigureGroup")
	KindFigure      = ast.NewNodeKind("Figure")
)

// FigureGroup wraps the figures created from one block.
type FigureGroup struct {
	ast.BaseBlock

	// size is the number of lines the group was opened for.
	size int
}

func NewFigureGroup() *FigureGroup {
	return &FigureGroup{}
}

func (n *FigureGroup) Kind() ast.NodeKind {
	return KindFigureGroup
}

func (n *FigureGroup) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// Figure holds one image line as inline content plus the caption taken
// from the image's alt text.
type Figure struct {
	ast.BaseBlock
	Caption []byte
}

func NewFigure(caption []byte) *Figure {
	return &Figure{
		Caption: caption,
	}
}

func (n *Figure) Kind() ast.NodeKind {
	return KindFigure
}

func (n *Figure) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Caption": string(n.Caption),
	}, nil)
}
