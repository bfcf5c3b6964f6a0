package figure

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type figureRenderer struct {
	config *config
}

func newFigureRenderer(config *config) renderer.NodeRenderer {
	return &figureRenderer{
		config: config,
	}
}

func (r *figureRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindFigureGroup, r.renderFigureGroup)
	reg.Register(KindFigure, r.renderFigure)
}

func (r *figureRenderer) renderFigureGroup(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</div>\n")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString("<div")
	if r.config.wrapperClass != "" {
		_, _ = w.WriteString(" class=\"")
		_, _ = w.Write(util.EscapeHTML([]byte(r.config.wrapperClass)))
		_, _ = w.WriteString("\"")
	}
	_, _ = w.WriteString(">\n")

	return ast.WalkContinue, nil
}

// Captions are written as escaped text, never as markup.
func (r *figureRenderer) renderFigure(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<figure>")
		return ast.WalkContinue, nil
	}

	node := n.(*Figure)

	_, _ = w.WriteString("<figcaption>")
	_, _ = w.Write(util.EscapeHTML(node.Caption))
	_, _ = w.WriteString("</figcaption></figure>\n")

	return ast.WalkContinue, nil
}
