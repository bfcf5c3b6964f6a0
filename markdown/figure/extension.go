package figure

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Extension is the goldmark.Extender for standalone image figures.
type Extension struct {
	config *config
}

func New(opts ...Option) *Extension {
	return &Extension{
		config: newConfig(opts...),
	}
}

func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(
				newFigureParser(e.config),
				Priority,
			),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(newFigureRenderer(e.config), 500),
		),
	)
}

// Settings returns the free-form settings passed with WithConfig.
func (e *Extension) Settings() map[string]interface{} {
	return e.config.values
}
