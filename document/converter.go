package document

import (
	"bytes"
	"fmt"
	"io/ioutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/bgraf/figcap/markdown/figure"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

type ConverterOptions struct {
	GFM    bool // GitHub Flavored Markdown
	Unsafe bool // Keep raw HTML
	Figure []figure.Option
}

// Converter renders markdown documents with standalone images turned into figures.
type Converter struct {
	markdown goldmark.Markdown
}

func NewConverter(opts ConverterOptions) *Converter {
	extensions := []goldmark.Extender{
		meta.Meta,
		figure.New(opts.Figure...),
	}

	if opts.GFM {
		extensions = append(extensions, extension.GFM)
	}

	var rendererOptions []renderer.Option
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	return &Converter{
		markdown: goldmark.New(
			goldmark.WithExtensions(extensions...),
			goldmark.WithRendererOptions(rendererOptions...),
		),
	}
}

// Convert renders source. path is only recorded in the returned document.
func (c *Converter) Convert(path string, source []byte) (*Document, error) {
	var buffer bytes.Buffer

	pc := parser.NewContext()

	err := c.markdown.Convert(source, &buffer, parser.WithContext(pc))
	if err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	doc := &Document{
		Path: path,
	}

	doc.HTML, err = goquery.NewDocumentFromReader(&buffer)
	if err != nil {
		return nil, fmt.Errorf("could not parse HTML: %w", err)
	}

	m, err := meta.TryGet(pc)
	if err != nil {
		return nil, fmt.Errorf("could not read front matter: %w", err)
	}

	if err := populateFromFrontMatter(doc, m); err != nil {
		return nil, fmt.Errorf("could not parse front matter: %w", err)
	}

	return doc, nil
}

// Render writes the HTML for source to a buffer without building a Document.
func (c *Converter) Render(source []byte) ([]byte, error) {
	var buffer bytes.Buffer

	if err := c.markdown.Convert(source, &buffer); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	return buffer.Bytes(), nil
}

func (c *Converter) Load(path string) (*Document, error) {
	source, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read source file: %w", err)
	}

	doc, err := c.Convert(path, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
