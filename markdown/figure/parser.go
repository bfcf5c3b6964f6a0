package figure

import (
	"bytes"
	"fmt"

	"github.com/bgraf/figcap/markdown/imageref"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Priority places the figure parser right in front of goldmark's list parser (300).
const Priority = 299

type figureParser struct {
	config *config
}

func newFigureParser(config *config) parser.BlockParser {
	return &figureParser{
		config: config,
	}
}

func (b *figureParser) Trigger() []byte {
	return []byte{'!'}
}

func (b *figureParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	lines := peekBlock(parent, reader)
	if !standalone(parent.Kind() == KindFigure, lines) {
		return nil, parser.NoChildren
	}

	_, segment := reader.PeekLine()
	node := NewFigureGroup()
	node.size = len(lines)
	node.Lines().Append(segment)
	reader.Advance(segment.Len() - 1)

	return node, parser.NoChildren
}

// peekBlock returns the lines of the block starting at the reader's
// position. The block ends at a blank line or at the first line that does
// not continue the containers around parent. The reader is not moved.
func peekBlock(parent ast.Node, reader text.Reader) []string {
	line, segment := reader.PeekLine()
	if line == nil || util.IsBlank(line) {
		return nil
	}

	lines := []string{string(line)}

	containers, ok := containersOf(parent)
	if !ok {
		return lines
	}

	source := reader.Source()
	for start := segment.Stop; start < len(source); {
		stop := len(source)
		if i := bytes.IndexByte(source[start:], '\n'); i >= 0 {
			stop = start + i + 1
		}

		raw := source[start:stop]
		start = stop

		rest, ok := stripContainers(containers, raw)
		if !ok || util.IsBlank(rest) {
			break
		}

		lines = append(lines, string(rest))
	}

	return lines
}

// containersOf lists the containers from the document down to parent.
// It fails for containers whose line prefixes are unknown.
func containersOf(parent ast.Node) ([]ast.Node, bool) {
	var containers []ast.Node
	for n := parent; n != nil && n.Kind() != ast.KindDocument; n = n.Parent() {
		switch n.Kind() {
		case ast.KindBlockquote, ast.KindList, ast.KindListItem:
			containers = append([]ast.Node{n}, containers...)
		default:
			return nil, false
		}
	}

	return containers, true
}

// stripContainers removes the prefixes the containers consume from line,
// the way their parsers do on continuation.
func stripContainers(containers []ast.Node, line []byte) ([]byte, bool) {
	if util.IsBlank(line) {
		return line, true
	}

	column := 0
	for _, c := range containers {
		switch n := c.(type) {
		case *ast.Blockquote:
			w, indent := util.IndentWidth(line, column)
			if w > 3 || indent >= len(line) || line[indent] != '>' {
				return nil, false
			}
			pos := indent + 1
			if pos < len(line) && (line[pos] == ' ' || line[pos] == '\t') {
				pos++
			}
			column += w + pos - indent
			line = line[pos:]

		case *ast.ListItem:
			w, _ := util.IndentWidth(line, column)
			if w < n.Offset {
				return nil, false
			}
			pos, _ := util.IndentPosition(line, column, n.Offset)
			if pos < 0 {
				return nil, false
			}
			column += n.Offset
			line = line[pos:]
		}
	}

	return line, true
}

func (b *figureParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	if group, ok := node.(*FigureGroup); ok && node.Lines().Len() >= group.size {
		return parser.Close
	}

	line, segment := reader.PeekLine()
	if util.IsBlank(line) || !imageref.IsImageLine(string(line)) {
		return parser.Close
	}

	node.Lines().Append(segment)
	reader.Advance(segment.Len() - 1)

	return parser.Continue | parser.NoChildren
}

// Close replaces the collected lines by one Figure per line.
func (b *figureParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	lines := node.Lines()

	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		segment = segment.TrimLeftSpace(source)
		segment = segment.TrimRightSpace(source)
		raw := string(segment.Value(source))

		match, ok := imageref.MatchLine(raw)
		if !ok {
			panic(fmt.Sprintf("%s: %q", ErrCaptionMismatch, raw))
		}

		figure := NewFigure([]byte(match.Caption))
		figure.Lines().Append(segment)
		node.AppendChild(node, figure)
	}

	node.SetLines(text.NewSegments())
}

func (b *figureParser) CanInterruptParagraph() bool {
	return false
}

func (b *figureParser) CanAcceptIndentedLine() bool {
	return false
}
