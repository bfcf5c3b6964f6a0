package figure

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bgraf/figcap/markdown/blocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func newBlocksParser(t *testing.T, opts ...Option) *blocks.Parser {
	t.Helper()

	registry := blocks.NewDefaultRegistry()
	require.NoError(t, Register(registry, opts...))

	return blocks.NewParser(registry)
}

func renderBlocks(t *testing.T, source string, opts ...Option) string {
	t.Helper()

	root, err := newBlocksParser(t, opts...).Parse(source)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, blocks.Render(&buf, root))

	return buf.String()
}

func TestRegister(t *testing.T) {
	registry := blocks.NewDefaultRegistry()
	require.NoError(t, Register(registry))
	assert.Equal(t, []string{RuleName, blocks.UnorderedListRuleName, blocks.ParagraphRuleName}, registry.Names())

	err := Register(registry)
	assert.True(t, errors.Is(err, blocks.ErrDuplicateRule))

	err = Register(blocks.NewRegistry())
	assert.True(t, errors.Is(err, blocks.ErrUnknownRule))
}

func TestRuleMatch(t *testing.T) {
	root := &html.Node{Type: html.DocumentNode}
	figure := blocks.NewElement(atom.Figure)

	testCases := []struct {
		name   string
		parent *html.Node
		block  string
		want   bool
	}{
		{"single image", root, "![cap](a.png)", true},
		{"stacked images", root, "![a](1.png)\n![b](2.png)", true},
		{"reference image", root, "![alt][ref1]", true},
		{"mixed forms", root, "![a](1.png)\n  ![b][two]  ", true},
		{"empty block", root, "", false},
		{"image inside text", root, "text ![a](1.png) more text", false},
		{"mixed validity", root, "![a](1.png)\nplain text", false},
		{"mixed validity reversed", root, "plain text\n![a](1.png)", false},
		{"blank line inside", root, "![a](1.png)\n\n![b](2.png)", false},
		{"parent is figure", figure, "![cap](a.png)", false},
		{"parent is figure, stacked", figure, "![a](1.png)\n![b](2.png)", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewRule().Match(tc.parent, tc.block))
		})
	}
}

func TestRuleMatchHasNoSideEffects(t *testing.T) {
	root := &html.Node{Type: html.DocumentNode}
	rule := NewRule()

	assert.True(t, rule.Match(root, "![cap](a.png)"))
	assert.Nil(t, root.FirstChild)
}

func TestRuleApply(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			"single image",
			"![cap](a.png)",
			"<div><figure>![cap](a.png)<figcaption>cap</figcaption></figure></div>",
		},
		{
			"stacked images",
			"![a](1.png)\n![b](2.png)",
			"<div><figure>![a](1.png)<figcaption>a</figcaption></figure><figure>![b](2.png)<figcaption>b</figcaption></figure></div>",
		},
		{
			"reference image",
			"![alt][ref1]",
			"<div><figure>![alt][ref1]<figcaption>alt</figcaption></figure></div>",
		},
		{
			"empty caption",
			"![](a.png)",
			"<div><figure>![](a.png)<figcaption></figcaption></figure></div>",
		},
		{
			"caption is literal text",
			"![a <b> & c](a.png)",
			"<div><figure>![a &lt;b&gt; &amp; c](a.png)<figcaption>a &lt;b&gt; &amp; c</figcaption></figure></div>",
		},
		{
			"mixed validity is left to the paragraph rule",
			"![a](1.png)\nplain text",
			"<p>![a](1.png)\nplain text</p>",
		},
		{
			"image inside text",
			"text ![a](1.png) more text",
			"<p>text ![a](1.png) more text</p>",
		},
		{
			"surrounding blocks are untouched",
			"before\n\n![cap](a.png)\n\n- after",
			"<p>before</p>\n<div><figure>![cap](a.png)<figcaption>cap</figcaption></figure></div>\n<ul><li>after</li></ul>",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, renderBlocks(t, tc.in))
		})
	}
}

func TestRuleApplyWrapperClass(t *testing.T) {
	got := renderBlocks(t, "![cap](a.png)", WithWrapperClass("figures"))
	assert.Equal(t, `<div class="figures"><figure>![cap](a.png)<figcaption>cap</figcaption></figure></div>`, got)
}

func TestRuleApplyPreservesOrder(t *testing.T) {
	for n := 1; n <= 12; n++ {
		t.Run(fmt.Sprintf("%d images", n), func(t *testing.T) {
			lines := make([]string, n)
			for i := range lines {
				lines[i] = fmt.Sprintf("![caption %d](%d.png)", i, i)
			}

			root, err := newBlocksParser(t).Parse(strings.Join(lines, "\n"))
			require.NoError(t, err)

			wrapper := root.FirstChild
			require.NotNil(t, wrapper)
			assert.Equal(t, "div", blocks.Tag(wrapper))
			assert.Nil(t, wrapper.NextSibling)

			i := 0
			for figure := wrapper.FirstChild; figure != nil; figure = figure.NextSibling {
				assert.Equal(t, "figure", blocks.Tag(figure))
				assert.Equal(t, lines[i], figure.FirstChild.Data)

				caption := figure.LastChild
				assert.Equal(t, "figcaption", blocks.Tag(caption))
				assert.Equal(t, fmt.Sprintf("caption %d", i), caption.FirstChild.Data)
				i++
			}
			assert.Equal(t, n, i)
		})
	}
}

func TestRuleApplyConsumesOnlyHead(t *testing.T) {
	root := &html.Node{Type: html.DocumentNode}
	queue := blocks.NewQueue("![cap](a.png)", "next")

	require.NoError(t, NewRule().Apply(root, queue))

	assert.Equal(t, 1, queue.Len())
	head, _ := queue.Peek()
	assert.Equal(t, "next", head)
	assert.Equal(t, "div", blocks.Tag(root.FirstChild))
}

func TestRuleApplyCaptionMismatch(t *testing.T) {
	root := &html.Node{Type: html.DocumentNode}
	queue := blocks.NewQueue("![a](1.png)\nnot an image", "next")

	err := NewRule().Apply(root, queue)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCaptionMismatch))
	assert.Contains(t, err.Error(), "line 2")

	// Nothing half built ends up in the tree.
	assert.Nil(t, root.FirstChild)
	assert.Equal(t, 1, queue.Len())
}

func TestRuleApplyEmptyQueue(t *testing.T) {
	err := NewRule().Apply(&html.Node{Type: html.DocumentNode}, blocks.NewQueue())
	assert.Error(t, err)
}

func TestRuleNestedParsing(t *testing.T) {
	figure := blocks.NewElement(atom.Figure)
	parser := newBlocksParser(t)

	require.NoError(t, parser.ParseBlocks(figure, blocks.NewQueue("![cap](a.png)")))

	require.NotNil(t, figure.FirstChild)
	assert.Equal(t, "p", blocks.Tag(figure.FirstChild))
}
