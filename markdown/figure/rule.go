// Package figure turns blocks made up only of standalone images into
// figures, using each image's alt text as its caption.
//
// A block such as
//
//	![A lake](lake.jpg)
//	![The mountains](mountains.jpg "Alps")
//
// becomes one wrapper div holding a figure per line:
//
//	<div>
//	  <figure><img ...><figcaption>A lake</figcaption></figure>
//	  <figure><img ...><figcaption>The mountains</figcaption></figure>
//	</div>
//
// The rule is available for the blocks processor (Rule, Register) and as a
// goldmark extension (New).
package figure

import (
	"errors"
	"fmt"

	"github.com/bgraf/figcap/markdown/blocks"
	"github.com/bgraf/figcap/markdown/imageref"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RuleName is the name the rule is registered under in a blocks.Registry.
const RuleName = "figure"

// ErrCaptionMismatch signals that a line accepted as an image line could not
// be matched again when building its figure.
var ErrCaptionMismatch = errors.New("image line did not yield a caption")

// standalone reports whether every line is a standalone image and the
// block is not already inside a figure. A block without lines never is.
func standalone(parentIsFigure bool, lines []string) bool {
	if len(lines) == 0 {
		return false
	}

	for _, line := range lines {
		if parentIsFigure || !imageref.IsImageLine(line) {
			return false
		}
	}

	return true
}

// Rule is the blocks.Rule for standalone image blocks.
type Rule struct {
	config *config
}

func NewRule(opts ...Option) *Rule {
	return &Rule{
		config: newConfig(opts...),
	}
}

// Register adds the rule to registry directly in front of the unordered list rule.
func Register(registry *blocks.Registry, opts ...Option) error {
	err := registry.InsertBefore(blocks.UnorderedListRuleName, RuleName, NewRule(opts...))
	if err != nil {
		return fmt.Errorf("register figure rule: %w", err)
	}

	return nil
}

func (r *Rule) Match(parent *html.Node, block string) bool {
	return standalone(blocks.Tag(parent) == atom.Figure.String(), blocks.Lines(block))
}

// Apply consumes the head block of queue and appends its figure group to
// parent. Nothing is appended if a line fails to yield a caption.
func (r *Rule) Apply(parent *html.Node, queue *blocks.Queue) error {
	block, ok := queue.Pop()
	if !ok {
		return fmt.Errorf("figure rule applied to empty queue")
	}

	wrapper := blocks.NewElement(atom.Div)
	if r.config.wrapperClass != "" {
		blocks.SetAttr(wrapper, "class", r.config.wrapperClass)
	}

	for i, line := range blocks.Lines(block) {
		match, ok := imageref.MatchLine(line)
		if !ok {
			return fmt.Errorf("%w: line %d: %q", ErrCaptionMismatch, i+1, line)
		}

		figure := blocks.AppendElement(wrapper, atom.Figure)
		// The image markup stays as is, turning it into an img is left to inline rendering.
		blocks.AppendText(figure, line)

		caption := blocks.AppendElement(figure, atom.Figcaption)
		blocks.AppendText(caption, match.Caption)
	}

	parent.AppendChild(wrapper)

	return nil
}
