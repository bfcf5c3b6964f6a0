// Package blocks is a small block level document processor. Source text is
// cut into blocks on blank lines and every block is offered to the rules of
// a Registry in order; the first matching rule rewrites it into HTML nodes.
package blocks

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"k8s.io/klog/v2"
)

var (
	ErrUnhandledBlock = errors.New("no rule matched block")
	ErrStalled        = errors.New("rule did not consume block")
)

type Parser struct {
	registry *Registry
}

func NewParser(registry *Registry) *Parser {
	return &Parser{
		registry: registry,
	}
}

// Parse processes source and returns a document node holding the result.
func (p *Parser) Parse(source string) (*html.Node, error) {
	root := &html.Node{Type: html.DocumentNode}

	if err := p.ParseBlocks(root, NewQueue(Split(source)...)); err != nil {
		return nil, err
	}

	return root, nil
}

// ParseBlocks drains queue, appending the output of the rules to parent.
func (p *Parser) ParseBlocks(parent *html.Node, queue *Queue) error {
	for queue.Len() > 0 {
		block, _ := queue.Peek()

		if err := p.dispatch(parent, block, queue); err != nil {
			return err
		}
	}

	return nil
}

func (p *Parser) dispatch(parent *html.Node, block string, queue *Queue) error {
	for _, nr := range p.registry.rules {
		if !nr.rule.Match(parent, block) {
			continue
		}

		klog.V(6).Infof("block rule %s claims block of %d bytes", nr.name, len(block))

		before := queue.Len()
		if err := nr.rule.Apply(parent, queue); err != nil {
			return fmt.Errorf("rule %s: %w", nr.name, err)
		}

		if queue.Len() >= before {
			return fmt.Errorf("rule %s: %w", nr.name, ErrStalled)
		}

		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnhandledBlock, block)
}

// Render writes the children of root as HTML, one top level node per line.
func Render(w io.Writer, root *html.Node) error {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c != root.FirstChild {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if err := html.Render(w, c); err != nil {
			return fmt.Errorf("render %s: %w", Tag(c), err)
		}
	}

	return nil
}
