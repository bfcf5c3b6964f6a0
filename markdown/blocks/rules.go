package blocks

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	UnorderedListRuleName = "ulist"
	ParagraphRuleName     = "paragraph"
)

var listItemRe = regexp.MustCompile(`^ {0,3}[*+-][ \t]+(.*)$`)

// UnorderedListRule turns a block starting with a list marker into `ul`.
// Lines without a marker continue the previous item.
type UnorderedListRule struct{}

func (r *UnorderedListRule) Match(parent *html.Node, block string) bool {
	lines := Lines(block)
	if len(lines) == 0 {
		return false
	}

	return listItemRe.MatchString(lines[0])
}

func (r *UnorderedListRule) Apply(parent *html.Node, queue *Queue) error {
	block, _ := queue.Pop()

	ul := AppendElement(parent, atom.Ul)

	var items []string
	for _, line := range Lines(block) {
		if m := listItemRe.FindStringSubmatch(line); m != nil {
			items = append(items, m[1])
			continue
		}

		if len(items) == 0 {
			items = append(items, strings.TrimSpace(line))
			continue
		}

		items[len(items)-1] += "\n" + strings.TrimSpace(line)
	}

	for _, item := range items {
		li := AppendElement(ul, atom.Li)
		AppendText(li, item)
	}

	return nil
}

// ParagraphRule matches every block and wraps it into `p`.
type ParagraphRule struct{}

func (r *ParagraphRule) Match(parent *html.Node, block string) bool {
	return true
}

func (r *ParagraphRule) Apply(parent *html.Node, queue *Queue) error {
	block, _ := queue.Pop()

	p := AppendElement(parent, atom.P)
	AppendText(p, strings.TrimSpace(block))

	return nil
}
