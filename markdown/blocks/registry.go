package blocks

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
)

var (
	ErrDuplicateRule = errors.New("duplicate rule name")
	ErrUnknownRule   = errors.New("unknown rule name")
)

// Rule is a block-level rewrite rule.
//
// Match must not have side effects. Apply is only called after Match
// returned true for the head of the queue, and must remove that block.
type Rule interface {
	Match(parent *html.Node, block string) bool
	Apply(parent *html.Node, queue *Queue) error
}

type namedRule struct {
	name string
	rule Rule
}

// Registry is an ordered list of named rules. Rules earlier in the list
// are offered a block first.
type Registry struct {
	rules []namedRule
}

func NewRegistry() *Registry {
	return &Registry{}
}

// NewDefaultRegistry returns a registry holding the list and paragraph rules.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	// Names are unique here, errors are impossible.
	_ = r.Add(UnorderedListRuleName, &UnorderedListRule{})
	_ = r.Add(ParagraphRuleName, &ParagraphRule{})

	return r
}

func (r *Registry) index(name string) int {
	for i, nr := range r.rules {
		if nr.name == name {
			return i
		}
	}

	return -1
}

func (r *Registry) insert(pos int, name string, rule Rule) error {
	if r.index(name) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, name)
	}

	r.rules = append(r.rules, namedRule{})
	copy(r.rules[pos+1:], r.rules[pos:])
	r.rules[pos] = namedRule{name: name, rule: rule}

	return nil
}

// Add appends rule with the lowest priority.
func (r *Registry) Add(name string, rule Rule) error {
	return r.insert(len(r.rules), name, rule)
}

// InsertBefore registers rule directly in front of the rule named anchor.
func (r *Registry) InsertBefore(anchor, name string, rule Rule) error {
	pos := r.index(anchor)
	if pos < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownRule, anchor)
	}

	return r.insert(pos, name, rule)
}

// InsertAfter registers rule directly behind the rule named anchor.
func (r *Registry) InsertAfter(anchor, name string, rule Rule) error {
	pos := r.index(anchor)
	if pos < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownRule, anchor)
	}

	return r.insert(pos+1, name, rule)
}

// Rule returns the rule registered under name.
func (r *Registry) Rule(name string) (Rule, bool) {
	pos := r.index(name)
	if pos < 0 {
		return nil, false
	}

	return r.rules[pos].rule, true
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.rules))
	for i, nr := range r.rules {
		names[i] = nr.name
	}

	return names
}

func (r *Registry) Rules() []Rule {
	rules := make([]Rule, len(r.rules))
	for i, nr := range r.rules {
		rules[i] = nr.rule
	}

	return rules
}
