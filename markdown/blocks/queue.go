package blocks

import "strings"

// Queue holds the blocks that are still waiting to be processed, in source order.
type Queue struct {
	blocks []string
}

func NewQueue(blocks ...string) *Queue {
	return &Queue{
		blocks: append([]string(nil), blocks...),
	}
}

func (q *Queue) Len() int {
	return len(q.blocks)
}

// Peek returns the head block without removing it.
func (q *Queue) Peek() (string, bool) {
	if len(q.blocks) == 0 {
		return "", false
	}

	return q.blocks[0], true
}

// Pop removes and returns the head block.
func (q *Queue) Pop() (string, bool) {
	if len(q.blocks) == 0 {
		return "", false
	}

	head := q.blocks[0]
	q.blocks = q.blocks[1:]

	return head, true
}

// Split cuts source into blocks separated by blank lines.
func Split(source string) []string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")

	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		current = append(current, line)
	}

	flush()

	return blocks
}

// Lines splits a block into its lines.
func Lines(block string) []string {
	if block == "" {
		return nil
	}

	return strings.Split(block, "\n")
}
