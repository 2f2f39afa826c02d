package cli

import "github.com/ef-ds/deque"

// tokenQueue is the double-ended queue of pending tokens. The expander pushes
// split clusters back to its front; the classifier pops flag values from it.
type tokenQueue struct {
	d *deque.Deque
}

func newTokenQueue(tokens []string) *tokenQueue {
	q := &tokenQueue{d: deque.New()}
	for _, tok := range tokens {
		q.d.PushBack(tok)
	}
	return q
}

func (q *tokenQueue) pushFront(tok string) {
	q.d.PushFront(tok)
}

func (q *tokenQueue) popFront() (string, bool) {
	v, ok := q.d.PopFront()
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (q *tokenQueue) len() int {
	return q.d.Len()
}

// drain removes and returns every remaining token in order.
func (q *tokenQueue) drain() []string {
	rest := make([]string, 0, q.len())
	for {
		tok, ok := q.popFront()
		if !ok {
			return rest
		}
		rest = append(rest, tok)
	}
}
