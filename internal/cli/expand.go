package cli

// expandNext pops the next token, expanding short option clusters in place.
//
// Splitting follows nix 2.3.1 src/libutil/args.cc: "-pj16" puts "-p", "-j"
// and "16" back on the queue and returns "-p". When tok[1:] has no non-letter
// byte the split index is len(tok)-1, which covers all of tok[1:].
func expandNext(q *tokenQueue) (string, bool) {
	tok, ok := q.popFront()
	if !ok {
		return "", false
	}
	if len(tok) <= 2 || tok[0] != '-' || !isAlpha(tok[1]) {
		return tok, true
	}

	body := tok[1:]
	split := len(tok) - 1
	for i := 0; i < len(body); i++ {
		if !isAlpha(body[i]) {
			split = i
			break
		}
	}
	letters, rest := body[:split], body[split:]

	if rest != "" {
		q.pushFront(rest)
	}
	for i := len(letters) - 1; i >= 0; i-- {
		q.pushFront(string([]byte{'-', letters[i]}))
	}
	return q.popFront()
}

// Expand returns tokens with every short option cluster split apart. Values
// are not treated specially: Expand([]string{"-j", "-pi"}) yields
// "-j", "-p", "-i".
func Expand(tokens []string) []string {
	q := newTokenQueue(tokens)
	out := make([]string, 0, len(tokens))
	for {
		tok, ok := expandNext(q)
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func isAlpha(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}
