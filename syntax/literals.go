package syntax

// FlattenLiterals reports whether root is an Alternation (or a bare
// Literal) whose every reachable branch is a plain Literal, and if so
// returns each branch's text. Used by package prefilter to decide
// whether a pattern qualifies for the Aho-Corasick fast-reject path.
func FlattenLiterals(root Node) ([]string, bool) {
	switch v := root.(type) {
	case Literal:
		return []string{string(v.Runes)}, true
	case Alternation:
		out := make([]string, 0, len(v.Children))
		for _, c := range v.Children {
			lit, ok := c.(Literal)
			if !ok {
				return nil, false
			}
			out = append(out, string(lit.Runes))
		}
		return out, true
	default:
		return nil, false
	}
}
