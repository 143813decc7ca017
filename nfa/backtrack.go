package nfa

// Simulator explores a built Fragment against an input string with
// explicit-stack depth-first search, tracking capture-group spans.
// spec.md §4.4. The search stack is explicit rather than recursive per
// spec.md §9 ("do not use host-language recursion") so that worst-case
// search depth (proportional to input length) never threatens the Go
// call stack.

// groupSpan is the working entry for one capture group during a search:
// the rune offsets it opened (and, once closed, ended) at.
type groupSpan struct {
	left     int
	right    int
	hasRight bool
	name     string
}

// groups is a copy-on-write map of group index -> groupSpan. Each stack
// frame owns a reference to one; a frame that opens or closes a group
// clones before writing so that sibling branches explored later never
// observe a mutation made along an abandoned path. Within one branch a
// group's left boundary is set the first time the group opens and is
// kept if the group re-opens; since every branch's map is private, that
// boundary never comes from a different, earlier-abandoned branch (see
// DESIGN.md).
type groups map[uint32]groupSpan

func (g groups) clone() groups {
	out := make(groups, len(g)+1)
	for k, v := range g {
		out[k] = v
	}
	return out
}

// frame is one unit of search state on the explicit stack.
type frame struct {
	pos     int       // rune offset into the input
	state   StateID   // current NFA state
	visited []StateID // states visited by ε-transitions since the last consumed rune
	flag    uint64    // bitmask of currently-open group indices (spec.md §9: max 64 groups)
	groups  groups
}

func visitedContains(visited []StateID, id StateID) bool {
	for _, v := range visited {
		if v == id {
			return true
		}
	}
	return false
}

// Compute runs the simulator over input and reports the captured
// substrings on acceptance, or (nil, false) on rejection. Acceptance
// requires reaching an ending state with the entire input consumed
// (spec.md §9, open question 1, resolved in favor of whole-input
// acceptance; see SPEC_FULL.md §4).
func Compute(f *Fragment, input string) (map[string]string, bool) {
	runes := []rune(input)
	stack := []frame{{pos: 0, state: f.Initial(), flag: 0, groups: nil}}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if int(fr.state) >= f.NumStates() {
			panic(&BuildError{Message: "simulator reached out-of-range state", StateID: fr.state})
		}
		st := f.State(fr.state)

		flag := fr.flag
		grp := fr.groups

		if len(st.startGroups) > 0 {
			grp = grp.clone()
			for _, g := range st.startGroups {
				flag |= 1 << g.Index
				if _, ok := grp[g.Index]; !ok {
					grp[g.Index] = groupSpan{left: fr.pos, name: g.Name}
				}
			}
		}
		if len(st.endGroups) > 0 {
			if grp == nil {
				grp = groups{}
			} else {
				grp = grp.clone()
			}
			for _, g := range st.endGroups {
				if flag&(1<<g.Index) != 0 {
					span := grp[g.Index]
					span.right = fr.pos
					span.hasRight = true
					span.name = g.Name
					grp[g.Index] = span
					flag &^= 1 << g.Index
				}
			}
		}

		if st.isEnding && fr.pos == len(runes) {
			return buildResult(grp, runes), true
		}

		trans := st.transitions
		for i := len(trans) - 1; i >= 0; i-- {
			t := trans[i]

			var eligible bool
			if fr.pos < len(runes) {
				eligible = t.Matcher.Matches(runes[fr.pos])
			} else {
				eligible = t.Matcher.IsEpsilon()
			}
			if !eligible {
				continue
			}

			if t.Matcher.IsEpsilon() {
				if visitedContains(fr.visited, t.Target) {
					continue
				}
				nextVisited := make([]StateID, len(fr.visited), len(fr.visited)+1)
				copy(nextVisited, fr.visited)
				nextVisited = append(nextVisited, t.Target)
				stack = append(stack, frame{
					pos:     fr.pos,
					state:   t.Target,
					visited: nextVisited,
					flag:    flag,
					groups:  grp,
				})
				continue
			}

			stack = append(stack, frame{
				pos:    fr.pos + 1,
				state:  t.Target,
				flag:   flag,
				groups: grp,
			})
		}
	}

	return nil, false
}

// buildResult turns the working group map into the public result shape
// (spec.md §6): key "0" is always the whole match; a named group's
// substring additionally appears under its name.
func buildResult(grp groups, runes []rune) map[string]string {
	out := make(map[string]string, len(grp)*2)
	for idx, span := range grp {
		if !span.hasRight {
			continue
		}
		text := string(runes[span.left:span.right])
		key := uitoa(idx)
		out[key] = text
		if span.name != "" {
			out[span.name] = text
		}
	}
	return out
}

// uitoa converts idx to its decimal string form without pulling in
// strconv for a single small, non-negative integer.
func uitoa(idx uint32) string {
	if idx == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for idx > 0 {
		i--
		buf[i] = byte('0' + idx%10)
		idx /= 10
	}
	return string(buf[i:])
}
