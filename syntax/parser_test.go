package syntax

import "testing"

func TestParseLiteral(t *testing.T) {
	result, err := Parse("abc")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	lit, ok := result.Root.(Literal)
	if !ok {
		t.Fatalf("Root = %T, want Literal", result.Root)
	}
	if string(lit.Runes) != "abc" {
		t.Errorf("Runes = %q, want %q", string(lit.Runes), "abc")
	}
}

func TestParseAlternation(t *testing.T) {
	result, err := Parse("foo|bar")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	alt, ok := result.Root.(Alternation)
	if !ok {
		t.Fatalf("Root = %T, want Alternation", result.Root)
	}
	if len(alt.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(alt.Children))
	}
}

func TestParseRepetition(t *testing.T) {
	tests := []struct {
		pattern string
		min     int
		max     int
	}{
		{"a*", 0, -1},
		{"a+", 1, -1},
		{"a?", 0, 1},
		{"a{3}", 3, 3},
		{"a{2,}", 2, -1},
		{"a{2,5}", 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			result, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.pattern, err)
			}
			rep, ok := result.Root.(Repetition)
			if !ok {
				t.Fatalf("Root = %T, want Repetition", result.Root)
			}
			if rep.Min != tt.min || rep.Max != tt.max {
				t.Errorf("got {%d,%d}, want {%d,%d}", rep.Min, rep.Max, tt.min, tt.max)
			}
		})
	}
}

func TestParseNamedCapture(t *testing.T) {
	result, err := Parse("(?P<all>e(a)e)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cap, ok := result.Root.(Capture)
	if !ok {
		t.Fatalf("Root = %T, want Capture", result.Root)
	}
	if cap.Name != "all" || cap.Index != 1 {
		t.Errorf("got Index=%d Name=%q, want Index=1 Name=%q", cap.Index, cap.Name, "all")
	}
	if result.NumGroups != 2 {
		t.Errorf("NumGroups = %d, want 2", result.NumGroups)
	}
	if result.Names[1] != "all" || result.Names[2] != "" {
		t.Errorf("Names = %v, want [\"\", \"all\", \"\"]", result.Names)
	}
}

func TestParseNonCapturingGroup(t *testing.T) {
	result, err := Parse("(?:ab)c")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.NumGroups != 0 {
		t.Errorf("NumGroups = %d, want 0", result.NumGroups)
	}
}

func TestParseClass(t *testing.T) {
	result, err := Parse("[1-9]")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cls, ok := result.Root.(Class)
	if !ok {
		t.Fatalf("Root = %T, want Class", result.Root)
	}
	if len(cls.Ranges) != 1 || cls.Ranges[0].Lo != '1' || cls.Ranges[0].Hi != '9' {
		t.Errorf("Ranges = %v, want [{'1','9'}]", cls.Ranges)
	}
}

func TestParseNegatedClass(t *testing.T) {
	result, err := Parse("[^1-9]")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cls, ok := result.Root.(Class)
	if !ok {
		t.Fatalf("Root = %T, want Class", result.Root)
	}
	for _, r := range cls.Ranges {
		if r.Lo <= '9' && r.Hi >= '1' && r.Lo >= '1' && r.Hi <= '9' {
			t.Errorf("negated class still covers digit range %v", r)
		}
	}
	// '0' is not in [1-9], so it should be covered by the complement.
	found := false
	for _, r := range cls.Ranges {
		if '0' >= r.Lo && '0' <= r.Hi {
			found = true
		}
	}
	if !found {
		t.Error("negated class does not cover '0'")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"(",
		"a{5,2}",
		"[abc",
		"(?P<>x)",
	}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			if _, err := Parse(pattern); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", pattern)
			}
		})
	}
}

func TestFlattenLiterals(t *testing.T) {
	result, err := Parse("foo|bar|baz")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	lits, ok := FlattenLiterals(result.Root)
	if !ok {
		t.Fatal("FlattenLiterals() returned ok = false")
	}
	want := []string{"foo", "bar", "baz"}
	if len(lits) != len(want) {
		t.Fatalf("lits = %v, want %v", lits, want)
	}
	for i := range want {
		if lits[i] != want[i] {
			t.Errorf("lits[%d] = %q, want %q", i, lits[i], want[i])
		}
	}
}

func TestFlattenLiteralsRejectsNonLiteral(t *testing.T) {
	result, err := Parse("foo|b[a-z]r")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, ok := FlattenLiterals(result.Root); ok {
		t.Error("FlattenLiterals() = true for a non-literal branch")
	}
}
