package corenfa

import "testing"

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"digit", `\d`, false},
		{"word", `\w+`, false},
		{"alternation", "foo|bar", false},
		{"repetition", "a+", false},
		{"named capture", "(?P<all>e(a)e)", false},
		{"invalid", "(", true},
		{"invalid range", "a{5,2}", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Compile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && re == nil {
				t.Error("Compile() returned nil")
			}
		})
	}
}

func TestMustCompile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile() did not panic on invalid pattern")
		}
	}()
	MustCompile("(") // Should panic
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"simple literal", "123", "123", true},
		{"simple literal mismatch", "123", "124", false},
		{"alternation first branch", "123|456", "123", true},
		{"alternation second branch", "123|456", "456", true},
		{"alternation neither", "123|456", "789", false},
		{"plus one or more", "1+", "111", true},
		{"plus requires one", "1+", "", false},
		{"star allows zero", "01*", "0", true},
		{"star allows many", "01*", "011", true},
		{"mixed quantifiers", "1+2+3+4{2}", "11122233344", true},
		{"mixed quantifiers wrong count", "1+2+3+4{2}", "11122233345", false},
		{"bounded repetition", "1234{1,5}", "123444", true},
		{"named capture", "(?P<all>e(a)e)", "eae", true},
		{"class", "[1-9]+", "1", true},
		{"class rejects zero", "[1-9]+", "0", false},
		{"negated class", "[^1-9]", "0", true},
		{"negated class rejects member", "[^1-9]", "5", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.pattern, err)
			}
			if got := re.Matches(tt.input); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExecuteCaptures(t *testing.T) {
	re, err := Compile("(?P<all>e(a)e)")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	groups, ok := re.Execute("eae")
	if !ok {
		t.Fatal("Execute() ok = false, want true")
	}
	want := map[string]string{"0": "eae", "all": "eae", "1": "eae", "2": "a"}
	for k, v := range want {
		if groups[k] != v {
			t.Errorf("groups[%q] = %q, want %q", k, groups[k], v)
		}
	}
}

func TestCompileWithConfigRejectsTooManyGroups(t *testing.T) {
	pattern := ""
	for i := 0; i < 3; i++ {
		pattern += "(a)"
	}
	_, err := CompileWithConfig(pattern, Config{EnablePrefilter: false, MaxCaptureGroups: 2})
	if err == nil {
		t.Error("CompileWithConfig() with a 3-group pattern and MaxCaptureGroups=2 succeeded, want error")
	}
}

func TestCompileWithConfigDisabledPrefilterStillMatches(t *testing.T) {
	re, err := CompileWithConfig("foo|bar", Config{EnablePrefilter: false, MaxCaptureGroups: 64})
	if err != nil {
		t.Fatalf("CompileWithConfig() error = %v", err)
	}
	if !re.Matches("foo") {
		t.Error("Matches(\"foo\") = false with prefilter disabled, want true")
	}
	if re.Matches("qux") {
		t.Error("Matches(\"qux\") = true, want false")
	}
}

func TestEngineStringAndSubexpNames(t *testing.T) {
	re, err := Compile("(?P<year>\\d+)-(\\d+)")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if re.String() != "(?P<year>\\d+)-(\\d+)" {
		t.Errorf("String() = %q, want original pattern", re.String())
	}
	names := re.SubexpNames()
	if len(names) != 3 || names[0] != "" || names[1] != "year" || names[2] != "" {
		t.Errorf("SubexpNames() = %v, want [\"\" \"year\" \"\"]", names)
	}
	if re.NumCaptures() != 3 {
		t.Errorf("NumCaptures() = %d, want 3", re.NumCaptures())
	}
}

func TestEngineStats(t *testing.T) {
	re, err := Compile("foo|bar")
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	re.Matches("foo")
	re.Matches("nope")

	stats := re.Stats()
	if stats.Matches != 2 {
		t.Errorf("Stats().Matches = %d, want 2", stats.Matches)
	}
	if stats.PrefilterRejections != 1 {
		t.Errorf("Stats().PrefilterRejections = %d, want 1", stats.PrefilterRejections)
	}
}
