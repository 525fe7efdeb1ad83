package shell

import (
	"strings"
	"testing"
	"unsafe"
)

func TestParser_Parse(t *testing.T) {

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple command",
			input:    "echo hello\n",
			expected: []string{"echo", "hello"},
		},
		{
			name:     "command with multiple arguments",
			input:    "ls -la /home/user",
			expected: []string{"ls", "-la", "/home/user"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
		{
			name:     "only delimiters",
			input:    " \t\r\n\a  \n",
			expected: []string{},
		},
		{
			name:     "multiple spaces between arguments",
			input:    "a b  c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "mixed delimiters",
			input:    "\tgrep\a-n\r\npattern   file.txt\r\n",
			expected: []string{"grep", "-n", "pattern", "file.txt"},
		},
		{
			name:     "leading and trailing delimiters",
			input:    "   cd /tmp   ",
			expected: []string{"cd", "/tmp"},
		},
		{
			name:     "quotes are ordinary characters",
			input:    `echo "hello world" 'x'`,
			expected: []string{"echo", `"hello`, `world"`, `'x'`},
		},
		{
			name:     "backslash is an ordinary character",
			input:    `echo hello\ world`,
			expected: []string{"echo", `hello\`, "world"},
		},
		{
			name:     "multibyte characters",
			input:    "echo héllo wörld",
			expected: []string{"echo", "héllo", "wörld"},
		},
	}

	for _, tt := range tests {

		t.Run(tt.name, func(t *testing.T) {

			parser := NewDefaultParser()
			res := parser.Parse(tt.input)

			if !equalStringSlices(res, tt.expected) {
				t.Errorf("input:  %q\nexpected: %q\ngot:       %q", tt.input, tt.expected, res)
			}

		})

	}

}

func TestParser_NoTokenLimit(t *testing.T) {
	words := make([]string, 500)
	for i := range words {
		words[i] = strings.Repeat("w", i%7+1)
	}

	res := NewDefaultParser().Parse(strings.Join(words, " \t ") + "\n")

	if !equalStringSlices(res, words) {
		t.Fatalf("expected %d tokens in order, got %d", len(words), len(res))
	}
}

func TestParser_TokensAreViewsOfLine(t *testing.T) {
	line := "  first second"
	res := NewDefaultParser().Parse(line)

	if len(res) != 2 {
		t.Fatalf("expected 2 tokens, got %q", res)
	}
	if res[0] != "first" || res[1] != "second" {
		t.Fatalf("unexpected tokens: %q", res)
	}
	if unsafe.StringData(res[0]) != unsafe.StringData(line[2:]) || unsafe.StringData(res[1]) != unsafe.StringData(line[8:]) {
		t.Fatal("tokens should share the line's bytes")
	}
}

func TestParser_CustomDelimiters(t *testing.T) {
	res := NewParser(",:").Parse("a,,b:c, d")

	expected := []string{"a", "b", "c", " d"}
	if !equalStringSlices(res, expected) {
		t.Fatalf("expected %q, got %q", expected, res)
	}
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
