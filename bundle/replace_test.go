package bundle

import (
	"testing"
)

func TestReplaceTransform_WordBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		src    string
		expect string
	}{
		{
			name:   "whole identifier replaced",
			values: map[string]string{"FOO": "42"},
			src:    "let x = FOO;",
			expect: "let x = 42;",
		},
		{
			name:   "no match inside larger identifier",
			values: map[string]string{"FOO": "42"},
			src:    "let x = FOOBAR;",
			expect: "let x = FOOBAR;",
		},
		{
			name:   "multiple occurrences",
			values: map[string]string{"ENV": `"production"`},
			src:    "if (ENV) { log(ENV); }",
			expect: `if ("production") { log("production"); }`,
		},
		{
			name:   "longest key wins over shorter prefix",
			values: map[string]string{"NODE": "n", "NODE_ENV": `"production"`},
			src:    "check(NODE_ENV)",
			expect: `check("production")`,
		},
		{
			name:   "no values is a no-op",
			values: nil,
			src:    "untouched",
			expect: "untouched",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewReplaceTransform(ReplaceOptions{Values: tt.values})
			out, err := tr.Apply(tt.src)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if out != tt.expect {
				t.Errorf("Expected %q, got %q", tt.expect, out)
			}
		})
	}
}

func TestReplaceTransform_LiteralDelimiters(t *testing.T) {
	tr := NewReplaceTransform(ReplaceOptions{
		Values:     map[string]string{"a": "1"},
		Delimiters: []string{"", ""},
	})

	out, err := tr.Apply("xax")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != "x1x" {
		t.Errorf("Expected literal substring replacement \"x1x\", got %q", out)
	}
}

func TestReplaceTransform_CustomDelimiters(t *testing.T) {
	tr := NewReplaceTransform(ReplaceOptions{
		Values:     map[string]string{"NAME": "world"},
		Delimiters: []string{"${", "}"},
	})

	out, err := tr.Apply("hello ${NAME}, NAME stays")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out != "hello world, NAME stays" {
		t.Errorf("Expected delimited token replaced, got %q", out)
	}
}

func TestReplaceTransform_PreventAssignment(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		expect string
	}{
		{
			name:   "assignment target skipped",
			src:    "FOO = 1;",
			expect: "FOO = 1;",
		},
		{
			name:   "assignment without spaces skipped",
			src:    "FOO=1;",
			expect: "FOO=1;",
		},
		{
			name:   "read access still replaced",
			src:    "let x = FOO;",
			expect: "let x = 42;",
		},
		{
			name:   "equality comparison still replaced",
			src:    "if (FOO == 1) {}",
			expect: "if (42 == 1) {}",
		},
		{
			name:   "arrow function parameter still replaced",
			src:    "run(FOO => FOO + 1)",
			expect: "run(42 => 42 + 1)",
		},
		{
			name:   "trailing assignment at end of input skipped",
			src:    "FOO =",
			expect: "FOO =",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewReplaceTransform(ReplaceOptions{
				Values:            map[string]string{"FOO": "42"},
				PreventAssignment: true,
			})
			out, err := tr.Apply(tt.src)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if out != tt.expect {
				t.Errorf("Expected %q, got %q", tt.expect, out)
			}
		})
	}
}

func TestReplaceTransform_Name(t *testing.T) {
	if got := NewReplaceTransform(ReplaceOptions{}).Name(); got != "replace" {
		t.Errorf("Expected transform name \"replace\", got %q", got)
	}
}
