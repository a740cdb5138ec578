package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "patterns.go")

	patterns := []Pattern{
		{Name: "integer", Source: "#int", Regex: `(?ms)-?\d+`},
		{Name: "Word", Source: "[1+ #tc]", Regex: `(?ms)\w+`},
	}
	if err := Generate(outputFile, "patterns", patterns); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("failed to read generated file: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"Code generated by remex. DO NOT EDIT.",
		"package patterns",
		`IntegerPattern = "(?ms)-?\\d+"`,
		"Integer = regexp.MustCompile(IntegerPattern)",
		"WordPattern",
		"Word = regexp.MustCompile(WordPattern)",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("generated file missing %q:\n%s", want, content)
		}
	}
}

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"email", "Email"},
		{"Email", "Email"},
	}
	for _, tt := range tests {
		if got := UpperFirst(tt.in); got != tt.want {
			t.Errorf("UpperFirst(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
