package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTranslateCommand(t *testing.T) {
	var out bytes.Buffer
	Root.SetOut(&out)
	Root.SetErr(&out)
	Root.SetArgs([]string{"translate", "[1+ #digit]"})

	if err := Root.Execute(); err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != `(?ms)\d+` {
		t.Errorf("translate output = %q, want %q", got, `(?ms)\d+`)
	}
}

func TestTranslateCommandGoFlavor(t *testing.T) {
	defer translate.Flags().Set("go", "false")

	var out bytes.Buffer
	Root.SetOut(&out)
	Root.SetErr(&out)
	Root.SetArgs([]string{"translate", "--go", "#ss [1+ #d] #es"})

	if err := Root.Execute(); err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != `(?ms)\A\d+\z` {
		t.Errorf("translate output = %q, want %q", got, `(?ms)\A\d+\z`)
	}
}

func TestTranslateCommandError(t *testing.T) {
	var out bytes.Buffer
	Root.SetOut(&out)
	Root.SetErr(&out)
	Root.SetArgs([]string{"translate", "#nope"})

	if err := Root.Execute(); err == nil {
		t.Fatal("translate succeeded, want error")
	}
}

func TestGenerateCommand(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "patterns.go")

	var out bytes.Buffer
	Root.SetOut(&out)
	Root.SetErr(&out)
	Root.SetArgs([]string{
		"generate",
		"--pattern", "integer=#int",
		"--package", "patterns",
		"--out", outputFile,
	})

	if err := Root.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("failed to read generated file: %v", err)
	}
	if !strings.Contains(string(data), "regexp.MustCompile") {
		t.Errorf("generated file missing compiled pattern:\n%s", data)
	}
}

func TestGenerateCommandBadFlag(t *testing.T) {
	var out bytes.Buffer
	Root.SetOut(&out)
	Root.SetErr(&out)
	Root.SetArgs([]string{"generate", "--pattern", "missing-equals", "--out", filepath.Join(t.TempDir(), "p.go")})

	if err := Root.Execute(); err == nil {
		t.Fatal("generate succeeded, want error")
	}
}
