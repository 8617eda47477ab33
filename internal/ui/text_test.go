package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	color.NoColor = false

	result := Code.Sprint("audiocrypt encrypt song.wav")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "audiocrypt keys show", "`audiocrypt keys show`"},
		{"Path has no decoration", Path, "song.enc.wav", "song.enc.wav"},
		{"Flag has no decoration", Flag, "--kind", "--kind"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "secretbox", "'secretbox'"},
		{"Muted adds parentheses", Muted, "not set", "(not set)"},
		{"State adds brackets", State, "encrypted", "[encrypted]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	result := Code.Sprintf("audiocrypt keys export --kind %s", "public")
	want := "`audiocrypt keys export --kind public`"
	if result != want {
		t.Errorf("Code.Sprintf() = %q, want %q", result, want)
	}
}

func TestNoColorFunction(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	originalNoColor := color.NoColor
	color.NoColor = true
	if !noColor() {
		t.Error("noColor() should return true when color.NoColor is true")
	}
	color.NoColor = originalNoColor
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		keep int
		want string
	}{
		{"Short", "12345", 4, "12345"},
		{"Boundary", "12345678901", 4, "12345678901"},
		{"Long", "123456789012", 4, "1234...9012"},
		{"ZeroKeep", "123456789012", 0, "123456789012"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Abbreviate(tt.in, tt.keep); got != tt.want {
				t.Errorf("Abbreviate(%q, %d) = %q, want %q", tt.in, tt.keep, got, tt.want)
			}
		})
	}
}

func TestBanner(t *testing.T) {
	t.Run("NoColor", func(t *testing.T) {
		os.Setenv("NO_COLOR", "1")
		defer os.Unsetenv("NO_COLOR")

		var buf bytes.Buffer
		Banner(&buf, "audiocrypt")
		if buf.Len() != 0 {
			t.Errorf("Expected no banner without color, got %q", buf.String())
		}
	})

	t.Run("Color", func(t *testing.T) {
		os.Unsetenv("NO_COLOR")
		originalNoColor := color.NoColor
		color.NoColor = false
		defer func() { color.NoColor = originalNoColor }()

		var buf bytes.Buffer
		Banner(&buf, "audiocrypt")
		if buf.Len() == 0 {
			t.Error("Expected banner output")
		}
	})
}

func TestEnsureNewline(t *testing.T) {
	if got := EnsureNewline("done"); got != "done\n" {
		t.Errorf("Expected %q, got %q", "done\n", got)
	}
	if got := EnsureNewline("done\n"); got != "done\n" {
		t.Errorf("Expected %q, got %q", "done\n", got)
	}
	if got := EnsureNewline(""); got != "\n" {
		t.Errorf("Expected %q, got %q", "\n", got)
	}
}
