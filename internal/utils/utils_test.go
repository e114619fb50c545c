package utils

import (
	"slices"
	"testing"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line", "abc", []string{"abc"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank line kept", "1\n\n2", []string{"1", "", "2"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Lines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToInt(t *testing.T) {
	n, err := ToInt(" 42")
	if err != nil || n != 42 {
		t.Errorf("ToInt(\" 42\") = %d, %v", n, err)
	}

	if _, err := ToInt("x"); err == nil {
		t.Error("expected error for non-numeric input")
	}
}

func TestMax(t *testing.T) {
	if Max(2, 7) != 7 || Max("b", "a") != "b" {
		t.Error("Max")
	}
}
