package testutil

import (
	"slices"
	"testing"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no ansi codes",
			input: "hello world",
			want:  "hello world",
		},
		{
			name:  "with color codes",
			input: "\x1b[31mred\x1b[0m text",
			want:  "red text",
		},
		{
			name:  "with multiple codes",
			input: "\x1b[1;32mbold green\x1b[0m",
			want:  "bold green",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[31mabc\x1b[0m"); got != 3 {
		t.Errorf("MeasureWidth() = %d, want 3", got)
	}
}

func TestFindLine(t *testing.T) {
	output := "first\nsecond line\nthird"
	if got := FindLine(output, "second"); got != "second line" {
		t.Errorf("FindLine() = %q, want %q", got, "second line")
	}
	if got := FindLine(output, "missing"); got != "" {
		t.Errorf("FindLine() = %q, want empty", got)
	}
	if !ContainsLine(output, "third") {
		t.Error("ContainsLine() = false, want true")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\n\n  \n")
	if !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("SplitLines() = %q", got)
	}
}

func TestColumn(t *testing.T) {
	got := Column("ab│cd\nef│gh\nx", 2)
	if string(got) != "││" {
		t.Errorf("Column() = %q, want %q", string(got), "││")
	}
}
