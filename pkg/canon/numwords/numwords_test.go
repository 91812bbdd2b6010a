package numwords

import (
	"errors"
	"strings"
	"testing"
)

func TestKeepNumeric(t *testing.T) {
	tests := map[string]string{
		"$2.00p":  "2.00",
		"hello":   "",
		"300":     "300",
		"1,000km": "1,000",
		"v1.2.3":  "1.2.3",
		"":        "",
		"(42)":    "42",
	}
	for in, want := range tests {
		if got := KeepNumeric(in); got != want {
			t.Errorf("KeepNumeric(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSpellIntegers(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "zero"},
		{"7", "seven"},
		{"13", "thirteen"},
		{"20", "twenty"},
		{"21", "twenty-one"},
		{"99", "ninety-nine"},
		{"100", "one hundred"},
		{"105", "one hundred and five"},
		{"300", "three hundred"},
		{"342", "three hundred and forty-two"},
		{"1000", "one thousand"},
		{"2024", "two thousand and twenty-four"},
		{"2100", "two thousand, one hundred"},
		{"1000024", "one million and twenty-four"},
		{"1234567", "one million, two hundred and thirty-four thousand, five hundred and sixty-seven"},
		{"007", "seven"},
		{"000", "zero"},
	}
	for _, tt := range tests {
		got, err := Spell(tt.in)
		if err != nil {
			t.Errorf("Spell(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Spell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpellDecimals(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2.00", "two"},
		{"2.5", "two point five"},
		{"2.50", "two point five"},
		{"0.05", "zero point zero five"},
		{".75", "zero point seven five"},
		{"7.", "seven"},
	}
	for _, tt := range tests {
		got, err := Spell(tt.in)
		if err != nil {
			t.Errorf("Spell(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Spell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpellRejectsNonNumbers(t *testing.T) {
	for _, in := range []string{"", ".", ",", "1,000", "1.2.3", "12a", "-5", "1e6"} {
		if _, err := Spell(in); !errors.Is(err, ErrNotNumeric) {
			t.Errorf("Spell(%q) error = %v, want ErrNotNumeric", in, err)
		}
	}
}

func TestSpellOverflow(t *testing.T) {
	largest := strings.Repeat("9", 36)
	if _, err := Spell(largest); err != nil {
		t.Errorf("Spell(36 nines): %v", err)
	}
	if _, err := Spell("1" + strings.Repeat("0", 36)); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected ErrOverflow, got %v", err)
	}
}

func TestSpellerNoDigitsInOutput(t *testing.T) {
	s := NewSpeller()
	for _, in := range []string{"1", "42", "1999", "65536", "3.14159"} {
		out, err := s.Spell(in)
		if err != nil {
			t.Fatalf("Spell(%q): %v", in, err)
		}
		if strings.ContainsAny(out, "0123456789") {
			t.Errorf("Spell(%q) = %q still contains digits", in, out)
		}
	}
}
