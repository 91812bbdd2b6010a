package fold

import "testing"

func TestLower(t *testing.T) {
	tests := map[string]string{
		"Hello World":   "hello world",
		"MÁLAGA":        "málaga",
		"already lower": "already lower",
		"":              "",
		"GPT-4 Rocks!":  "gpt-4 rocks!",
	}
	for in, want := range tests {
		if got := Lower(in); got != want {
			t.Errorf("Lower(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAccents(t *testing.T) {
	tests := map[string]string{
		"Málaga":           "Malaga",
		"málaga":           "malaga",
		"café résumé":      "cafe resume",
		"naïve":            "naive",
		"äÄáÉíâç":          "aAaEiac",
		"straße":           "strasse",
		"plain ascii 123.": "plain ascii 123.",
		"":                 "",
	}
	for in, want := range tests {
		if got := Accents(in); got != want {
			t.Errorf("Accents(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAccentsDecomposedInput(t *testing.T) {
	// "e" followed by U+0301 COMBINING ACUTE ACCENT
	if got := Accents("café"); got != "cafe" {
		t.Errorf("Accents(decomposed) = %q, want %q", got, "cafe")
	}
}

func TestFolderNeverFails(t *testing.T) {
	f := NewFolder()
	out, err := f.FoldAccents("Zoë Saldaña")
	if err != nil {
		t.Fatalf("FoldAccents: %v", err)
	}
	if out != "Zoe Saldana" {
		t.Errorf("FoldAccents = %q, want %q", out, "Zoe Saldana")
	}
}
