package lemma

import (
	"testing"

	"github.com/cognicore/canon/pkg/canon/lexicon"
	"github.com/cognicore/canon/pkg/canon/pos"
)

func TestMorphyDefaultLexicon(t *testing.T) {
	lex, err := lexicon.Default()
	if err != nil {
		t.Fatalf("lexicon.Default: %v", err)
	}
	m := NewMorphy(lex)

	tests := []struct {
		word string
		cat  pos.Category
		want string
	}{
		// exceptions
		{"went", pos.Verb, "go"},
		{"are", pos.Verb, "be"},
		{"feet", pos.Noun, "foot"},
		{"children", pos.Noun, "child"},
		{"better", pos.Adjective, "good"},
		{"mice", pos.Noun, "mouse"},
		{"was", pos.Verb, "be"},
		{"people", pos.Noun, "people"},
		{"news", pos.Noun, "news"},

		// forms listed under their own spelling as well as another lemma
		{"best", pos.Adjective, "best"},
		{"best", pos.Adverb, "best"},
		{"more", pos.Adjective, "more"},
		{"less", pos.Adjective, "less"},
		{"most", pos.Adjective, "most"},

		// noun rules
		{"cats", pos.Noun, "cat"},
		{"themes", pos.Noun, "theme"},
		{"passwords", pos.Noun, "password"},
		{"boxes", pos.Noun, "box"},
		{"cities", pos.Noun, "city"},

		// verb rules
		{"hoping", pos.Verb, "hope"},
		{"hoped", pos.Verb, "hope"},
		{"running", pos.Verb, "run"},
		{"stopped", pos.Verb, "stop"},
		{"using", pos.Verb, "use"},
		{"asked", pos.Verb, "ask"},
		{"hanging", pos.Verb, "hang"},
		{"visited", pos.Verb, "visit"},
		{"shopping", pos.Verb, "shop"},
		{"programming", pos.Verb, "program"},
		{"adding", pos.Verb, "add"},
		{"called", pos.Verb, "call"},
		{"kissed", pos.Verb, "kiss"},
		{"making", pos.Verb, "make"},

		// adjective rules
		{"bigger", pos.Adjective, "big"},
		{"larger", pos.Adjective, "large"},
		{"oldest", pos.Adjective, "old"},

		// words that are already lemmas
		{"this", pos.Noun, "this"},
		{"is", pos.Noun, "is"},
		{"there", pos.Noun, "there"},
		{"quickly", pos.Adverb, "quickly"},

		// unknown words pass through
		{"malaga", pos.Noun, "malaga"},
		{"zorbing", pos.Verb, "zorbing"},
		{"", pos.Noun, ""},
	}
	for _, tt := range tests {
		got, err := m.Lemmatize(tt.word, tt.cat)
		if err != nil {
			t.Fatalf("Lemmatize(%q, %s) error: %v", tt.word, tt.cat, err)
		}
		if got != tt.want {
			t.Errorf("Lemmatize(%q, %s) = %q, want %q", tt.word, tt.cat, got, tt.want)
		}
	}
}

func TestMorphyCategoryMatters(t *testing.T) {
	lex := lexicon.New()
	lex.AddWords("meet", "meeting")
	m := NewMorphy(lex)

	if got, _ := m.Lemmatize("meeting", pos.Noun); got != "meeting" {
		t.Errorf("noun meeting = %q, want meeting", got)
	}
	if got, _ := m.Lemmatize("meeting", pos.Verb); got != "meet" {
		t.Errorf("verb meeting = %q, want meet", got)
	}
}

func TestMorphySkipsClosedClassStems(t *testing.T) {
	lex := lexicon.New()
	lex.AddWords("us", "use")
	m := NewMorphy(lex)

	if got, _ := m.Lemmatize("using", pos.Verb); got != "use" {
		t.Errorf("using = %q, want use", got)
	}

	lex2 := lexicon.New()
	lex2.AddWords("us")
	lex2.AddClosed("us")
	if got, _ := NewMorphy(lex2).Lemmatize("using", pos.Verb); got != "using" {
		t.Errorf("using with only a closed stem = %q, want using", got)
	}
}

func TestMorphyShortestCandidateWins(t *testing.T) {
	lex := lexicon.New()
	lex.AddWords("glass", "glasse")
	m := NewMorphy(lex)

	// ses->s gives glass, s->"" gives glasse.
	if got, _ := m.Lemmatize("glasses", pos.Noun); got != "glass" {
		t.Errorf("glasses = %q, want glass", got)
	}
}

func TestMorphyExceptionCandidates(t *testing.T) {
	lex := lexicon.New()
	lex.AddWords("good", "best", "foot", "feet")
	lex.AddException(pos.Adjective, "good", []string{"better", "best"})
	lex.AddException(pos.Adjective, "best", []string{"best"})
	lex.AddException(pos.Noun, "foot", []string{"feet"})
	m := NewMorphy(lex)

	// best ties with good on length; its own spelling comes first.
	if got, _ := m.Lemmatize("best", pos.Adjective); got != "best" {
		t.Errorf("best = %q, want best", got)
	}
	if got, _ := m.Lemmatize("better", pos.Adjective); got != "good" {
		t.Errorf("better = %q, want good", got)
	}
	// A listed surface form that is not its own lemma never competes.
	if got, _ := m.Lemmatize("feet", pos.Noun); got != "foot" {
		t.Errorf("feet = %q, want foot", got)
	}
}

func TestMorphyUndoublesBeforeRestoringE(t *testing.T) {
	lex := lexicon.New()
	lex.AddWords("shop", "shoppe", "add", "call", "cal")
	m := NewMorphy(lex)

	for word, want := range map[string]string{
		"shopping": "shop",
		"adding":   "add",
		"called":   "call",
	} {
		if got, _ := m.Lemmatize(word, pos.Verb); got != want {
			t.Errorf("Lemmatize(%q) = %q, want %q", word, got, want)
		}
	}
}

func TestMorphyPreservesUnknownCase(t *testing.T) {
	m := NewMorphy(lexicon.New())
	if got, _ := m.Lemmatize("Zorbing", pos.Verb); got != "Zorbing" {
		t.Errorf("unknown word changed: %q", got)
	}
}

func TestLemmatizerFunc(t *testing.T) {
	var l Lemmatizer = LemmatizerFunc(func(word string, cat pos.Category) (string, error) {
		return word + "/" + cat.String(), nil
	})
	got, err := l.Lemmatize("run", pos.Verb)
	if err != nil || got != "run/verb" {
		t.Errorf("LemmatizerFunc = %q, %v", got, err)
	}
}
