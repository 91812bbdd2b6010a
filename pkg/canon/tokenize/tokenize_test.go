package tokenize

import (
	"reflect"
	"strings"
	"testing"
)

func TestTreebankSplitsPunctuation(t *testing.T) {
	got, err := NewTreebank().Tokenize("please get me two tickets.")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"please", "get", "me", "two", "tickets", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %q, want %q", got, want)
	}
}

func TestTreebankEmpty(t *testing.T) {
	got, err := NewTreebank().Tokenize("")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %q, want no tokens", got)
	}
}

func TestFunc(t *testing.T) {
	var tok Tokenizer = Func(func(s string) ([]string, error) { return strings.Fields(s), nil })
	got, _ := tok.Tokenize("a b")
	if len(got) != 2 {
		t.Errorf("Func tokenizer = %q", got)
	}
}
