// Package numwords spells numeric strings as English words.
//
// The output follows the usual British cardinal conventions: hyphenated
// tens ("twenty-four"), "and" before a trailing group below one hundred
// ("one hundred and five", "two thousand and twenty-four") and commas
// between larger groups ("one million, two hundred thousand").
// Decimals are read digit by digit after "point"; a fraction made only of
// zeros is dropped, so "2.00" reads as "two".
package numwords

import (
	"errors"
	"strings"
)

var (
	// ErrNotNumeric is returned for input that is not a plain decimal number.
	ErrNotNumeric = errors.New("not a number")
	// ErrOverflow is returned for integers of a decillion thousand and above.
	ErrOverflow = errors.New("number too large to spell")
)

var ones = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var scales = []string{
	"", "thousand", "million", "billion", "trillion", "quadrillion", "quintillion",
	"sextillion", "septillion", "octillion", "nonillion", "decillion",
}

// Speller is the default number-to-words collaborator.
type Speller struct{}

// NewSpeller returns the default speller.
func NewSpeller() *Speller { return &Speller{} }

// Spell implements the normalizer's number speller contract.
func (s *Speller) Spell(numeric string) (string, error) {
	return Spell(numeric)
}

// KeepNumeric drops every character except ASCII digits, '.' and ','.
// "$2.00p" becomes "2.00".
func KeepNumeric(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == ',' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Spell converts a decimal string ("300", "2.5", ".75", "7.") to words.
// Signs, exponents, thousands separators and repeated points are rejected
// with ErrNotNumeric.
func Spell(numeric string) (string, error) {
	intPart, fracPart, err := split(numeric)
	if err != nil {
		return "", err
	}

	whole, err := cardinal(intPart)
	if err != nil {
		return "", err
	}

	fracPart = strings.TrimRight(fracPart, "0")
	if fracPart == "" {
		return whole, nil
	}

	words := make([]string, 0, len(fracPart)+2)
	words = append(words, whole, "point")
	for i := 0; i < len(fracPart); i++ {
		words = append(words, ones[fracPart[i]-'0'])
	}
	return strings.Join(words, " "), nil
}

func split(numeric string) (string, string, error) {
	if numeric == "" {
		return "", "", ErrNotNumeric
	}
	intPart, fracPart, _ := strings.Cut(numeric, ".")
	if intPart == "" && fracPart == "" {
		return "", "", ErrNotNumeric
	}
	if !digitsOnly(intPart) || !digitsOnly(fracPart) {
		return "", "", ErrNotNumeric
	}
	return intPart, fracPart, nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// cardinal spells a non-negative integer given as a digit string.
func cardinal(digits string) (string, error) {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return ones[0], nil
	}
	if len(digits) > 3*len(scales) {
		return "", ErrOverflow
	}

	// Split into groups of three from the right, most significant first.
	var groups []int
	for end := len(digits); end > 0; end -= 3 {
		start := end - 3
		if start < 0 {
			start = 0
		}
		groups = append([]int{atoi(digits[start:end])}, groups...)
	}

	var b strings.Builder
	for i, g := range groups {
		if g == 0 {
			continue
		}
		scale := scales[len(groups)-1-i]
		if b.Len() > 0 {
			if g < 100 && scale == "" {
				b.WriteString(" and ")
			} else {
				b.WriteString(", ")
			}
		}
		b.WriteString(group(g))
		if scale != "" {
			b.WriteString(" ")
			b.WriteString(scale)
		}
	}
	return b.String(), nil
}

// group spells 1..999.
func group(n int) string {
	hundreds, rest := n/100, n%100
	switch {
	case hundreds == 0:
		return belowHundred(rest)
	case rest == 0:
		return ones[hundreds] + " hundred"
	default:
		return ones[hundreds] + " hundred and " + belowHundred(rest)
	}
}

func belowHundred(n int) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + "-" + ones[n%10]
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
