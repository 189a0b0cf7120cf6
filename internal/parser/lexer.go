package parser

import (
	"strconv"
	"strings"
	"unicode"
)

// normalise lowercases raw and reduces it to words of letters and digits.
// Punctuation that joins words ("pick-up", "i'm") becomes a space; anything
// else is dropped.
func normalise(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || strings.ContainsRune("-_/'", r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func words(normalised string) []string {
	return strings.Fields(normalised)
}

var quantityWords = map[string]int{
	"all":        -1,
	"everything": -1,
	"a":          1,
	"an":         1,
	"one":        1,
	"another":    1,
	"two":        2,
	"couple":     2,
	"three":      3,
	"four":       4,
	"five":       5,
}

func quantityOf(word string) *Quantity {
	if n, ok := quantityWords[word]; ok {
		return &Quantity{Raw: word, N: n}
	}
	if n, err := strconv.Atoi(word); err == nil && n >= 0 {
		return &Quantity{Raw: word, N: n}
	}
	return nil
}

// splitQuantity pulls the first quantity word out of ws.
func splitQuantity(ws []string) ([]string, *Quantity) {
	var q *Quantity
	rest := make([]string, 0, len(ws))
	for _, w := range ws {
		if q == nil {
			if q = quantityOf(w); q != nil {
				continue
			}
		}
		rest = append(rest, w)
	}
	return rest, q
}

var fillerWords = map[string]bool{
	"the": true, "some": true, "to": true, "into": true, "on": true, "in": true, "of": true, "more": true,
}

func dropFiller(ws []string) []string {
	out := ws[:0:0]
	for _, w := range ws {
		if !fillerWords[w] {
			out = append(out, w)
		}
	}
	return out
}

func isPronoun(w string) bool {
	switch w {
	case "it", "that", "them", "this", "those":
		return true
	}
	return false
}
