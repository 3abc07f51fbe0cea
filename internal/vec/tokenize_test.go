package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"only whitespace", " \t\n ", []string{}},
		{"short words dropped", "cat dog bird", []string{"bird"}},
		{"lower-cased", "Hello WORLD", []string{"hello", "world"}},
		{"punctuation drops the token", "birds, fish! frogs", []string{"frogs"}},
		{"digits drop the token", "4ever ever1 forever", []string{"forever"}},
		{"duplicates and order kept", "fish bird fish", []string{"fish", "bird", "fish"}},
		{"runes, not bytes", "αβγ αβγδ naïve", []string{"αβγδ", "naïve"}},
		{"whitespace runs", "alpha   \t beta\n\ngamma", []string{"alpha", "beta", "gamma"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestTokenizeOutputIsClean(t *testing.T) {
	t.Parallel()
	for _, tok := range Tokenize("Μῆνιν ἄειδε θεὰ Πηληϊάδεω Ἀχιλῆος οὐλομένην, ἣ μυρί' Ἀχαιοῖς ἄλγε' ἔθηκε") {
		assert.True(t, allletters(tok), tok)
		assert.Greater(t, len([]rune(tok)), 3, tok)
	}
}
